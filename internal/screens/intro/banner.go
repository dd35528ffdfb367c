package intro

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/algeblast/internal/ui/theme"
)

const bannerArt = `
  ▄▀█ █   █▀▀ █▀▀     █▄▄ █   ▄▀█ █▀ ▀█▀    █▀█ █▀▀ █▀▀
  █▀█ █▄▄ █▄█ ██▄ ▄▄▄ █▄█ █▄▄ █▀█ ▄█  █     █▄█ █▀  █▀ `

const bannerCompact = "ALGE-BLAST OFF"

// RenderBanner returns the title banner styled in the accent color.
// Uses a compact fallback for terminals narrower than 64 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	if width < 64 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
