package components

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/algeblast/internal/ui/theme"
)

// FuelGauge displays a vertical fuel tank filling from the bottom.
type FuelGauge struct {
	Label   string
	Percent float64 // 0..100, unrounded
	Height  int // tank rows, excluding the caps
	Width   int // tank columns, excluding the walls
}

// NewFuelGauge creates a fuel gauge.
func NewFuelGauge(percent float64, height, width int) FuelGauge {
	return FuelGauge{
		Label:   "FUEL STATUS",
		Percent: percent,
		Height:  height,
		Width:   width,
	}
}

// FilledRows returns how many tank rows are filled.
func (g FuelGauge) FilledRows() int {
	h := max(g.Height, 1)
	pct := min(max(g.Percent, 0), 100)
	filled := int(math.Round(pct * float64(h) / 100))
	if pct > 0 && filled == 0 {
		filled = 1
	}
	return filled
}

// View renders the gauge.
func (g FuelGauge) View() string {
	h := max(g.Height, 1)
	w := max(g.Width, 2)
	filled := g.FilledRows()

	wall := lipgloss.NewStyle().Foreground(theme.Border)
	fill := lipgloss.NewStyle().Foreground(theme.FuelColor(g.Percent))

	var b strings.Builder
	if g.Label != "" {
		b.WriteString(theme.Label.Render(g.Label))
		b.WriteString("\n")
	}
	b.WriteString(wall.Render("╭" + strings.Repeat("─", w) + "╮"))
	b.WriteString("\n")
	for row := range h {
		var cell string
		if h-row <= filled {
			cell = fill.Render(strings.Repeat("█", w))
		} else {
			cell = theme.GaugeEmpty.Render(strings.Repeat("░", w))
		}
		b.WriteString(wall.Render("│") + cell + wall.Render("│"))
		b.WriteString("\n")
	}
	b.WriteString(wall.Render("╰" + strings.Repeat("─", w) + "╯"))
	b.WriteString("\n")

	pct := fmt.Sprintf("%d%%", int(math.Round(g.Percent)))
	b.WriteString(lipgloss.NewStyle().
		Width(w + 2).
		Align(lipgloss.Center).
		Foreground(theme.FuelColor(g.Percent)).
		Bold(true).
		Render(pct))

	return b.String()
}
