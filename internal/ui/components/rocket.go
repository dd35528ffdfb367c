package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/algeblast/internal/ui/theme"
)

const rocketArt = `    /\
   /  \
  | [] |
  | A1 |
  |    |
 /|    |\
/_|____|_\`

// FlameState is the exhaust shown under the rocket.
type FlameState int

const (
	FlameOff    FlameState = iota // no fuel yet
	FlameIdle                     // fuel loaded, engines warming
	FlameLaunch                   // full thrust
)

// FlameFor picks the flame for an unrounded fuel level and launch flag.
func FlameFor(fuel float64, launched bool) FlameState {
	switch {
	case launched:
		return FlameLaunch
	case fuel > 0:
		return FlameIdle
	default:
		return FlameOff
	}
}

var launchFlames = [][]string{
	{"  \\||||/", "   \\||/", "    \\/"},
	{"  /||||\\", "   /||\\", "    ||"},
}

// Rocket renders the rocket with its exhaust. Frame advances the launch
// flame animation.
type Rocket struct {
	Flame FlameState
	Frame int
	Color string
}

// View renders the rocket.
func (r Rocket) View() string {
	body := lipgloss.NewStyle().Foreground(theme.StageColor(r.Color)).Render(rocketArt)

	var flame []string
	switch r.Flame {
	case FlameIdle:
		flame = []string{lipgloss.NewStyle().Foreground(theme.FlameDim).Render("   .''.")}
	case FlameLaunch:
		frame := launchFlames[r.Frame%len(launchFlames)]
		hot := lipgloss.NewStyle().Foreground(theme.FlameHot).Bold(true)
		core := lipgloss.NewStyle().Foreground(theme.FlameCore).Bold(true)
		for i, line := range frame {
			if i%2 == 0 {
				flame = append(flame, hot.Render(line))
			} else {
				flame = append(flame, core.Render(line))
			}
		}
	}

	if len(flame) == 0 {
		return body
	}
	return body + "\n" + strings.Join(flame, "\n")
}
