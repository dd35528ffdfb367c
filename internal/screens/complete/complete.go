// Package complete shows the mission accomplished screen.
package complete

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/algeblast/internal/mission"
	"github.com/abhisek/algeblast/internal/router"
	"github.com/abhisek/algeblast/internal/screen"
	"github.com/abhisek/algeblast/internal/ui/components"
	"github.com/abhisek/algeblast/internal/ui/layout"
	"github.com/abhisek/algeblast/internal/ui/theme"
)

const orbitArt = `   .    *        .
 *    .-""-.   .    *
   . /  🚀  \      .
     \      /  *
  .   '-..-'    .   *`

// CompleteScreen congratulates the commander and offers a new mission.
type CompleteScreen struct {
	engine    *mission.Engine
	state     mission.State
	onRestart func() screen.Screen
	restarted bool
}

var _ screen.Screen = (*CompleteScreen)(nil)
var _ screen.KeyHintProvider = (*CompleteScreen)(nil)
var _ screen.FuelProvider = (*CompleteScreen)(nil)

// New creates a CompleteScreen for a completed mission. onRestart builds
// the screen for the next mission.
func New(engine *mission.Engine, state mission.State, onRestart func() screen.Screen) *CompleteScreen {
	return &CompleteScreen{engine: engine, state: state, onRestart: onRestart}
}

func (s *CompleteScreen) Init() tea.Cmd {
	return nil
}

func (s *CompleteScreen) Title() string {
	return "Mission Accomplished"
}

func (s *CompleteScreen) Fuel() float64 {
	return s.state.FuelLevel
}

func (s *CompleteScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start new mission"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *CompleteScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		return s, s.restart()
	}
	return s, nil
}

// restart returns the game to the intro with a canonical zero state.
func (s *CompleteScreen) restart() tea.Cmd {
	if s.restarted || s.onRestart == nil {
		return nil
	}
	s.restarted = true
	s.state = s.engine.Restart()
	next := s.onRestart()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *CompleteScreen) View(width, height int) string {
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Render(orbitArt)))
	b.WriteString("\n\n")
	b.WriteString(center(lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true).
		Render("MISSION ACCOMPLISHED!")))
	b.WriteString("\n\n")
	b.WriteString(center(theme.Body.Render(fmt.Sprintf(
		"Commander %s has successfully piloted the Algebra-1 Rocket into orbit.", s.state.Commander))))
	b.WriteString("\n\n")

	// Mastered topics.
	var mastered strings.Builder
	mastered.WriteString(theme.Label.Render("You have mastered:"))
	for _, st := range s.engine.Curriculum().Stages() {
		mastered.WriteString("\n")
		mastered.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("✓ "))
		mastered.WriteString(lipgloss.NewStyle().Foreground(theme.StageColor(st.Color)).Render(st.Mastery))
	}
	b.WriteString(center(theme.Card.Render(mastered.String())))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("READY FOR EXAM LAUNCH")))
	b.WriteString("\n\n")
	b.WriteString(center(components.NewButton("Start New Mission", true, nil).View()))

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}
