// Package intro is the title screen: a short launch-pad animation followed
// by the commander identification form.
package intro

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/algeblast/internal/journal"
	"github.com/abhisek/algeblast/internal/mission"
	"github.com/abhisek/algeblast/internal/router"
	"github.com/abhisek/algeblast/internal/screen"
	"github.com/abhisek/algeblast/internal/ui/components"
	"github.com/abhisek/algeblast/internal/ui/layout"
	"github.com/abhisek/algeblast/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

const padArt = `      /\
     /  \
    | [] |
    | A1 |
   /|    |\
  /_|____|_\
 ════════════`

// twinkle frames cycle around the launch pad
var starFrames = []string{"✦", "·", "✧"}

type tickMsg time.Time

// IntroScreen collects the commander name and starts a mission.
type IntroScreen struct {
	engine      *mission.Engine
	journal     *journal.Journal
	startFlight func(mission.State) screen.Screen

	state   mission.State
	input   components.TextInput
	errMsg  string
	started bool

	elapsed   time.Duration
	tickCount int
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// Option configures an IntroScreen.
type Option func(*IntroScreen)

// WithSkipAnimation shows the form immediately.
func WithSkipAnimation() Option {
	return func(s *IntroScreen) {
		s.elapsed = totalDur
	}
}

// New creates an IntroScreen. startFlight builds the screen that takes over
// once a mission has started.
func New(engine *mission.Engine, journal *journal.Journal, startFlight func(mission.State) screen.Screen, opts ...Option) *IntroScreen {
	s := &IntroScreen{
		engine:      engine,
		journal:     journal,
		startFlight: startFlight,
		state:       engine.Restart(),
		input:       components.NewTextInput("Enter Name...", false, mission.MaxCommanderLen),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *IntroScreen) Title() string {
	return "Mission Control"
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	if !s.animationDone() {
		return []layout.KeyHint{
			{Key: "any key", Description: "Skip"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Initialize mission"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *IntroScreen) Init() tea.Cmd {
	return tea.Batch(tick(), s.input.Init())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *IntroScreen) animationDone() bool {
	return s.elapsed >= totalDur
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if s.elapsed < totalDur {
			s.elapsed += tickInterval
		}
		s.tickCount++
		return s, tick()

	case tea.KeyPressMsg:
		// A key press during the animation only skips it.
		if !s.animationDone() {
			s.elapsed = totalDur
			return s, nil
		}
		if msg.String() == "enter" {
			return s, s.submit()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		if s.input.Value() != "" {
			s.errMsg = ""
		}
		return s, cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *IntroScreen) submit() tea.Cmd {
	if s.started {
		return nil
	}
	next, err := s.engine.StartMission(s.state, s.input.Value())
	if err != nil {
		if errors.Is(err, mission.ErrEmptyCommander) {
			s.errMsg = "Commander identification required."
		} else {
			s.errMsg = err.Error()
		}
		s.input.Submit(false)
		return nil
	}
	s.started = true
	s.state = next
	s.journal.Started(context.Background(), next)

	flight := s.startFlight(next)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: flight}
	}
}

func (s *IntroScreen) View(width, height int) string {
	var sections []string

	padStyle := lipgloss.NewStyle().Foreground(theme.Primary)
	rendered := padStyle.Render(padArt)

	// Phase 2+: stars around the pad
	if s.elapsed >= phase1End {
		star := starFrames[s.tickCount%len(starFrames)]
		s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(star)
		s2 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(star)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[0] = s1 + "   " + lines[0] + "     " + s2
		}
		if len(lines) > 3 {
			lines[3] = s2 + "  " + lines[3] + "   " + s1
		}
		rendered = strings.Join(lines, "\n")
	}
	sections = append(sections, rendered)

	// Phase 3+: banner and tagline
	if s.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Mission Control: 6th Grade"))
	}

	if s.animationDone() {
		sections = append(sections, "", s.renderForm())
	} else {
		sections = append(sections, "", theme.Hint.Render("press any key to skip"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *IntroScreen) renderForm() string {
	var b strings.Builder
	b.WriteString(theme.Label.Render("Commander Identification"))
	b.WriteString("\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")
	b.WriteString(components.NewButton("INITIALIZE MISSION", s.input.Value() != "", nil).View())
	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	}
	return theme.Card.Render(b.String())
}
