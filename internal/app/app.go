package app

import (
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/algeblast/internal/curriculum"
	"github.com/abhisek/algeblast/internal/hint"
	"github.com/abhisek/algeblast/internal/journal"
	"github.com/abhisek/algeblast/internal/mission"
	"github.com/abhisek/algeblast/internal/router"
	"github.com/abhisek/algeblast/internal/screen"
	"github.com/abhisek/algeblast/internal/screens/complete"
	"github.com/abhisek/algeblast/internal/screens/flight"
	"github.com/abhisek/algeblast/internal/screens/intro"
	"github.com/abhisek/algeblast/internal/store"
	"github.com/abhisek/algeblast/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	// Curriculum is the question bank. Defaults to curriculum.Default().
	Curriculum *curriculum.Curriculum

	// Engine drives progression. Built from Curriculum when nil.
	Engine *mission.Engine

	// Advisor answers hint requests. Nil disables hints.
	Advisor hint.Advisor

	// EventRepo receives mission and answer events. May be nil.
	EventRepo store.EventRepo

	Logger *zap.Logger

	FeedbackDelay time.Duration
	LaunchDelay   time.Duration

	SkipIntroAnimation bool
}

func (o Options) withDefaults() (Options, error) {
	if o.Curriculum == nil {
		o.Curriculum = curriculum.Default()
	}
	if o.Engine == nil {
		e, err := mission.NewEngine(o.Curriculum)
		if err != nil {
			return o, err
		}
		o.Engine = e
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o, nil
}

// navigator builds screens and wires them to each other.
type navigator struct {
	opts    Options
	journal *journal.Journal
}

func (n *navigator) intro() screen.Screen {
	var opts []intro.Option
	if n.opts.SkipIntroAnimation {
		opts = append(opts, intro.WithSkipAnimation())
	}
	return intro.New(n.opts.Engine, n.journal, n.flight, opts...)
}

func (n *navigator) flight(s mission.State) screen.Screen {
	return flight.New(flight.Deps{
		Engine:        n.opts.Engine,
		Advisor:       n.opts.Advisor,
		Journal:       n.journal,
		Logger:        n.opts.Logger,
		FeedbackDelay: n.opts.FeedbackDelay,
		LaunchDelay:   n.opts.LaunchDelay,
		OnComplete:    n.complete,
		OnAbort:       n.afterAbort,
	}, s)
}

// afterAbort returns to the name form without replaying the animation.
func (n *navigator) afterAbort() screen.Screen {
	return intro.New(n.opts.Engine, n.journal, n.flight, intro.WithSkipAnimation())
}

func (n *navigator) complete(s mission.State) screen.Screen {
	return complete.New(n.opts.Engine, s, n.afterAbort)
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// NewAppModel creates an AppModel starting at the intro screen.
func NewAppModel(opts Options) (AppModel, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return AppModel{}, err
	}
	nav := &navigator{
		opts:    opts,
		journal: journal.New(opts.EventRepo, opts.Logger),
	}
	return AppModel{
		router: router.New(nav.intro()),
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	fuel := layout.NoFuel
	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if active != nil {
		title = active.Title()
		if fp, ok := active.(screen.FuelProvider); ok {
			fuel = fp.Fuel()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = kp.KeyHints()
		}
	}

	header := layout.RenderHeader(title, fuel, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	model, err := NewAppModel(opts)
	if err != nil {
		return fmt.Errorf("building app: %w", err)
	}
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
