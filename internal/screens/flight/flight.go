// Package flight runs a mission: one equation at a time, fuel on every
// correct answer, flight computer hints on misses, and the launch sequence
// after the final question.
package flight

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/algeblast/internal/curriculum"
	"github.com/abhisek/algeblast/internal/hint"
	"github.com/abhisek/algeblast/internal/journal"
	"github.com/abhisek/algeblast/internal/mission"
	"github.com/abhisek/algeblast/internal/router"
	"github.com/abhisek/algeblast/internal/screen"
	"github.com/abhisek/algeblast/internal/ui/components"
	"github.com/abhisek/algeblast/internal/ui/layout"
)

const (
	flameInterval      = 150 * time.Millisecond
	defaultPlaceholder = "Enter value..."
	answerWidth        = 12

	// Misses on one question before the flight computer is consulted
	// without being asked.
	autoHintMisses = 2
)

// Deps holds the collaborators of a FlightScreen.
type Deps struct {
	Engine *mission.Engine

	// Advisor answers hint requests. Nil disables hints.
	Advisor hint.Advisor

	Journal *journal.Journal
	Logger  *zap.Logger

	// FeedbackDelay separates a verified answer from the fuel transfer and
	// LaunchDelay is the length of the launch sequence. Zero fires at once.
	FeedbackDelay time.Duration
	LaunchDelay   time.Duration

	// OnComplete builds the screen shown once the rocket reaches orbit.
	OnComplete func(mission.State) screen.Screen

	// OnAbort builds the screen shown after the mission is aborted.
	OnAbort func() screen.Screen
}

type feedbackKind int

const (
	feedbackNone     feedbackKind = iota
	feedbackVerified              // correct, waiting for the fuel transfer
	feedbackWrong
	feedbackInvalid // not a number
)

// FlightScreen implements screen.Screen for an active mission.
type FlightScreen struct {
	deps  Deps
	state mission.State

	question curriculum.Question
	stage    curriculum.Stage

	// seq changes with every question so deferred messages scheduled for
	// an earlier question are recognised as stale.
	seq int

	input   components.TextInput
	scratch components.Scratchpad
	confirm *components.Menu

	feedback    feedbackKind
	attempts    int
	misses      int
	stepsShown  int
	hintPending bool
	hint        *hint.Result
	banner      string
	verifying   bool
	frame       int
	errMsg      string
}

var _ screen.Screen = (*FlightScreen)(nil)
var _ screen.KeyHintProvider = (*FlightScreen)(nil)
var _ screen.FuelProvider = (*FlightScreen)(nil)

// New creates a FlightScreen for a mission that StartMission has begun.
func New(deps Deps, state mission.State) *FlightScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	s := &FlightScreen{
		deps:    deps,
		state:   state,
		scratch: components.NewScratchpad(44, 4),
	}
	s.loadQuestion()
	return s
}

// State returns the mission state as the screen currently sees it.
func (s *FlightScreen) State() mission.State {
	return s.state
}

func (s *FlightScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *FlightScreen) Title() string {
	return s.stage.Title
}

func (s *FlightScreen) Fuel() float64 {
	return s.state.FuelLevel
}

func (s *FlightScreen) KeyHints() []layout.KeyHint {
	if s.confirm != nil {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abort"},
			{Key: "N", Description: "Continue"},
		}
	}
	if s.state.Launched || s.verifying {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Abort"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Engage"},
		{Key: "Ctrl+R", Description: "Reveal step"},
		{Key: "Ctrl+W", Description: "Show work"},
	}
	if s.scratch.Visible {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Switch focus"})
	}
	if s.canRequestHint() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+A", Description: "Analysis"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Abort"})
}

func (s *FlightScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		return s.handleFeedbackDone(msg)

	case launchDoneMsg:
		return s.handleLaunchDone(msg)

	case flameTickMsg:
		if !s.current(msg.token) || !s.state.Launched {
			return s, nil
		}
		s.frame++
		return s, s.after(flameInterval, func(t token) tea.Msg { return flameTickMsg{t} })

	case hintReadyMsg:
		return s.handleHint(msg)

	case abortMsg:
		return s.abort()

	case resumeMsg:
		s.confirm = nil
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	return s, s.forward(msg)
}

// loadQuestion resets the per-question UI for the question the state
// points at.
func (s *FlightScreen) loadQuestion() {
	s.seq++
	s.feedback = feedbackNone
	s.attempts = 0
	s.misses = 0
	s.stepsShown = 0
	s.hintPending = false
	s.hint = nil
	s.banner = ""
	s.verifying = false
	s.scratch.Reset()

	q, err := s.deps.Engine.CurrentQuestion(s.state)
	if err != nil {
		s.deps.Logger.Error("no question for mission state",
			zap.String("mission_id", s.state.MissionID.String()),
			zap.Error(err),
		)
		s.errMsg = err.Error()
		return
	}
	st, err := s.deps.Engine.CurrentStage(s.state)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.question = q
	s.stage = st

	placeholder := q.Placeholder
	if placeholder == "" {
		placeholder = defaultPlaceholder
	}
	s.input = components.NewTextInput(placeholder, true, answerWidth)
}

func (s *FlightScreen) token() token {
	return token{missionID: s.state.MissionID, seq: s.seq}
}

func (s *FlightScreen) current(t token) bool {
	return t == s.token()
}

// after schedules a message for the current mission and question.
func (s *FlightScreen) after(d time.Duration, mk func(token) tea.Msg) tea.Cmd {
	t := s.token()
	return tea.Tick(d, func(time.Time) tea.Msg {
		return mk(t)
	})
}

func (s *FlightScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Abort confirmation prompt.
	if s.confirm != nil {
		switch key {
		case "y", "Y":
			return s.abort()
		case "n", "N", "esc":
			s.confirm = nil
			return s, nil
		}
		m, cmd := s.confirm.Update(msg)
		s.confirm = &m
		return s, cmd
	}

	if key == "esc" {
		s.confirm = newAbortMenu()
		return s, nil
	}

	if s.errMsg != "" || s.state.Launched || s.verifying {
		return s, nil
	}

	switch key {
	case "ctrl+a":
		return s, s.requestHint()
	case "ctrl+r":
		if s.stepsShown < len(s.question.Steps) {
			s.stepsShown++
		}
		return s, nil
	case "ctrl+w":
		return s, s.toggleScratchpad()
	case "tab":
		return s, s.switchFocus()
	case "enter":
		if !s.scratch.Focused() {
			return s.submit()
		}
	}

	return s, s.forward(msg)
}

func newAbortMenu() *components.Menu {
	m := components.NewMenu([]components.MenuItem{
		{Label: "Continue mission", Action: func() tea.Cmd {
			return func() tea.Msg { return resumeMsg{} }
		}},
		{Label: "Abort mission", Action: func() tea.Cmd {
			return func() tea.Msg { return abortMsg{} }
		}},
	})
	return &m
}

// forward passes a message to whichever input has focus.
func (s *FlightScreen) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if s.scratch.Focused() {
		s.scratch, cmd = s.scratch.Update(msg)
	} else {
		s.input, cmd = s.input.Update(msg)
	}
	return cmd
}

func (s *FlightScreen) toggleScratchpad() tea.Cmd {
	s.scratch.Toggle()
	if s.scratch.Visible {
		s.input.Blur()
		return s.scratch.Focus()
	}
	return s.input.Focus()
}

func (s *FlightScreen) switchFocus() tea.Cmd {
	if !s.scratch.Visible {
		return nil
	}
	if s.scratch.Focused() {
		s.scratch.Blur()
		return s.input.Focus()
	}
	s.input.Blur()
	return s.scratch.Focus()
}

// submit checks the typed answer against the active question.
func (s *FlightScreen) submit() (screen.Screen, tea.Cmd) {
	raw := s.input.Value()
	value, err := mission.ParseAnswer(raw)
	if err != nil {
		s.feedback = feedbackInvalid
		return s, nil
	}

	s.banner = ""
	s.attempts++
	correct := mission.IsCorrect(s.question, value)
	s.deps.Journal.Answered(context.Background(), s.state, s.question, raw, correct, s.attempts)
	s.input.Submit(correct)

	if correct {
		s.feedback = feedbackVerified
		s.verifying = true
		s.input.Blur()
		s.scratch.Blur()
		return s, s.after(s.deps.FeedbackDelay, func(t token) tea.Msg { return feedbackDoneMsg{t} })
	}

	s.feedback = feedbackWrong
	s.misses++
	if s.misses >= autoHintMisses {
		return s, s.requestHint()
	}
	return s, nil
}

func (s *FlightScreen) handleFeedbackDone(msg feedbackDoneMsg) (screen.Screen, tea.Cmd) {
	if !s.current(msg.token) || !s.verifying {
		return s, nil
	}

	prev := s.state
	next, tr, err := s.deps.Engine.RecordCorrectAnswer(prev)
	if err != nil {
		s.deps.Logger.Error("record correct answer",
			zap.String("mission_id", prev.MissionID.String()),
			zap.String("question_id", s.question.ID),
			zap.Error(err),
		)
		s.verifying = false
		return s, nil
	}
	s.state = next
	s.deps.Journal.Transitioned(context.Background(), prev, next, tr)

	switch tr {
	case mission.TransitionLaunch:
		s.verifying = false
		s.feedback = feedbackNone
		return s, tea.Batch(
			s.after(s.deps.LaunchDelay, func(t token) tea.Msg { return launchDoneMsg{t} }),
			s.after(flameInterval, func(t token) tea.Msg { return flameTickMsg{t} }),
		)
	case mission.TransitionStageComplete:
		finished := s.stage.Title
		s.loadQuestion()
		s.banner = finished + " complete"
	default:
		s.loadQuestion()
	}
	return s, s.input.Init()
}

func (s *FlightScreen) handleLaunchDone(msg launchDoneMsg) (screen.Screen, tea.Cmd) {
	next, err := s.deps.Engine.CompleteLaunch(s.state, msg.missionID)
	if err != nil {
		if !errors.Is(err, mission.ErrStale) {
			s.deps.Logger.Error("complete launch", zap.Error(err))
		}
		return s, nil
	}
	s.state = next
	s.deps.Journal.Completed(context.Background(), next)

	if s.deps.OnComplete == nil {
		return s, nil
	}
	done := s.deps.OnComplete(next)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: done}
	}
}

func (s *FlightScreen) canRequestHint() bool {
	return s.deps.Advisor != nil && s.misses > 0 && !s.hintPending
}

// requestHint asks the flight computer about the last wrong answer. At most
// one request is in flight per question.
func (s *FlightScreen) requestHint() tea.Cmd {
	if !s.canRequestHint() {
		return nil
	}
	s.hintPending = true
	s.hint = nil

	advisor := s.deps.Advisor
	t := s.token()
	req := hint.Request{
		MissionID:  s.state.MissionID.String(),
		QuestionID: s.question.ID,
		Equation:   s.question.Equation,
		Guess:      s.input.Value(),
		Answer:     s.question.Answer,
	}
	return func() tea.Msg {
		res := advisor.Hint(context.Background(), req)
		return hintReadyMsg{token: t, questionID: req.QuestionID, result: res}
	}
}

func (s *FlightScreen) handleHint(msg hintReadyMsg) (screen.Screen, tea.Cmd) {
	if !s.current(msg.token) || msg.questionID != s.question.ID {
		return s, nil
	}
	s.hintPending = false
	res := msg.result
	s.hint = &res
	return s, nil
}

// abort abandons the mission. Restarting clears the mission identity, so
// every tick still in flight for it is dropped on arrival.
func (s *FlightScreen) abort() (screen.Screen, tea.Cmd) {
	s.confirm = nil
	s.deps.Journal.Aborted(context.Background(), s.state, s.question.ID)
	s.state = s.deps.Engine.Restart()

	if s.deps.OnAbort == nil {
		return s, nil
	}
	intro := s.deps.OnAbort()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: intro}
	}
}
