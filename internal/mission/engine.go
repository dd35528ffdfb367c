// Package mission implements the progress engine: a pure state machine that
// turns correct answers into fuel, stage and launch transitions.
package mission

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/abhisek/algeblast/internal/curriculum"
)

// MaxCommanderLen is the longest commander name kept, in runes.
const MaxCommanderLen = 15

// MaxFuel is the fuel level of a fully charged rocket.
const MaxFuel = 100.0

// Engine computes state transitions over a fixed curriculum. It holds no
// session state of its own and is safe for concurrent use.
type Engine struct {
	curr            *curriculum.Curriculum
	fuelPerQuestion float64
	newID           func() uuid.UUID
}

// Option configures an Engine.
type Option func(*Engine)

// WithIDSource overrides how mission IDs are generated.
func WithIDSource(fn func() uuid.UUID) Option {
	return func(e *Engine) { e.newID = fn }
}

// NewEngine creates an Engine. It fails when the curriculum has no
// questions, since the per-question fuel increment would be undefined.
func NewEngine(c *curriculum.Curriculum, opts ...Option) (*Engine, error) {
	if c == nil || c.TotalQuestions() == 0 {
		return nil, ErrEmptyBank
	}
	e := &Engine{
		curr:            c,
		fuelPerQuestion: MaxFuel / float64(c.TotalQuestions()),
		newID:           uuid.New,
	}
	for _, o := range opts {
		o(e)
	}
	return e, nil
}

// Curriculum returns the curriculum the engine runs over.
func (e *Engine) Curriculum() *curriculum.Curriculum {
	return e.curr
}

// FuelPerQuestion returns the fuel added by each correct answer.
func (e *Engine) FuelPerQuestion() float64 {
	return e.fuelPerQuestion
}

// Initial returns the canonical starting state.
func (e *Engine) Initial() State {
	return State{Phase: PhaseIntro}
}

// Restart discards any prior state and returns the canonical starting state.
func (e *Engine) Restart() State {
	return e.Initial()
}

// StartMission moves from Intro to Playing under the given commander name.
// A name that is blank after trimming is refused and s is returned unchanged.
func (e *Engine) StartMission(s State, name string) (State, error) {
	if s.Phase != PhaseIntro {
		return s, fmt.Errorf("start mission in %s phase: %w", s.Phase, ErrInvalidPhase)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return s, ErrEmptyCommander
	}
	if utf8.RuneCountInString(name) > MaxCommanderLen {
		name = strings.TrimSpace(string([]rune(name)[:MaxCommanderLen]))
	}

	next := e.Initial()
	next.MissionID = e.newID()
	next.Phase = PhasePlaying
	next.Commander = name
	return next, nil
}

// CurrentQuestion returns the question addressed by the state's indices.
func (e *Engine) CurrentQuestion(s State) (curriculum.Question, error) {
	qs := e.curr.StageQuestions(s.StageIndex)
	if s.QuestionIndex < 0 || s.QuestionIndex >= len(qs) {
		return curriculum.Question{}, fmt.Errorf("stage %d question %d: %w", s.StageIndex, s.QuestionIndex, ErrNotFound)
	}
	return qs[s.QuestionIndex], nil
}

// CurrentStage returns the stage addressed by the state.
func (e *Engine) CurrentStage(s State) (curriculum.Stage, error) {
	st, ok := e.curr.Stage(s.StageIndex)
	if !ok {
		return curriculum.Stage{}, fmt.Errorf("stage %d: %w", s.StageIndex, ErrNotFound)
	}
	return st, nil
}

// RecordCorrectAnswer applies a correct answer to the active question.
//
// Answering the final question of the final stage sets fuel to exactly
// MaxFuel and marks the rocket launched in a single transition; the indices
// stay on that question and the phase stays Playing until CompleteLaunch.
func (e *Engine) RecordCorrectAnswer(s State) (State, Transition, error) {
	if s.Phase != PhasePlaying || s.Launched {
		return s, TransitionNone, fmt.Errorf("record answer in %s phase (launched=%t): %w", s.Phase, s.Launched, ErrInvalidPhase)
	}
	if _, err := e.CurrentQuestion(s); err != nil {
		return s, TransitionNone, err
	}

	lastQuestion := s.QuestionIndex == len(e.curr.StageQuestions(s.StageIndex))-1
	lastStage := s.StageIndex == e.curr.StageCount()-1

	next := s
	switch {
	case lastQuestion && lastStage:
		next.FuelLevel = MaxFuel
		next.Launched = true
		return next, TransitionLaunch, nil
	case lastQuestion:
		next.FuelLevel = e.addFuel(s.FuelLevel)
		next.StageIndex++
		next.QuestionIndex = 0
		return next, TransitionStageComplete, nil
	default:
		next.FuelLevel = e.addFuel(s.FuelLevel)
		next.QuestionIndex++
		return next, TransitionAdvance, nil
	}
}

// CompleteLaunch finishes the launch sequence. missionID must match the
// state's mission; a mismatch means the mission was restarted while the
// launch timer was pending.
func (e *Engine) CompleteLaunch(s State, missionID uuid.UUID) (State, error) {
	if missionID != s.MissionID {
		return s, ErrStale
	}
	if s.Phase != PhasePlaying || !s.Launched {
		return s, fmt.Errorf("complete launch in %s phase (launched=%t): %w", s.Phase, s.Launched, ErrInvalidPhase)
	}
	next := s
	next.Phase = PhaseCompleted
	return next, nil
}

// DisplayFuel rounds the fuel level for display.
func DisplayFuel(s State) int {
	return int(math.Round(s.FuelLevel))
}

func (e *Engine) addFuel(level float64) float64 {
	return min(level+e.fuelPerQuestion, MaxFuel)
}
