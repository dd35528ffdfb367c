package mission

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/algeblast/internal/curriculum"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(curriculum.Default())
	require.NoError(t, err)
	return e
}

func startedState(t *testing.T, e *Engine) State {
	t.Helper()
	s, err := e.StartMission(e.Initial(), "Nova")
	require.NoError(t, err)
	return s
}

func TestNewEngineRejectsEmptyBank(t *testing.T) {
	_, err := NewEngine(nil)
	assert.ErrorIs(t, err, ErrEmptyBank)
}

func TestFuelPerQuestion(t *testing.T) {
	e := newTestEngine(t)
	assert.InDelta(t, 100.0/12, e.FuelPerQuestion(), 1e-12)
}

func TestInitialState(t *testing.T) {
	e := newTestEngine(t)
	s := e.Initial()
	assert.Equal(t, State{Phase: PhaseIntro}, s)
	assert.Equal(t, uuid.Nil, s.MissionID)
}

func TestStartMission(t *testing.T) {
	id := uuid.MustParse("6f1c1c3e-8d7a-4e44-9a64-3b5e7ad1f001")
	e, err := NewEngine(curriculum.Default(), WithIDSource(func() uuid.UUID { return id }))
	require.NoError(t, err)

	s, err := e.StartMission(e.Initial(), "  Nova  ")
	require.NoError(t, err)
	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Equal(t, "Nova", s.Commander)
	assert.Equal(t, id, s.MissionID)
	assert.Zero(t, s.FuelLevel)
	assert.Zero(t, s.StageIndex)
	assert.Zero(t, s.QuestionIndex)
}

func TestStartMissionBlankName(t *testing.T) {
	e := newTestEngine(t)
	for _, name := range []string{"", "   ", "\t\n"} {
		s, err := e.StartMission(e.Initial(), name)
		assert.ErrorIs(t, err, ErrEmptyCommander, "name %q", name)
		assert.Equal(t, PhaseIntro, s.Phase)
		assert.Empty(t, s.Commander)
	}
}

func TestStartMissionTruncatesLongName(t *testing.T) {
	e := newTestEngine(t)
	s, err := e.StartMission(e.Initial(), "Commander Zarquon the Bold")
	require.NoError(t, err)
	assert.Equal(t, "Commander Zarqu", s.Commander)
	assert.Len(t, []rune(s.Commander), MaxCommanderLen)
}

func TestStartMissionOutsideIntro(t *testing.T) {
	e := newTestEngine(t)
	s := startedState(t, e)
	_, err := e.StartMission(s, "Again")
	assert.ErrorIs(t, err, ErrInvalidPhase)
}

func TestCurrentQuestion(t *testing.T) {
	e := newTestEngine(t)
	s := startedState(t, e)

	q, err := e.CurrentQuestion(s)
	require.NoError(t, err)
	assert.Equal(t, "1-1", q.ID)

	s.StageIndex, s.QuestionIndex = 2, 1
	q, err = e.CurrentQuestion(s)
	require.NoError(t, err)
	assert.Equal(t, "3-2", q.ID)
}

func TestCurrentQuestionOutOfRange(t *testing.T) {
	e := newTestEngine(t)
	for _, idx := range [][2]int{{0, 3}, {4, 0}, {-1, 0}, {0, -1}} {
		s := State{Phase: PhasePlaying, StageIndex: idx[0], QuestionIndex: idx[1]}
		_, err := e.CurrentQuestion(s)
		assert.ErrorIs(t, err, ErrNotFound, "indices %v", idx)
	}
}

func TestRecordCorrectAnswerOrdinaryAdvance(t *testing.T) {
	e := newTestEngine(t)
	s := startedState(t, e)

	next, tr, err := e.RecordCorrectAnswer(s)
	require.NoError(t, err)
	assert.Equal(t, TransitionAdvance, tr)
	assert.Equal(t, 0, next.StageIndex)
	assert.Equal(t, 1, next.QuestionIndex)
	assert.InDelta(t, 8.333, next.FuelLevel, 0.001)
	assert.False(t, next.Launched)

	// The input state is untouched.
	assert.Zero(t, s.FuelLevel)
	assert.Zero(t, s.QuestionIndex)
}

func TestRecordCorrectAnswerStageTransition(t *testing.T) {
	e := newTestEngine(t)
	s := startedState(t, e)

	for i := 0; i < e.Curriculum().StageCount()-1; i++ {
		var tr Transition
		var err error
		for q := 0; q < 3; q++ {
			s, tr, err = e.RecordCorrectAnswer(s)
			require.NoError(t, err)
		}
		assert.Equal(t, TransitionStageComplete, tr)
		assert.Equal(t, i+1, s.StageIndex)
		assert.Equal(t, 0, s.QuestionIndex)
		assert.False(t, s.Launched)
	}
}

func TestRecordCorrectAnswerScenario(t *testing.T) {
	e := newTestEngine(t)
	s := startedState(t, e)

	s, _, err := e.RecordCorrectAnswer(s)
	require.NoError(t, err)
	assert.InDelta(t, 8.33, s.FuelLevel, 0.01)
	assert.Equal(t, 1, s.QuestionIndex)

	for i := 0; i < 2; i++ {
		s, _, err = e.RecordCorrectAnswer(s)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, s.StageIndex)
	assert.Equal(t, 0, s.QuestionIndex)
	assert.InDelta(t, 25, s.FuelLevel, 1e-9)

	for i := 0; i < 9; i++ {
		s, _, err = e.RecordCorrectAnswer(s)
		require.NoError(t, err)
	}
	assert.Equal(t, 100.0, s.FuelLevel)
	assert.True(t, s.Launched)
	assert.Equal(t, PhasePlaying, s.Phase)
}

func TestGlobalCompletionIsSingleTransition(t *testing.T) {
	e := newTestEngine(t)
	s := State{
		MissionID:     uuid.New(),
		Phase:         PhasePlaying,
		StageIndex:    3,
		QuestionIndex: 2,
		FuelLevel:     91.66666666666667,
		Commander:     "Nova",
	}

	next, tr, err := e.RecordCorrectAnswer(s)
	require.NoError(t, err)
	assert.Equal(t, TransitionLaunch, tr)
	assert.Equal(t, 100.0, next.FuelLevel)
	assert.True(t, next.Launched)
	// Indices stay on the final question.
	assert.Equal(t, 3, next.StageIndex)
	assert.Equal(t, 2, next.QuestionIndex)
	assert.Equal(t, PhasePlaying, next.Phase)
}

func TestFuelExactlyFullForEveryBankSize(t *testing.T) {
	for n := 1; n <= 40; n++ {
		stages := []curriculum.Stage{{ID: "A"}, {ID: "B"}}
		var qs []curriculum.Question
		for i := 0; i < n+1; i++ {
			stage := curriculum.StageID("A")
			if i%2 == 1 {
				stage = "B"
			}
			qs = append(qs, curriculum.Question{
				ID: uuid.NewString(), Stage: stage, Equation: "x = 1", Answer: 1,
			})
		}
		c, err := curriculum.New(stages, qs)
		require.NoError(t, err)
		e, err := NewEngine(c)
		require.NoError(t, err)

		s, err := e.StartMission(e.Initial(), "Nova")
		require.NoError(t, err)

		prev := s.FuelLevel
		for !s.Launched {
			s, _, err = e.RecordCorrectAnswer(s)
			require.NoError(t, err)
			require.GreaterOrEqual(t, s.FuelLevel, prev, "fuel must not decrease")
			require.LessOrEqual(t, s.FuelLevel, MaxFuel)
			if !s.Launched {
				require.Less(t, s.FuelLevel, MaxFuel, "fuel reached 100 before launch with %d questions", n+1)
			}
			prev = s.FuelLevel
		}
		assert.Equal(t, MaxFuel, s.FuelLevel, "bank of %d questions", n+1)
	}
}

func TestRecordCorrectAnswerRefusedAfterLaunch(t *testing.T) {
	e := newTestEngine(t)
	s := State{Phase: PhasePlaying, StageIndex: 3, QuestionIndex: 2, Launched: true, FuelLevel: 100}
	next, tr, err := e.RecordCorrectAnswer(s)
	assert.ErrorIs(t, err, ErrInvalidPhase)
	assert.Equal(t, TransitionNone, tr)
	assert.Equal(t, s, next)
}

func TestRecordCorrectAnswerRefusedInIntro(t *testing.T) {
	e := newTestEngine(t)
	_, _, err := e.RecordCorrectAnswer(e.Initial())
	assert.ErrorIs(t, err, ErrInvalidPhase)
}

func TestRecordCorrectAnswerOutOfRange(t *testing.T) {
	e := newTestEngine(t)
	s := State{Phase: PhasePlaying, StageIndex: 1, QuestionIndex: 7}
	_, _, err := e.RecordCorrectAnswer(s)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteLaunch(t *testing.T) {
	e := newTestEngine(t)
	s := startedState(t, e)
	for !s.Launched {
		var err error
		s, _, err = e.RecordCorrectAnswer(s)
		require.NoError(t, err)
	}

	done, err := e.CompleteLaunch(s, s.MissionID)
	require.NoError(t, err)
	assert.Equal(t, PhaseCompleted, done.Phase)
	assert.Equal(t, 100.0, done.FuelLevel)
	assert.True(t, done.Launched)
}

func TestCompleteLaunchStaleAfterRestart(t *testing.T) {
	e := newTestEngine(t)
	s := startedState(t, e)
	for !s.Launched {
		var err error
		s, _, err = e.RecordCorrectAnswer(s)
		require.NoError(t, err)
	}
	pending := s.MissionID

	// Restart and begin a new mission before the timer fires.
	s = startedState(t, e)

	got, err := e.CompleteLaunch(s, pending)
	assert.ErrorIs(t, err, ErrStale)
	assert.Equal(t, s, got)

	// Also stale against the bare intro state.
	_, err = e.CompleteLaunch(e.Restart(), pending)
	assert.True(t, errors.Is(err, ErrStale))
}

func TestCompleteLaunchBeforeLaunch(t *testing.T) {
	e := newTestEngine(t)
	s := startedState(t, e)
	_, err := e.CompleteLaunch(s, s.MissionID)
	assert.ErrorIs(t, err, ErrInvalidPhase)
}

func TestRestartAlwaysCanonical(t *testing.T) {
	e := newTestEngine(t)
	s := startedState(t, e)
	for !s.Launched {
		var err error
		s, _, err = e.RecordCorrectAnswer(s)
		require.NoError(t, err)
	}
	s, err := e.CompleteLaunch(s, s.MissionID)
	require.NoError(t, err)

	assert.Equal(t, e.Initial(), e.Restart())
	assert.Equal(t, State{Phase: PhaseIntro}, e.Restart())
}

func TestDisplayFuel(t *testing.T) {
	tests := []struct {
		fuel float64
		want int
	}{
		{0, 0},
		{8.333, 8},
		{16.666, 17},
		{12.5, 13},
		{99.4, 99},
		{100, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayFuel(State{FuelLevel: tt.fuel}), "fuel %v", tt.fuel)
	}
}

func TestPhaseAndTransitionStrings(t *testing.T) {
	assert.Equal(t, "intro", PhaseIntro.String())
	assert.Equal(t, "playing", PhasePlaying.String())
	assert.Equal(t, "completed", PhaseCompleted.String())
	assert.Equal(t, "launch", TransitionLaunch.String())
	assert.Equal(t, "stage-complete", TransitionStageComplete.String())
}
