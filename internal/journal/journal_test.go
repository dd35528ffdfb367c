package journal

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/algeblast/internal/curriculum"
	"github.com/abhisek/algeblast/internal/mission"
	"github.com/abhisek/algeblast/internal/store"
)

// journalRepo captures mission and answer events. Methods it does not
// override panic through the nil embedded interface.
type journalRepo struct {
	store.EventRepo
	missions []store.MissionEventData
	answers  []store.AnswerEventData
	err      error
}

func (r *journalRepo) AppendMissionEvent(_ context.Context, data store.MissionEventData) error {
	if r.err != nil {
		return r.err
	}
	r.missions = append(r.missions, data)
	return nil
}

func (r *journalRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	if r.err != nil {
		return r.err
	}
	r.answers = append(r.answers, data)
	return nil
}

func newTestEngine(t *testing.T) *mission.Engine {
	t.Helper()
	e, err := mission.NewEngine(curriculum.Default())
	require.NoError(t, err)
	return e
}

func startedState(t *testing.T, e *mission.Engine) mission.State {
	t.Helper()
	s, err := e.StartMission(e.Initial(), "Nova")
	require.NoError(t, err)
	return s
}

func TestJournalRecordsLifecycle(t *testing.T) {
	e := newTestEngine(t)
	repo := &journalRepo{}
	j := New(repo, nil)
	ctx := context.Background()

	s := startedState(t, e)
	j.Started(ctx, s)

	for {
		q, err := e.CurrentQuestion(s)
		require.NoError(t, err)
		j.Answered(ctx, s, q, mission.FormatAnswer(q.Answer), true, 1)

		next, tr, err := e.RecordCorrectAnswer(s)
		require.NoError(t, err)
		j.Transitioned(ctx, s, next, tr)
		s = next
		if tr == mission.TransitionLaunch {
			break
		}
	}
	s, err := e.CompleteLaunch(s, s.MissionID)
	require.NoError(t, err)
	j.Completed(ctx, s)

	var actions []string
	for _, m := range repo.missions {
		actions = append(actions, m.Action)
		assert.Equal(t, s.MissionID.String(), m.MissionID)
		assert.Equal(t, "Nova", m.Commander)
	}
	assert.Equal(t, []string{
		store.MissionActionStart,
		store.MissionActionStageComplete,
		store.MissionActionStageComplete,
		store.MissionActionStageComplete,
		store.MissionActionLaunch,
		store.MissionActionComplete,
	}, actions)

	// Stage completion events name the stage that was finished.
	assert.Equal(t, 0, repo.missions[1].StageIndex)
	assert.Equal(t, 2, repo.missions[3].StageIndex)
	assert.InDelta(t, 100.0, repo.missions[4].FuelLevel, 1e-9)

	assert.Len(t, repo.answers, 12)
	assert.Equal(t, "1-1", repo.answers[0].QuestionID)
	assert.Equal(t, "5", repo.answers[0].LearnerAnswer)
}

func TestJournalAbort(t *testing.T) {
	e := newTestEngine(t)
	repo := &journalRepo{}
	j := New(repo, nil)

	s := startedState(t, e)
	j.Aborted(context.Background(), s, "1-1")

	require.Len(t, repo.missions, 1)
	assert.Equal(t, store.MissionActionAbort, repo.missions[0].Action)
	assert.Equal(t, "1-1", repo.missions[0].QuestionID)
}

func TestJournalFailuresAreLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	repo := &journalRepo{err: errors.New("disk full")}
	j := New(repo, zap.New(core))

	e := newTestEngine(t)
	s := startedState(t, e)
	q, err := e.CurrentQuestion(s)
	require.NoError(t, err)

	j.Started(context.Background(), s)
	j.Answered(context.Background(), s, q, "4", false, 1)

	assert.Equal(t, 1, logs.FilterMessage("failed to record mission event").Len())
	assert.Equal(t, 1, logs.FilterMessage("failed to record answer event").Len())
}

func TestJournalWithoutRepo(t *testing.T) {
	e := newTestEngine(t)
	s := startedState(t, e)

	assert.NotPanics(t, func() {
		New(nil, nil).Started(context.Background(), s)
		var j *Journal
		j.Completed(context.Background(), s)
		j.Aborted(context.Background(), s, "")
	})
}
