package journal

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/algeblast/internal/curriculum"
	"github.com/abhisek/algeblast/internal/mission"
	"github.com/abhisek/algeblast/internal/store"
)

// Journal writes mission lifecycle and answer events to the event log.
// Writes are best-effort: failures are logged and never returned, so the
// game keeps running without a database. A nil *Journal discards events.
type Journal struct {
	repo   store.EventRepo
	logger *zap.Logger
}

// New creates a Journal. repo may be nil, in which case events are
// only logged.
func New(repo store.EventRepo, logger *zap.Logger) *Journal {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Journal{repo: repo, logger: logger}
}

// Started records the beginning of a mission.
func (j *Journal) Started(ctx context.Context, s mission.State) {
	j.record(ctx, s, store.MissionActionStart, "")
}

// Answered records one numeric answer submission.
func (j *Journal) Answered(ctx context.Context, s mission.State, q curriculum.Question, input string, correct bool, attempt int) {
	if j == nil {
		return
	}
	j.logger.Info("answer submitted",
		zap.String("mission_id", s.MissionID.String()),
		zap.String("question_id", q.ID),
		zap.Bool("correct", correct),
		zap.Int("attempt", attempt),
	)
	if j.repo == nil {
		return
	}
	err := j.repo.AppendAnswerEvent(context.WithoutCancel(ctx), store.AnswerEventData{
		MissionID:     s.MissionID.String(),
		QuestionID:    q.ID,
		LearnerAnswer: input,
		Correct:       correct,
		Attempt:       attempt,
	})
	if err != nil {
		j.logger.Warn("failed to record answer event", zap.Error(err))
	}
}

// Transitioned records the outcome of RecordCorrectAnswer. Ordinary advances
// are logged but not stored.
func (j *Journal) Transitioned(ctx context.Context, prev, next mission.State, t mission.Transition) {
	if j == nil {
		return
	}
	j.logger.Debug("mission transition",
		zap.String("mission_id", next.MissionID.String()),
		zap.Stringer("transition", t),
		zap.Int("stage", next.StageIndex),
		zap.Float64("fuel", next.FuelLevel),
	)
	switch t {
	case mission.TransitionStageComplete:
		// The completed stage is the one the previous state pointed at.
		rec := next
		rec.StageIndex = prev.StageIndex
		j.record(ctx, rec, store.MissionActionStageComplete, "")
	case mission.TransitionLaunch:
		j.record(ctx, next, store.MissionActionLaunch, "")
	}
}

// Completed records a mission that reached orbit.
func (j *Journal) Completed(ctx context.Context, s mission.State) {
	j.record(ctx, s, store.MissionActionComplete, "")
}

// Aborted records a mission abandoned by the commander. questionID names
// the question on screen at the time.
func (j *Journal) Aborted(ctx context.Context, s mission.State, questionID string) {
	j.record(ctx, s, store.MissionActionAbort, questionID)
}

func (j *Journal) record(ctx context.Context, s mission.State, action, questionID string) {
	if j == nil {
		return
	}
	j.logger.Info("mission "+action,
		zap.String("mission_id", s.MissionID.String()),
		zap.String("commander", s.Commander),
		zap.Int("stage", s.StageIndex),
		zap.Float64("fuel", s.FuelLevel),
	)
	if j.repo == nil {
		return
	}
	err := j.repo.AppendMissionEvent(context.WithoutCancel(ctx), store.MissionEventData{
		MissionID:  s.MissionID.String(),
		Commander:  s.Commander,
		Action:     action,
		StageIndex: s.StageIndex,
		QuestionID: questionID,
		FuelLevel:  s.FuelLevel,
	})
	if err != nil {
		j.logger.Warn("failed to record mission event", zap.String("action", action), zap.Error(err))
	}
}
