package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	attempt := data.Attempt
	if attempt < 1 {
		attempt = 1
	}
	err := r.appendEvent(ctx, "answer_events",
		[]string{"mission_id", "question_id", "learner_answer", "correct", "attempt"},
		[]any{data.MissionID, data.QuestionID, data.LearnerAnswer, boolInt(data.Correct), attempt},
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}
