package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendHintEvent(ctx context.Context, data HintEventData) error {
	err := r.appendEvent(ctx, "hint_events",
		[]string{"mission_id", "question_id", "guess", "hint_text", "source", "latency_ms"},
		[]any{data.MissionID, data.QuestionID, data.Guess, data.HintText, data.Source, data.LatencyMs},
	)
	if err != nil {
		return fmt.Errorf("save hint event: %w", err)
	}
	return nil
}
