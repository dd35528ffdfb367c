package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendMissionEvent(ctx context.Context, data MissionEventData) error {
	err := r.appendEvent(ctx, "mission_events",
		[]string{"mission_id", "commander", "action", "stage_index", "question_id", "fuel_level"},
		[]any{data.MissionID, data.Commander, data.Action, data.StageIndex, data.QuestionID, data.FuelLevel},
	)
	if err != nil {
		return fmt.Errorf("save mission event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentMissions(ctx context.Context, limit int) ([]MissionSummaryRecord, error) {
	sel := builder().Select("mission_id", "commander", "created_at").
		From(entsql.Table("mission_events")).
		Where(entsql.EQ("action", MissionActionStart)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query missions: %w", err)
	}

	var records []MissionSummaryRecord
	for rows.Next() {
		var rec MissionSummaryRecord
		var startedAt int64
		if err := rows.Scan(&rec.MissionID, &rec.Commander, &startedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan mission: %w", err)
		}
		rec.StartedAt = time.UnixMilli(startedAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate missions: %w", err)
	}
	// The store runs on a single connection; release it before the
	// per-mission lookups below.
	rows.Close()

	for i := range records {
		if err := r.fillMissionSummary(ctx, &records[i]); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// fillMissionSummary loads the outcome and answer/hint counts of one mission.
func (r *eventRepo) fillMissionSummary(ctx context.Context, rec *MissionSummaryRecord) error {
	query, args := builder().Select("action", "fuel_level").
		From(entsql.Table("mission_events")).
		Where(entsql.EQ("mission_id", rec.MissionID)).
		OrderBy(entsql.Desc("sequence")).
		Limit(1).
		Query()
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&rec.Outcome, &rec.FuelLevel); err != nil {
		return fmt.Errorf("query mission outcome: %w", err)
	}

	query, args = builder().Select(entsql.Count("*"), entsql.Sum("correct")).
		From(entsql.Table("answer_events")).
		Where(entsql.EQ("mission_id", rec.MissionID)).
		Query()
	var correct sql.NullInt64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&rec.Answers, &correct); err != nil {
		return fmt.Errorf("query mission answers: %w", err)
	}
	rec.CorrectAnswers = int(correct.Int64)

	query, args = builder().Select(entsql.Count("*")).
		From(entsql.Table("hint_events")).
		Where(entsql.EQ("mission_id", rec.MissionID)).
		Query()
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&rec.Hints); err != nil {
		return fmt.Errorf("query mission hints: %w", err)
	}
	return nil
}
