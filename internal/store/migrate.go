package store

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent, so the
// full list is replayed on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS llm_request_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence      INTEGER NOT NULL UNIQUE,
		created_at    INTEGER NOT NULL,
		provider      TEXT NOT NULL,
		model         TEXT NOT NULL,
		purpose       TEXT NOT NULL,
		input_tokens  INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms    INTEGER NOT NULL DEFAULT 0,
		success       INTEGER NOT NULL DEFAULT 0,
		error_message TEXT NOT NULL DEFAULT '',
		request_body  TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_llm_request_events_purpose ON llm_request_events(purpose)`,

	`CREATE TABLE IF NOT EXISTS hint_events (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence    INTEGER NOT NULL UNIQUE,
		created_at  INTEGER NOT NULL,
		mission_id  TEXT NOT NULL,
		question_id TEXT NOT NULL,
		guess       TEXT NOT NULL DEFAULT '',
		hint_text   TEXT NOT NULL,
		source      TEXT NOT NULL,
		latency_ms  INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_hint_events_mission ON hint_events(mission_id)`,

	`CREATE TABLE IF NOT EXISTS mission_events (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence    INTEGER NOT NULL UNIQUE,
		created_at  INTEGER NOT NULL,
		mission_id  TEXT NOT NULL,
		commander   TEXT NOT NULL DEFAULT '',
		action      TEXT NOT NULL
		            CHECK(action IN ('start','stage_complete','launch','complete','abort')),
		stage_index INTEGER NOT NULL DEFAULT 0,
		question_id TEXT NOT NULL DEFAULT '',
		fuel_level  REAL NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_mission_events_mission ON mission_events(mission_id)`,

	`CREATE TABLE IF NOT EXISTS answer_events (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence       INTEGER NOT NULL UNIQUE,
		created_at     INTEGER NOT NULL,
		mission_id     TEXT NOT NULL,
		question_id    TEXT NOT NULL,
		learner_answer TEXT NOT NULL,
		correct        INTEGER NOT NULL DEFAULT 0,
		attempt        INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE INDEX IF NOT EXISTS idx_answer_events_mission ON answer_events(mission_id)`,
}
