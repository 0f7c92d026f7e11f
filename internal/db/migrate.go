package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillPersonalRecords(db); err != nil {
		return fmt.Errorf("backfilling personal records: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS workout_sessions (
		id                  TEXT PRIMARY KEY,
		plan_name           TEXT NOT NULL DEFAULT '',
		started_at          TEXT NOT NULL,
		ended_at            TEXT,
		total_time_sec      INTEGER NOT NULL DEFAULT 0 CHECK(total_time_sec >= 0),
		total_volume        REAL NOT NULL DEFAULT 0 CHECK(total_volume >= 0),
		completed_sets      INTEGER NOT NULL DEFAULT 0 CHECK(completed_sets >= 0),
		total_rest_sec      INTEGER NOT NULL DEFAULT 0 CHECK(total_rest_sec >= 0),
		exercises_completed INTEGER NOT NULL DEFAULT 0,
		personal_records    INTEGER NOT NULL DEFAULT 0,
		created_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_workout_sessions_started ON workout_sessions(started_at)`,

	`CREATE TABLE IF NOT EXISTS workout_sets (
		id            TEXT PRIMARY KEY,
		session_id    TEXT NOT NULL REFERENCES workout_sessions(id) ON DELETE CASCADE,
		exercise_id   TEXT NOT NULL,
		exercise_name TEXT NOT NULL DEFAULT '',
		set_index     INTEGER NOT NULL CHECK(set_index >= 0),
		weight        REAL NOT NULL DEFAULT 0 CHECK(weight >= 0),
		reps          INTEGER NOT NULL CHECK(reps >= 1),
		rpe           INTEGER CHECK(rpe IS NULL OR rpe BETWEEN 1 AND 10),
		notes         TEXT NOT NULL DEFAULT '',
		completed_at  TEXT NOT NULL,
		UNIQUE (session_id, exercise_id, set_index)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_workout_sets_exercise ON workout_sets(exercise_id, completed_at)`,
	`CREATE INDEX IF NOT EXISTS idx_workout_sets_session ON workout_sets(session_id)`,

	`CREATE TABLE IF NOT EXISTS personal_records (
		exercise_id   TEXT PRIMARY KEY,
		exercise_name TEXT NOT NULL DEFAULT '',
		weight        REAL NOT NULL CHECK(weight >= 0),
		reps          INTEGER NOT NULL CHECK(reps >= 1),
		achieved_at   TEXT NOT NULL,
		session_id    TEXT REFERENCES workout_sessions(id) ON DELETE SET NULL
	)`,

	// Set flags added after the first release.
	`ALTER TABLE workout_sets ADD COLUMN warmup INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE workout_sets ADD COLUMN drop_set INTEGER NOT NULL DEFAULT 0`,
}

// migrateBackfillPersonalRecords derives a record for every exercise that has
// recorded working sets but no personal_records row yet (databases created
// before records were tracked). Warmup sets never count. Idempotent.
func migrateBackfillPersonalRecords(db *sql.DB) error {
	ctx := context.Background()

	var missing int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT s.exercise_id)
		 FROM workout_sets s
		 LEFT JOIN personal_records r ON r.exercise_id = s.exercise_id
		 WHERE r.exercise_id IS NULL AND s.warmup = 0`).Scan(&missing)
	if err != nil {
		return fmt.Errorf("counting exercises without records: %w", err)
	}
	if missing == 0 {
		return nil
	}

	// The best set per exercise by weight x reps; ties go to the earliest set.
	query := `INSERT INTO personal_records (exercise_id, exercise_name, weight, reps, achieved_at, session_id)
		SELECT exercise_id, exercise_name, weight, reps, completed_at, session_id FROM (
			SELECT s.exercise_id, s.exercise_name, s.weight, s.reps, s.completed_at, s.session_id,
			       ROW_NUMBER() OVER (
			           PARTITION BY s.exercise_id
			           ORDER BY s.weight * s.reps DESC, s.completed_at ASC
			       ) AS rn
			FROM workout_sets s
			LEFT JOIN personal_records r ON r.exercise_id = s.exercise_id
			WHERE r.exercise_id IS NULL AND s.warmup = 0
		) WHERE rn = 1`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("inserting derived records: %w", err)
	}
	return nil
}
