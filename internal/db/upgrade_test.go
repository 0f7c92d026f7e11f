package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrate_UpgradePath_LegacyToCurrentSchema simulates upgrading a database
// created before set flags and personal records existed. Verifies that:
// 1. Sessions and sets inserted under the old schema survive migration
// 2. The warmup and drop_set columns are added with defaults
// 3. Personal records are derived from the recorded sets
// 4. Re-running Migrate changes nothing
func TestMigrate_UpgradePath_LegacyToCurrentSchema(t *testing.T) {
	// Create a raw DB without using OpenDB (to manually control schema).
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`PRAGMA foreign_keys = ON`)
	require.NoError(t, err)

	legacyStatements := []string{
		`CREATE TABLE IF NOT EXISTS workout_sessions (
			id                  TEXT PRIMARY KEY,
			plan_name           TEXT NOT NULL DEFAULT '',
			started_at          TEXT NOT NULL,
			ended_at            TEXT,
			total_time_sec      INTEGER NOT NULL DEFAULT 0,
			total_volume        REAL NOT NULL DEFAULT 0,
			completed_sets      INTEGER NOT NULL DEFAULT 0,
			total_rest_sec      INTEGER NOT NULL DEFAULT 0,
			exercises_completed INTEGER NOT NULL DEFAULT 0,
			personal_records    INTEGER NOT NULL DEFAULT 0,
			created_at          TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS workout_sets (
			id            TEXT PRIMARY KEY,
			session_id    TEXT NOT NULL REFERENCES workout_sessions(id) ON DELETE CASCADE,
			exercise_id   TEXT NOT NULL,
			exercise_name TEXT NOT NULL DEFAULT '',
			set_index     INTEGER NOT NULL,
			weight        REAL NOT NULL DEFAULT 0,
			reps          INTEGER NOT NULL,
			rpe           INTEGER,
			notes         TEXT NOT NULL DEFAULT '',
			completed_at  TEXT NOT NULL,
			UNIQUE (session_id, exercise_id, set_index)
		)`,
	}
	for i, stmt := range legacyStatements {
		_, err := db.Exec(stmt)
		require.NoError(t, err, "legacy statement %d failed", i)
	}

	// Insert legacy data BEFORE running migrations.
	_, err = db.Exec(`INSERT INTO workout_sessions (id, plan_name, started_at, completed_sets, created_at)
		VALUES ('s1', 'Push Day', '2026-01-10T09:00:00Z', 3, '2026-01-10T10:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO workout_sessions (id, plan_name, started_at, completed_sets, created_at)
		VALUES ('s2', 'Push Day', '2026-01-17T09:00:00Z', 1, '2026-01-17T10:00:00Z')`)
	require.NoError(t, err)

	legacySets := []struct {
		id, session, exercise string
		index                 int
		weight                float64
		reps                  int
		at                    string
	}{
		{"w1", "s1", "bench", 0, 185, 5, "2026-01-10T09:05:00Z"},
		{"w2", "s1", "bench", 1, 185, 6, "2026-01-10T09:08:00Z"},
		{"w3", "s1", "ohp", 0, 95, 8, "2026-01-10T09:20:00Z"},
		{"w4", "s2", "bench", 0, 200, 3, "2026-01-17T09:05:00Z"},
	}
	for _, s := range legacySets {
		_, err = db.Exec(`INSERT INTO workout_sets (id, session_id, exercise_id, set_index, weight, reps, completed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`, s.id, s.session, s.exercise, s.index, s.weight, s.reps, s.at)
		require.NoError(t, err)
	}

	// === Run current migrations on legacy DB ===
	err = Migrate(db)
	require.NoError(t, err, "migration on legacy schema should succeed")

	// === Verify data survived ===
	var planName string
	var completed int
	err = db.QueryRow(`SELECT plan_name, completed_sets FROM workout_sessions WHERE id = 's1'`).Scan(&planName, &completed)
	require.NoError(t, err)
	assert.Equal(t, "Push Day", planName, "session should survive migration")
	assert.Equal(t, 3, completed)

	var setCount int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM workout_sets`).Scan(&setCount))
	assert.Equal(t, 4, setCount, "sets should survive migration")

	// === Verify new columns added with defaults ===
	var warmup, dropSet int
	err = db.QueryRow(`SELECT warmup, drop_set FROM workout_sets WHERE id = 'w1'`).Scan(&warmup, &dropSet)
	require.NoError(t, err)
	assert.Zero(t, warmup)
	assert.Zero(t, dropSet)

	// === Verify records were derived ===
	var weight float64
	var reps int
	var sessionID string
	err = db.QueryRow(`SELECT weight, reps, session_id FROM personal_records WHERE exercise_id = 'bench'`).Scan(&weight, &reps, &sessionID)
	require.NoError(t, err)
	assert.Equal(t, 185.0, weight, "185x6=1110 beats 200x3=600")
	assert.Equal(t, 6, reps)
	assert.Equal(t, "s1", sessionID)

	err = db.QueryRow(`SELECT weight, reps FROM personal_records WHERE exercise_id = 'ohp'`).Scan(&weight, &reps)
	require.NoError(t, err)
	assert.Equal(t, 95.0, weight)
	assert.Equal(t, 8, reps)

	// === Verify idempotency: running Migrate again should not break anything ===
	err = Migrate(db)
	require.NoError(t, err, "re-running Migrate on already-migrated DB should succeed")

	var records int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM personal_records`).Scan(&records))
	assert.Equal(t, 2, records)
}
