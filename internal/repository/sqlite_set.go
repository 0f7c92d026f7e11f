package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/spotter/internal/db"
	"github.com/alexanderramin/spotter/internal/domain"
)

const setColumns = `id, session_id, exercise_id, exercise_name, set_index, weight, reps,
	rpe, warmup, drop_set, notes, completed_at`

// SQLiteSetRepo implements SetRepo using a SQLite database.
type SQLiteSetRepo struct {
	db db.DBTX
}

// NewSQLiteSetRepo creates a new SQLiteSetRepo.
func NewSQLiteSetRepo(conn db.DBTX) *SQLiteSetRepo {
	return &SQLiteSetRepo{db: conn}
}

func (r *SQLiteSetRepo) Create(ctx context.Context, s *domain.RecordedSet) error {
	query := `INSERT INTO workout_sets (` + setColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.SessionID,
		s.ExerciseID,
		s.ExerciseName,
		s.SetIndex,
		s.Weight,
		s.Reps,
		nullableIntToValue(s.RPE),
		boolToInt(s.Warmup),
		boolToInt(s.DropSet),
		s.Notes,
		s.CompletedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting workout set: %w", err)
	}
	return nil
}

func (r *SQLiteSetRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.RecordedSet, error) {
	query := `SELECT ` + setColumns + `
		FROM workout_sets WHERE session_id = ?
		ORDER BY completed_at, set_index`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing sets by session: %w", err)
	}
	defer rows.Close()
	return scanSets(rows)
}

func (r *SQLiteSetRepo) LastWorkout(ctx context.Context, exerciseID string) (*domain.LastWorkout, error) {
	query := `SELECT ` + setColumns + `
		FROM workout_sets
		WHERE exercise_id = ?
		  AND session_id = (
			SELECT s.id FROM workout_sessions s
			JOIN workout_sets w ON w.session_id = s.id
			WHERE w.exercise_id = ?
			ORDER BY s.started_at DESC
			LIMIT 1
		  )
		ORDER BY set_index`
	rows, err := r.db.QueryContext(ctx, query, exerciseID, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("loading last workout: %w", err)
	}
	defer rows.Close()

	sets, err := scanSets(rows)
	if err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("last workout for %s: %w", exerciseID, ErrNotFound)
	}

	lw := &domain.LastWorkout{Date: sets[0].CompletedAt}
	for _, s := range sets {
		lw.Sets = append(lw.Sets, domain.HistoricalSet{Weight: s.Weight, Reps: s.Reps, RPE: s.RPE})
	}
	return lw, nil
}

func scanSets(rows *sql.Rows) ([]*domain.RecordedSet, error) {
	var sets []*domain.RecordedSet
	for rows.Next() {
		var s domain.RecordedSet
		var rpe sql.NullInt64
		var warmup, dropSet int
		var completedAtStr string

		err := rows.Scan(
			&s.ID, &s.SessionID, &s.ExerciseID, &s.ExerciseName, &s.SetIndex, &s.Weight, &s.Reps,
			&rpe, &warmup, &dropSet, &s.Notes, &completedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning workout set row: %w", err)
		}

		if rpe.Valid {
			v := int(rpe.Int64)
			s.RPE = &v
		}
		s.Warmup = intToBool(warmup)
		s.DropSet = intToBool(dropSet)
		s.CompletedAt, err = time.Parse(time.RFC3339, completedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing completed_at: %w", err)
		}
		sets = append(sets, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workout sets: %w", err)
	}
	return sets, nil
}
