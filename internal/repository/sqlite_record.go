package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/spotter/internal/db"
	"github.com/alexanderramin/spotter/internal/domain"
)

// SQLiteRecordRepo implements RecordRepo using a SQLite database.
type SQLiteRecordRepo struct {
	db db.DBTX
}

// NewSQLiteRecordRepo creates a new SQLiteRecordRepo.
func NewSQLiteRecordRepo(conn db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: conn}
}

func (r *SQLiteRecordRepo) Get(ctx context.Context, exerciseID string) (*domain.ExerciseRecord, error) {
	query := `SELECT exercise_id, exercise_name, weight, reps, achieved_at, session_id
		FROM personal_records WHERE exercise_id = ?`
	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, exerciseID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("personal record: %w", ErrNotFound)
		}
		return nil, err
	}
	return rec, nil
}

func (r *SQLiteRecordRepo) List(ctx context.Context) ([]*domain.ExerciseRecord, error) {
	query := `SELECT exercise_id, exercise_name, weight, reps, achieved_at, session_id
		FROM personal_records ORDER BY exercise_name, exercise_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing personal records: %w", err)
	}
	defer rows.Close()

	var records []*domain.ExerciseRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating personal records: %w", err)
	}
	return records, nil
}

func (r *SQLiteRecordRepo) Upsert(ctx context.Context, rec *domain.ExerciseRecord) (bool, error) {
	query := `INSERT INTO personal_records (exercise_id, exercise_name, weight, reps, achieved_at, session_id)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(exercise_id) DO UPDATE SET
			exercise_name = excluded.exercise_name,
			weight        = excluded.weight,
			reps          = excluded.reps,
			achieved_at   = excluded.achieved_at,
			session_id    = excluded.session_id
		WHERE excluded.weight * excluded.reps > personal_records.weight * personal_records.reps`
	res, err := r.db.ExecContext(ctx, query,
		rec.ExerciseID,
		rec.ExerciseName,
		rec.Weight,
		rec.Reps,
		rec.Date.UTC().Format(time.RFC3339),
		nullableString(rec.SessionID),
	)
	if err != nil {
		return false, fmt.Errorf("upserting personal record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking upserted personal record: %w", err)
	}
	return n > 0, nil
}

func scanRecord(row rowScanner) (*domain.ExerciseRecord, error) {
	var rec domain.ExerciseRecord
	var achievedAtStr string
	var sessionID sql.NullString

	err := row.Scan(&rec.ExerciseID, &rec.ExerciseName, &rec.Weight, &rec.Reps, &achievedAtStr, &sessionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning personal record: %w", err)
	}
	rec.Date, err = time.Parse(time.RFC3339, achievedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing achieved_at: %w", err)
	}
	rec.SessionID = sessionID.String
	return &rec, nil
}
