package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/spotter/internal/db"
	"github.com/alexanderramin/spotter/internal/domain"
)

const sessionColumns = `id, plan_name, started_at, ended_at, total_time_sec, total_volume,
	completed_sets, total_rest_sec, exercises_completed, personal_records`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.WorkoutSession) error {
	query := `INSERT INTO workout_sessions (` + sessionColumns + `, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.PlanName,
		s.StartTime.UTC().Format(time.RFC3339),
		nullableTimeToString(utcPtr(s.EndTime), time.RFC3339),
		s.TotalTime,
		s.TotalVolume,
		s.CompletedSets,
		s.TotalRestTime,
		s.ExercisesCompleted,
		s.PersonalRecords,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting workout session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.WorkoutSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM workout_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) ListRecent(ctx context.Context, days int) ([]*domain.WorkoutSession, error) {
	query := `SELECT ` + sessionColumns + `
		FROM workout_sessions
		WHERE started_at >= date('now', ? || ' days')
		ORDER BY started_at DESC`
	rows, err := r.db.QueryContext(ctx, query, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing recent workout sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workout_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting workout session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted workout session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("workout session %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.WorkoutSession, error) {
	s, err := scanSessionRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("workout session: %w", ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.WorkoutSession, error) {
	var sessions []*domain.WorkoutSession
	for rows.Next() {
		s, err := scanSessionRow(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workout sessions: %w", err)
	}
	return sessions, nil
}

func scanSessionRow(row rowScanner) (*domain.WorkoutSession, error) {
	var s domain.WorkoutSession
	var startedAtStr string
	var endedAt sql.NullString

	err := row.Scan(
		&s.ID, &s.PlanName, &startedAtStr, &endedAt, &s.TotalTime, &s.TotalVolume,
		&s.CompletedSets, &s.TotalRestTime, &s.ExercisesCompleted, &s.PersonalRecords,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning workout session: %w", err)
	}

	s.StartTime, err = time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	s.EndTime = parseNullableTime(endedAt, time.RFC3339)
	return &s, nil
}

func (r *SQLiteSessionRepo) ResolveID(ctx context.Context, prefix string) (string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM workout_sessions WHERE substr(id, 1, length(?)) = ? LIMIT 2`, prefix, prefix)
	if err != nil {
		return "", fmt.Errorf("resolving workout session id: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scanning workout session id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	switch len(ids) {
	case 0:
		return "", fmt.Errorf("workout session %s: %w", prefix, ErrNotFound)
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("workout session %s: %w", prefix, ErrAmbiguousID)
	}
}
