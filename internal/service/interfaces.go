package service

import (
	"context"

	"github.com/alexanderramin/spotter/internal/domain"
)

// FinishedSession is the part of a session engine that Record reads.
type FinishedSession interface {
	Session() domain.WorkoutSession
	Exercises() []domain.Exercise
	WorkoutSets() map[string][]domain.WorkoutSet
	Completed() bool
}

// RecordResult holds the outcome of recording a session.
type RecordResult struct {
	Session    *domain.WorkoutSession
	SetCount   int
	NewRecords []*domain.ExerciseRecord
}

// SessionDetail is a stored session with its completed sets.
type SessionDetail struct {
	Session *domain.WorkoutSession
	Sets    []*domain.RecordedSet
}

type WorkoutService interface {
	Record(ctx context.Context, planName string, src FinishedSession) (*RecordResult, error)
	GetByID(ctx context.Context, id string) (*SessionDetail, error)
	ListRecent(ctx context.Context, days int) ([]*domain.WorkoutSession, error)
	Delete(ctx context.Context, id string) error
}

type HistoryService interface {
	// Hydrate fills LastWorkout and PersonalRecord from the history store for
	// exercises whose plan does not supply them.
	Hydrate(ctx context.Context, exercises []domain.Exercise) ([]domain.Exercise, error)
	Records(ctx context.Context) ([]*domain.ExerciseRecord, error)
}
