package repository

import (
	"context"

	"github.com/alexanderramin/spotter/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.WorkoutSession) error
	GetByID(ctx context.Context, id string) (*domain.WorkoutSession, error)
	ListRecent(ctx context.Context, days int) ([]*domain.WorkoutSession, error)
	Delete(ctx context.Context, id string) error
	// ResolveID expands a unique id prefix to the full session id.
	ResolveID(ctx context.Context, prefix string) (string, error)
}

type SetRepo interface {
	Create(ctx context.Context, s *domain.RecordedSet) error
	ListBySession(ctx context.Context, sessionID string) ([]*domain.RecordedSet, error)
	// LastWorkout returns the sets of the most recent session that recorded
	// the exercise, in set order. ErrNotFound when it was never recorded.
	LastWorkout(ctx context.Context, exerciseID string) (*domain.LastWorkout, error)
}

type RecordRepo interface {
	Get(ctx context.Context, exerciseID string) (*domain.ExerciseRecord, error)
	List(ctx context.Context) ([]*domain.ExerciseRecord, error)
	// Upsert stores rec when the exercise has no record or rec has a strictly
	// greater weight x reps. Reports whether it was stored.
	Upsert(ctx context.Context, rec *domain.ExerciseRecord) (bool, error)
}
