package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/spotter/internal/domain"
	"github.com/alexanderramin/spotter/internal/repository"
)

type historyService struct {
	sets     repository.SetRepo
	records  repository.RecordRepo
	observer UseCaseObserver
}

func NewHistoryService(
	sets repository.SetRepo,
	records repository.RecordRepo,
	observers ...UseCaseObserver,
) HistoryService {
	return &historyService{
		sets:     sets,
		records:  records,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *historyService) Hydrate(ctx context.Context, exercises []domain.Exercise) (out []domain.Exercise, err error) {
	fields := map[string]any{"exercise_count": len(exercises)}
	done := trackUseCase(ctx, s.observer, "hydrate-history", fields)
	defer func() { done(err) }()

	out = make([]domain.Exercise, len(exercises))
	copy(out, exercises)

	var withHistory, withRecord int
	for i := range out {
		ex := &out[i]
		if ex.LastWorkout == nil {
			lw, err := s.sets.LastWorkout(ctx, ex.ID)
			switch {
			case err == nil:
				ex.LastWorkout = lw
			case !errors.Is(err, repository.ErrNotFound):
				return nil, fmt.Errorf("loading history for %s: %w", ex.Name, err)
			}
		}
		if ex.PersonalRecord == nil {
			rec, err := s.records.Get(ctx, ex.ID)
			switch {
			case err == nil:
				pr := rec.PersonalRecord
				ex.PersonalRecord = &pr
			case !errors.Is(err, repository.ErrNotFound):
				return nil, fmt.Errorf("loading record for %s: %w", ex.Name, err)
			}
		}
		if ex.LastWorkout != nil {
			withHistory++
		}
		if ex.PersonalRecord != nil {
			withRecord++
		}
	}

	fields["with_history"] = withHistory
	fields["with_record"] = withRecord
	return out, nil
}

func (s *historyService) Records(ctx context.Context) ([]*domain.ExerciseRecord, error) {
	return s.records.List(ctx)
}
