package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/spotter/internal/db"
	"github.com/alexanderramin/spotter/internal/domain"
	"github.com/alexanderramin/spotter/internal/repository"
	"github.com/google/uuid"
)

// ErrSessionNotFinished is returned when recording a session that is still running.
var ErrSessionNotFinished = errors.New("workout session is not finished")

type workoutService struct {
	sessions repository.SessionRepo
	sets     repository.SetRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewWorkoutService(
	sessions repository.SessionRepo,
	sets repository.SetRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) WorkoutService {
	return &workoutService{
		sessions: sessions,
		sets:     sets,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *workoutService) Record(ctx context.Context, planName string, src FinishedSession) (result *RecordResult, err error) {
	fields := map[string]any{"plan": planName}
	done := trackUseCase(ctx, s.observer, "record-session", fields)
	defer func() { done(err) }()

	if !src.Completed() {
		return nil, ErrSessionNotFinished
	}

	session := src.Session()
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	session.PlanName = planName
	if session.EndTime == nil {
		end := startedAt
		session.EndTime = &end
	}
	fields["session_id"] = session.ID

	recorded, best := completedSets(session.ID, src.Exercises(), src.WorkoutSets())
	result = &RecordResult{Session: &session, SetCount: len(recorded)}

	// Persist all rows atomically
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txSets := repository.NewSQLiteSetRepo(tx)
		txRecords := repository.NewSQLiteRecordRepo(tx)

		if err := txSessions.Create(ctx, &session); err != nil {
			return fmt.Errorf("creating session: %w", err)
		}
		for _, rs := range recorded {
			if err := txSets.Create(ctx, rs); err != nil {
				return fmt.Errorf("creating set %d of %s: %w", rs.SetIndex+1, rs.ExerciseName, err)
			}
		}
		for _, rec := range best {
			stored, err := txRecords.Upsert(ctx, rec)
			if err != nil {
				return fmt.Errorf("updating record for %s: %w", rec.ExerciseName, err)
			}
			if stored {
				result.NewRecords = append(result.NewRecords, rec)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["set_count"] = result.SetCount
	fields["new_records"] = len(result.NewRecords)
	return result, nil
}

// completedSets flattens the completed sets in plan order and picks each
// exercise's best working set as a record candidate.
func completedSets(sessionID string, exercises []domain.Exercise, sets map[string][]domain.WorkoutSet) ([]*domain.RecordedSet, []*domain.ExerciseRecord) {
	var recorded []*domain.RecordedSet
	var best []*domain.ExerciseRecord

	for _, ex := range exercises {
		var top *domain.ExerciseRecord
		for i, ws := range sets[ex.ID] {
			if !ws.Completed {
				continue
			}
			at := time.Now().UTC()
			if ws.CompletedAt != nil {
				at = *ws.CompletedAt
			}
			recorded = append(recorded, &domain.RecordedSet{
				ID:           uuid.New().String(),
				SessionID:    sessionID,
				ExerciseID:   ex.ID,
				ExerciseName: ex.Name,
				SetIndex:     i,
				Weight:       ws.Weight,
				Reps:         ws.Reps,
				RPE:          ws.RPE,
				Warmup:       ws.Warmup,
				DropSet:      ws.DropSet,
				Notes:        ws.Notes,
				CompletedAt:  at,
			})

			if ws.Warmup {
				continue
			}
			if top == nil || ws.Volume() > top.Volume() {
				top = &domain.ExerciseRecord{
					ExerciseID:     ex.ID,
					ExerciseName:   ex.Name,
					SessionID:      sessionID,
					PersonalRecord: domain.PersonalRecord{Weight: ws.Weight, Reps: ws.Reps, Date: at},
				}
			}
		}
		if top != nil {
			best = append(best, top)
		}
	}
	return recorded, best
}

// minIDPrefix is the shortest id prefix accepted in place of a full id.
const minIDPrefix = 4

func (s *workoutService) resolveID(ctx context.Context, id string) (string, error) {
	if len(id) < minIDPrefix {
		return "", fmt.Errorf("workout session %q: id needs at least %d characters: %w", id, minIDPrefix, repository.ErrNotFound)
	}
	return s.sessions.ResolveID(ctx, id)
}

func (s *workoutService) GetByID(ctx context.Context, id string) (*SessionDetail, error) {
	id, err := s.resolveID(ctx, id)
	if err != nil {
		return nil, err
	}
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sets, err := s.sets.ListBySession(ctx, id)
	if err != nil {
		return nil, err
	}
	return &SessionDetail{Session: session, Sets: sets}, nil
}

func (s *workoutService) ListRecent(ctx context.Context, days int) ([]*domain.WorkoutSession, error) {
	return s.sessions.ListRecent(ctx, days)
}

func (s *workoutService) Delete(ctx context.Context, id string) error {
	id, err := s.resolveID(ctx, id)
	if err != nil {
		return err
	}
	return s.sessions.Delete(ctx, id)
}
