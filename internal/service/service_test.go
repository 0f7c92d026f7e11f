package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/spotter/internal/db"
	"github.com/alexanderramin/spotter/internal/domain"
	"github.com/alexanderramin/spotter/internal/engine"
	"github.com/alexanderramin/spotter/internal/repository"
	"github.com/alexanderramin/spotter/internal/testutil"
	"github.com/stretchr/testify/require"
)

type repos struct {
	sessions repository.SessionRepo
	sets     repository.SetRepo
	records  repository.RecordRepo
	uow      db.UnitOfWork
}

func setupRepos(t *testing.T) repos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repos{
		sessions: repository.NewSQLiteSessionRepo(database),
		sets:     repository.NewSQLiteSetRepo(database),
		records:  repository.NewSQLiteRecordRepo(database),
		uow:      testutil.NewTestUoW(database),
	}
}

// runSession completes every set of the plan at the given weight and reps.
func runSession(t *testing.T, plan []domain.Exercise, weight float64, reps int) *engine.Engine {
	t.Helper()
	e, err := engine.New(plan)
	require.NoError(t, err)
	for !e.Completed() {
		e.SetWeight(weight)
		e.SetReps(reps)
		e.CompleteSet()
	}
	return e
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}
