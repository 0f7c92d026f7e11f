package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/spotter/internal/domain"
	"github.com/alexanderramin/spotter/internal/engine"
	"github.com/alexanderramin/spotter/internal/repository"
	"github.com/alexanderramin/spotter/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_PersistsSessionSetsAndRecords(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := NewWorkoutService(r.sessions, r.sets, r.uow, obs)

	plan := []domain.Exercise{
		testutil.NewTestExercise("Bench", testutil.WithSets(2)),
		testutil.NewTestExercise("Fly", testutil.WithSets(1)),
	}
	e := runSession(t, plan, 100, 10)

	res, err := svc.Record(ctx, "Push Day", e)
	require.NoError(t, err)
	assert.Equal(t, 3, res.SetCount)
	assert.Len(t, res.NewRecords, 2, "first session sets a record for every exercise")
	require.NotNil(t, res.Session.EndTime)

	detail, err := svc.GetByID(ctx, res.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, "Push Day", detail.Session.PlanName)
	assert.Equal(t, 3000.0, detail.Session.TotalVolume)
	assert.Equal(t, 3, detail.Session.CompletedSets)
	assert.Equal(t, 2, detail.Session.ExercisesCompleted)
	require.Len(t, detail.Sets, 3)
	assert.Equal(t, plan[0].ID, detail.Sets[0].ExerciseID)
	assert.Equal(t, "Bench", detail.Sets[0].ExerciseName)

	rec, err := r.records.Get(ctx, plan[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, rec.Weight)
	assert.Equal(t, res.Session.ID, rec.SessionID)

	ev := obs.last()
	assert.Equal(t, "record-session", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, 3, ev.Fields["set_count"])
	assert.Equal(t, 2, ev.Fields["new_records"])
}

func TestRecord_OnlyImprovementsBecomeRecords(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewWorkoutService(r.sessions, r.sets, r.uow)

	bench := testutil.NewTestExercise("Bench", testutil.WithSets(1))
	squat := testutil.NewTestExercise("Squat", testutil.WithSets(1))

	_, err := svc.Record(ctx, "A", runSession(t, []domain.Exercise{bench, squat}, 200, 5))
	require.NoError(t, err)

	e, err := engine.New([]domain.Exercise{bench, squat})
	require.NoError(t, err)
	e.SetWeight(150)
	e.SetReps(5)
	e.CompleteSet()
	e.SetWeight(250)
	e.SetReps(5)
	e.CompleteSet()

	res, err := svc.Record(ctx, "A", e)
	require.NoError(t, err)
	require.Len(t, res.NewRecords, 1)
	assert.Equal(t, squat.ID, res.NewRecords[0].ExerciseID)

	rec, err := r.records.Get(ctx, bench.ID)
	require.NoError(t, err)
	assert.Equal(t, 200.0, rec.Weight, "bench record unchanged")
}

func TestRecord_WarmupsAndSkippedSetsAreNotRecords(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewWorkoutService(r.sessions, r.sets, r.uow)

	bench := testutil.NewTestExercise("Bench", testutil.WithSets(3))
	e, err := engine.New([]domain.Exercise{bench})
	require.NoError(t, err)

	e.SetWeight(300)
	e.SetWarmup(true)
	e.CompleteSet()
	e.SkipSet()
	e.SetWeight(185)
	e.CompleteSet()

	res, err := svc.Record(ctx, "Bench only", e)
	require.NoError(t, err)
	assert.Equal(t, 2, res.SetCount, "skipped set is not stored")
	require.Len(t, res.NewRecords, 1)
	assert.Equal(t, 185.0, res.NewRecords[0].Weight, "warmup excluded from records")

	detail, err := svc.GetByID(ctx, res.Session.ID)
	require.NoError(t, err)
	assert.True(t, detail.Sets[0].Warmup)
	assert.Equal(t, 2, detail.Sets[1].SetIndex)
}

func TestRecord_RejectsUnfinishedSession(t *testing.T) {
	r := setupRepos(t)
	svc := NewWorkoutService(r.sessions, r.sets, r.uow)

	e, err := engine.New([]domain.Exercise{testutil.NewTestExercise("Bench")})
	require.NoError(t, err)
	e.CompleteSet()

	_, err = svc.Record(context.Background(), "Push Day", e)
	assert.ErrorIs(t, err, ErrSessionNotFinished)

	e.Finish()
	_, err = svc.Record(context.Background(), "Push Day", e)
	assert.NoError(t, err, "finishing early makes it recordable")
}

func TestRecord_RollbackOnSetCreateFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := repository.NewSQLiteSessionRepo(database)
	sets := repository.NewSQLiteSetRepo(database)
	records := repository.NewSQLiteRecordRepo(database)
	ctx := context.Background()

	// ExecContext #1 = session insert, #2 = first set insert
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 2,
		Err:    fmt.Errorf("injected set create failure"),
	}
	svc := NewWorkoutService(sessions, sets, failUoW)

	bench := testutil.NewTestExercise("Bench", testutil.WithSets(2))
	_, err := svc.Record(ctx, "Push Day", runSession(t, []domain.Exercise{bench}, 135, 8))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected set create failure")
	assert.Contains(t, failUoW.FailedQuery, "workout_sets")

	list, err := sessions.ListRecent(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list, "no session should exist after rollback")

	_, err = records.Get(ctx, bench.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRecord_RollbackOnRecordUpsertFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := repository.NewSQLiteSessionRepo(database)
	sets := repository.NewSQLiteSetRepo(database)

	// #1 session, #2 the only set, #3 record upsert
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 3,
		Err:    fmt.Errorf("injected record failure"),
	}
	svc := NewWorkoutService(sessions, sets, failUoW)

	_, err := svc.Record(context.Background(), "Push Day",
		runSession(t, []domain.Exercise{testutil.NewTestExercise("Bench", testutil.WithSets(1))}, 135, 8))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "updating record for Bench")
	assert.Contains(t, failUoW.FailedQuery, "personal_records")

	list, err := sessions.ListRecent(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestWorkoutService_ListAndDelete(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewWorkoutService(r.sessions, r.sets, r.uow)

	plan := []domain.Exercise{testutil.NewTestExercise("Bench", testutil.WithSets(1))}
	first, err := svc.Record(ctx, "A", runSession(t, plan, 100, 5))
	require.NoError(t, err)
	_, err = svc.Record(ctx, "B", runSession(t, plan, 100, 5))
	require.NoError(t, err)

	list, err := svc.ListRecent(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, svc.Delete(ctx, first.Session.ID))
	_, err = svc.GetByID(ctx, first.Session.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWorkoutService_AcceptsIDPrefix(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewWorkoutService(r.sessions, r.sets, r.uow)

	plan := []domain.Exercise{testutil.NewTestExercise("Bench", testutil.WithSets(1))}
	res, err := svc.Record(ctx, "A", runSession(t, plan, 100, 5))
	require.NoError(t, err)

	detail, err := svc.GetByID(ctx, res.Session.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, res.Session.ID, detail.Session.ID)
	assert.Len(t, detail.Sets, 1)

	_, err = svc.GetByID(ctx, res.Session.ID[:2])
	assert.ErrorIs(t, err, repository.ErrNotFound, "prefix too short")

	require.NoError(t, svc.Delete(ctx, res.Session.ID[:8]))
	_, err = svc.GetByID(ctx, res.Session.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
