package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/spotter/internal/domain"
	"github.com/alexanderramin/spotter/internal/engine"
	"github.com/alexanderramin/spotter/internal/repository"
	"github.com/alexanderramin/spotter/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHydrate_FillsHistoryFromLastSession(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	workouts := NewWorkoutService(r.sessions, r.sets, r.uow)
	obs := &recordingObserver{}
	history := NewHistoryService(r.sets, r.records, obs)

	bench := testutil.NewTestExercise("Bench", testutil.WithSets(2))
	e, err := engine.New([]domain.Exercise{bench})
	require.NoError(t, err)
	e.SetWeight(185)
	e.SetReps(6)
	e.SetRPE(9)
	e.CompleteSet()
	e.SetReps(5)
	e.CompleteSet()
	_, err = workouts.Record(ctx, "Push Day", e)
	require.NoError(t, err)

	fresh := testutil.NewTestExercise("Never done")
	out, err := history.Hydrate(ctx, []domain.Exercise{bench, fresh})
	require.NoError(t, err)
	require.Len(t, out, 2)

	require.NotNil(t, out[0].LastWorkout)
	require.Len(t, out[0].LastWorkout.Sets, 2)
	assert.Equal(t, 6, out[0].LastWorkout.Sets[0].Reps)
	require.NotNil(t, out[0].LastWorkout.Sets[0].RPE)
	assert.Equal(t, 9, *out[0].LastWorkout.Sets[0].RPE)
	require.NotNil(t, out[0].PersonalRecord)
	assert.Equal(t, 185.0, out[0].PersonalRecord.Weight)
	assert.Equal(t, 6, out[0].PersonalRecord.Reps)

	assert.Nil(t, out[1].LastWorkout)
	assert.Nil(t, out[1].PersonalRecord)
	assert.Nil(t, bench.LastWorkout, "input slice is not modified")

	ev := obs.last()
	assert.Equal(t, "hydrate-history", ev.Name)
	assert.Equal(t, 1, ev.Fields["with_history"])

	// The next session seeds from what was just recorded.
	next, err := engine.New(out)
	require.NoError(t, err)
	sets := next.WorkoutSets()[bench.ID]
	assert.Equal(t, 185.0, sets[0].Weight)
	assert.Equal(t, 5, sets[1].Reps)
}

func TestHydrate_KeepsPlanSuppliedHistory(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	workouts := NewWorkoutService(r.sessions, r.sets, r.uow)
	history := NewHistoryService(r.sets, r.records)

	bench := testutil.NewTestExercise("Bench", testutil.WithSets(1))
	_, err := workouts.Record(ctx, "Push Day", runSession(t, []domain.Exercise{bench}, 300, 5))
	require.NoError(t, err)

	planned := bench
	testutil.WithPersonalRecord(100, 1)(&planned)
	testutil.WithHistory(testutil.HistSet(95, 12, 6))(&planned)

	out, err := history.Hydrate(ctx, []domain.Exercise{planned})
	require.NoError(t, err)
	assert.Equal(t, 100.0, out[0].PersonalRecord.Weight)
	assert.Equal(t, 95.0, out[0].LastWorkout.Sets[0].Weight)
}

type brokenSetRepo struct {
	repository.SetRepo
}

func (brokenSetRepo) LastWorkout(context.Context, string) (*domain.LastWorkout, error) {
	return nil, errors.New("disk I/O error")
}

func TestHydrate_PropagatesStoreErrors(t *testing.T) {
	r := setupRepos(t)
	history := NewHistoryService(brokenSetRepo{r.sets}, r.records)

	_, err := history.Hydrate(context.Background(), []domain.Exercise{testutil.NewTestExercise("Bench")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading history for Bench")
}

func TestRecords_ListsStoredRecords(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	workouts := NewWorkoutService(r.sessions, r.sets, r.uow)
	history := NewHistoryService(r.sets, r.records)

	plan := []domain.Exercise{
		testutil.NewTestExercise("Bench", testutil.WithSets(1)),
		testutil.NewTestExercise("Arnold Press", testutil.WithSets(1)),
	}
	_, err := workouts.Record(ctx, "Push Day", runSession(t, plan, 80, 8))
	require.NoError(t, err)

	recs, err := history.Records(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Arnold Press", recs[0].ExerciseName)
}
