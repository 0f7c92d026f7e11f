package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/spotter/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestSetup(t *testing.T) (*SQLiteSessionRepo, *SQLiteSetRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewSQLiteSessionRepo(database), NewSQLiteSetRepo(database)
}

func TestSetRepo_CreateAndListBySession(t *testing.T) {
	sessions, sets := setTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession("Push Day")
	require.NoError(t, sessions.Create(ctx, sess))

	base := sess.StartTime.Add(5 * time.Minute)
	s1 := testutil.NewTestRecordedSet(sess.ID, "bench", 185, 5,
		testutil.WithSetIndex(0), testutil.WithSetRPE(8), testutil.WithCompletedAt(base))
	s1.Warmup = true
	s1.Notes = "felt fast"
	s2 := testutil.NewTestRecordedSet(sess.ID, "bench", 185, 4,
		testutil.WithSetIndex(1), testutil.WithCompletedAt(base.Add(3*time.Minute)))
	s2.DropSet = true
	require.NoError(t, sets.Create(ctx, s2))
	require.NoError(t, sets.Create(ctx, s1))

	list, err := sets.ListBySession(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, s1.ID, list[0].ID, "ordered by completion time")
	require.NotNil(t, list[0].RPE)
	assert.Equal(t, 8, *list[0].RPE)
	assert.True(t, list[0].Warmup)
	assert.False(t, list[0].DropSet)
	assert.Equal(t, "felt fast", list[0].Notes)

	assert.Nil(t, list[1].RPE)
	assert.True(t, list[1].DropSet)
	assert.Equal(t, 4, list[1].Reps)
}

func TestSetRepo_Create_RequiresSession(t *testing.T) {
	_, sets := setTestSetup(t)

	err := sets.Create(context.Background(), testutil.NewTestRecordedSet("missing", "bench", 135, 5))
	assert.Error(t, err, "foreign key to workout_sessions")
}

func TestSetRepo_LastWorkout_UsesMostRecentSession(t *testing.T) {
	sessions, sets := setTestSetup(t)
	ctx := context.Background()
	now := time.Now().UTC()

	older := testutil.NewTestSession("Push Day", testutil.WithStartTime(now.AddDate(0, 0, -7)))
	newer := testutil.NewTestSession("Push Day", testutil.WithStartTime(now.AddDate(0, 0, -2)))
	unrelated := testutil.NewTestSession("Legs", testutil.WithStartTime(now.AddDate(0, 0, -1)))
	require.NoError(t, sessions.Create(ctx, older))
	require.NoError(t, sessions.Create(ctx, newer))
	require.NoError(t, sessions.Create(ctx, unrelated))

	require.NoError(t, sets.Create(ctx, testutil.NewTestRecordedSet(older.ID, "bench", 175, 5, testutil.WithSetIndex(0))))
	require.NoError(t, sets.Create(ctx, testutil.NewTestRecordedSet(newer.ID, "bench", 185, 4,
		testutil.WithSetIndex(1), testutil.WithSetRPE(9), testutil.WithCompletedAt(newer.StartTime.Add(10*time.Minute)))))
	require.NoError(t, sets.Create(ctx, testutil.NewTestRecordedSet(newer.ID, "bench", 185, 5,
		testutil.WithSetIndex(0), testutil.WithCompletedAt(newer.StartTime.Add(5*time.Minute)))))
	require.NoError(t, sets.Create(ctx, testutil.NewTestRecordedSet(unrelated.ID, "squat", 225, 5)))

	lw, err := sets.LastWorkout(ctx, "bench")
	require.NoError(t, err)
	require.Len(t, lw.Sets, 2)
	assert.Equal(t, 5, lw.Sets[0].Reps, "in set order")
	assert.Nil(t, lw.Sets[0].RPE)
	assert.Equal(t, 4, lw.Sets[1].Reps)
	require.NotNil(t, lw.Sets[1].RPE)
	assert.Equal(t, 9, *lw.Sets[1].RPE)
	assert.Equal(t, newer.StartTime.Add(5*time.Minute).Truncate(time.Second), lw.Date)
}

func TestSetRepo_LastWorkout_NotFound(t *testing.T) {
	_, sets := setTestSetup(t)

	_, err := sets.LastWorkout(context.Background(), "never-done")
	assert.ErrorIs(t, err, ErrNotFound)
}
