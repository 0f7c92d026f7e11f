package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/spotter/internal/domain"
	"github.com/google/uuid"
)

var testExerciseCounter atomic.Int64

// Exercise options
type ExerciseOption func(*domain.Exercise)

func WithSets(n int) ExerciseOption {
	return func(e *domain.Exercise) {
		e.Sets = n
	}
}

func WithReps(n int) ExerciseOption {
	return func(e *domain.Exercise) {
		e.Reps = n
	}
}

func WithWeight(w float64) ExerciseOption {
	return func(e *domain.Exercise) {
		e.Weight = w
	}
}

func WithRestTime(sec int) ExerciseOption {
	return func(e *domain.Exercise) {
		e.RestTime = &sec
	}
}

func WithDifficulty(d domain.Difficulty) ExerciseOption {
	return func(e *domain.Exercise) {
		e.Difficulty = d
	}
}

func WithExerciseID(id string) ExerciseOption {
	return func(e *domain.Exercise) {
		e.ID = id
	}
}

func WithPersonalRecord(weight float64, reps int) ExerciseOption {
	return func(e *domain.Exercise) {
		e.PersonalRecord = &domain.PersonalRecord{
			Weight: weight,
			Reps:   reps,
			Date:   time.Now().UTC().AddDate(0, 0, -14),
		}
	}
}

// WithHistory sets the last workout to the given sets, dated a week ago.
func WithHistory(sets ...domain.HistoricalSet) ExerciseOption {
	return func(e *domain.Exercise) {
		e.LastWorkout = &domain.LastWorkout{
			Date: time.Now().UTC().AddDate(0, 0, -7),
			Sets: sets,
		}
	}
}

// HistSet is shorthand for a historical set; rpe <= 0 leaves RPE unset.
func HistSet(weight float64, reps, rpe int) domain.HistoricalSet {
	h := domain.HistoricalSet{Weight: weight, Reps: reps}
	if rpe > 0 {
		h.RPE = &rpe
	}
	return h
}

func NewTestExercise(name string, opts ...ExerciseOption) domain.Exercise {
	n := testExerciseCounter.Add(1)
	e := domain.Exercise{
		ID:           fmt.Sprintf("ex-%03d", n),
		Name:         name,
		Sets:         3,
		Reps:         10,
		Weight:       135,
		Difficulty:   domain.DifficultyIntermediate,
		MuscleGroups: []string{"chest"},
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Session options
type SessionOption func(*domain.WorkoutSession)

func WithStartTime(t time.Time) SessionOption {
	return func(s *domain.WorkoutSession) {
		s.StartTime = t
	}
}

func WithTotals(volume float64, sets, prs int) SessionOption {
	return func(s *domain.WorkoutSession) {
		s.TotalVolume = volume
		s.CompletedSets = sets
		s.PersonalRecords = prs
	}
}

func NewTestSession(planName string, opts ...SessionOption) *domain.WorkoutSession {
	start := time.Now().UTC().Add(-time.Hour)
	end := start.Add(45 * time.Minute)
	s := &domain.WorkoutSession{
		ID:        uuid.New().String(),
		PlanName:  planName,
		StartTime: start,
		EndTime:   &end,
		TotalTime: 45 * 60,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Recorded set options
type RecordedSetOption func(*domain.RecordedSet)

func WithSetIndex(i int) RecordedSetOption {
	return func(r *domain.RecordedSet) {
		r.SetIndex = i
	}
}

func WithSetRPE(rpe int) RecordedSetOption {
	return func(r *domain.RecordedSet) {
		r.RPE = &rpe
	}
}

func WithCompletedAt(t time.Time) RecordedSetOption {
	return func(r *domain.RecordedSet) {
		r.CompletedAt = t
	}
}

func NewTestRecordedSet(sessionID, exerciseID string, weight float64, reps int, opts ...RecordedSetOption) *domain.RecordedSet {
	r := &domain.RecordedSet{
		ID:           uuid.New().String(),
		SessionID:    sessionID,
		ExerciseID:   exerciseID,
		ExerciseName: exerciseID,
		Weight:       weight,
		Reps:         reps,
		CompletedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
