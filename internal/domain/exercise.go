package domain

import "time"

// Exercise is one entry of a workout plan. It is built before a session starts
// and never mutated while the session runs.
type Exercise struct {
	ID           string
	Name         string
	Sets         int
	Reps         int
	Weight       float64 // default working weight; 0 when the plan has none
	RestTime     *int    // seconds; overrides the global default when set
	Difficulty   Difficulty
	MuscleGroups []string
	Instructions string

	PersonalRecord *PersonalRecord
	LastWorkout    *LastWorkout
	Alternatives   []string
}

// PersonalRecord is the best weight x reps performance recorded for an exercise.
type PersonalRecord struct {
	Weight float64
	Reps   int
	Date   time.Time
}

// Volume returns weight x reps.
func (p PersonalRecord) Volume() float64 {
	return p.Weight * float64(p.Reps)
}

// LastWorkout is the per-set history of the most recent session that included
// the exercise, in set order.
type LastWorkout struct {
	Date time.Time
	Sets []HistoricalSet
}

// HistoricalSet is a single recorded set from a previous session.
type HistoricalSet struct {
	Weight float64
	Reps   int
	RPE    *int
}

// Volume returns weight x reps.
func (h HistoricalSet) Volume() float64 {
	return h.Weight * float64(h.Reps)
}

// HistoricalSetAt returns the i-th set of the last workout, if recorded.
func (e *Exercise) HistoricalSetAt(i int) (HistoricalSet, bool) {
	if e.LastWorkout == nil || i < 0 || i >= len(e.LastWorkout.Sets) {
		return HistoricalSet{}, false
	}
	return e.LastWorkout.Sets[i], true
}
