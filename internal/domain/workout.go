package domain

import "time"

// DefaultRPE seeds sets that have no recorded exertion.
const DefaultRPE = 7

// WorkoutSet is one planned set of an exercise within a session. The slice
// index is the planned position, not the order in which sets were completed.
type WorkoutSet struct {
	Weight      float64
	Reps        int
	RPE         *int
	Completed   bool
	Notes       string
	CompletedAt *time.Time
	Warmup      bool
	DropSet     bool
}

// Volume returns weight x reps.
func (s WorkoutSet) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// WorkoutSession holds the running totals of a session. Totals only grow.
type WorkoutSession struct {
	ID                 string
	PlanName           string
	StartTime          time.Time
	EndTime            *time.Time
	TotalTime          int // elapsed seconds, excluding paused time
	TotalVolume        float64
	CompletedSets      int
	TotalRestTime      int // seconds spent counting down rest periods
	ExercisesCompleted int
	PersonalRecords    int
}

// RecordedSet is a completed set as it is persisted in the history store.
type RecordedSet struct {
	ID           string
	SessionID    string
	ExerciseID   string
	ExerciseName string
	SetIndex     int
	Weight       float64
	Reps         int
	RPE          *int
	Warmup       bool
	DropSet      bool
	Notes        string
	CompletedAt  time.Time
}

// ExerciseRecord is the stored personal record of one exercise.
type ExerciseRecord struct {
	ExerciseID   string
	ExerciseName string
	SessionID    string // empty once the originating session is deleted
	PersonalRecord
}
