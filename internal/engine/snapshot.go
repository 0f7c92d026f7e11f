package engine

import "github.com/alexanderramin/spotter/internal/domain"

// Snapshot is a read-only copy of the engine state for rendering.
type Snapshot struct {
	ExerciseIndex int
	ExerciseCount int
	SetIndex      int
	Exercise      domain.Exercise
	Sets          []domain.WorkoutSet // sets of the current exercise

	CurrentWeight float64
	CurrentReps   int
	CurrentRPE    int
	Notes         string
	Warmup        bool
	DropSet       bool

	Phase        RestPhase
	TimeLeft     int
	RestDuration int
	IsResting    bool
	IsRunning    bool
	RestWarning  bool
	IsPaused     bool
	Muted        bool

	TotalWorkoutTime int
	ShowCompleted    bool
	Session          domain.WorkoutSession

	Plates          PlateLoading
	Comparison      domain.Comparison
	SuggestedWeight float64
	HasSuggestion   bool
	IsNewRecord     bool // the live inputs would beat the personal record
	RPELabel        string
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	ex := e.currentLocked()
	s := Snapshot{
		ExerciseIndex: e.exIdx,
		ExerciseCount: len(e.exercises),
		SetIndex:      e.setIdx,
		Exercise:      *ex,
		Sets:          copySets(e.sets[ex.ID]),

		CurrentWeight: e.weight,
		CurrentReps:   e.reps,
		CurrentRPE:    e.rpe,
		Notes:         e.notes,
		Warmup:        e.warmup,
		DropSet:       e.dropSet,

		Phase:        e.phase,
		TimeLeft:     e.timeLeft,
		RestDuration: e.restDuration,
		IsResting:    e.phase != RestIdle,
		IsRunning:    e.phase != RestIdle && !e.paused,
		RestWarning:  e.phase == RestWarned,
		IsPaused:     e.paused,
		Muted:        e.muted,

		TotalWorkoutTime: e.elapsed,
		ShowCompleted:    e.completed,
		Session:          e.session,

		Plates:      CalculatePlateLoading(e.weight, e.barWeight),
		Comparison:  e.compareLastWorkoutLocked(),
		IsNewRecord: CheckPersonalRecord(ex.PersonalRecord, e.weight, e.reps),
		RPELabel:    RPEDescription(e.rpe),
	}
	s.SuggestedWeight, s.HasSuggestion = e.weightSuggestionLocked()
	s.Session.TotalTime = e.elapsed
	if e.session.EndTime != nil {
		end := *e.session.EndTime
		s.Session.EndTime = &end
	}
	return s
}

// Session returns the session totals. TotalTime is the live elapsed count.
func (e *Engine) Session() domain.WorkoutSession {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.session
	s.TotalTime = e.elapsed
	return s
}

// Completed reports whether the session has finished.
func (e *Engine) Completed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.completed
}
