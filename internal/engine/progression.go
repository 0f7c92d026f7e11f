package engine

import "github.com/alexanderramin/spotter/internal/domain"

// CompletionResult describes what CompleteSet recorded.
type CompletionResult struct {
	ExerciseID     string
	SetIndex       int
	Set            domain.WorkoutSet
	PersonalRecord bool
	RestTime       int  // seconds of rest started; 0 when none
	Finished       bool // the last set of the last exercise was completed
}

type advance int

const (
	advancedSet advance = iota
	advancedExercise
	advancedPastEnd
)

// advanceLocked moves exactly one step: next set, else next exercise, else
// marks the session complete.
func (e *Engine) advanceLocked() advance {
	if e.setIdx < e.currentLocked().Sets-1 {
		e.setIdx++
		return advancedSet
	}
	if e.exIdx < len(e.exercises)-1 {
		e.exIdx++
		e.setIdx = 0
		e.seedInputsLocked()
		return advancedExercise
	}
	e.finishLocked()
	return advancedPastEnd
}

func (e *Engine) finishLocked() {
	e.completed = true
	e.stopRestLocked()
	end := e.now()
	e.session.EndTime = &end
	e.session.TotalTime = e.elapsed
}

// CompleteSet records the live inputs into the current set and advances.
// Completing a set again replaces it in the totals. After the session has
// finished it does nothing.
func (e *Engine) CompleteSet() CompletionResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.completed {
		return CompletionResult{Finished: true}
	}

	ex := e.currentLocked()
	now := e.now()
	rpe := e.rpe
	set := domain.WorkoutSet{
		Weight:      e.weight,
		Reps:        e.reps,
		RPE:         &rpe,
		Completed:   true,
		Notes:       e.notes,
		CompletedAt: &now,
		Warmup:      e.warmup,
		DropSet:     e.dropSet,
	}
	// A set already completed is redone in place and its old volume is taken
	// back out. A set counts once toward records.
	prev := e.sets[ex.ID][e.setIdx]
	if prev.Completed {
		e.session.TotalVolume -= prev.Volume()
	} else {
		e.session.CompletedSets++
	}
	e.sets[ex.ID][e.setIdx] = set

	res := CompletionResult{ExerciseID: ex.ID, SetIndex: e.setIdx}
	res.Set = copySets([]domain.WorkoutSet{set})[0]

	e.session.TotalVolume += set.Volume()
	if CheckPersonalRecord(ex.PersonalRecord, set.Weight, set.Reps) {
		res.PersonalRecord = true
		if !e.recordSets[ex.ID][e.setIdx] {
			e.recordSets[ex.ID][e.setIdx] = true
			e.session.PersonalRecords++
		}
	}

	// Rest is resolved against the exercise and RPE just performed.
	rest := e.restTimeLocked()
	switch e.advanceLocked() {
	case advancedSet:
		e.startRestLocked(rest)
		res.RestTime = e.restDuration
	case advancedExercise:
		e.markExerciseFinishedLocked(ex.ID)
		e.startRestLocked(rest)
		res.RestTime = e.restDuration
	case advancedPastEnd:
		e.markExerciseFinishedLocked(ex.ID)
		res.Finished = true
	}

	e.resetScratchLocked()
	return res
}

// markExerciseFinishedLocked counts an exercise the first time it is
// completed past its last set.
func (e *Engine) markExerciseFinishedLocked(id string) {
	if e.finishedEx[id] {
		return
	}
	e.finishedEx[id] = true
	e.session.ExercisesCompleted++
}

// SkipSet advances like CompleteSet without recording anything or resting.
// It reports whether the session is now finished.
func (e *Engine) SkipSet() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.completed {
		return true
	}
	return e.advanceLocked() == advancedPastEnd
}

// PreviousSet moves back one set within the current exercise.
func (e *Engine) PreviousSet() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.setIdx > 0 {
		e.setIdx--
	}
}

// NextExercise moves to the first set of the next exercise. No-op on the last.
func (e *Engine) NextExercise() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.exIdx >= len(e.exercises)-1 {
		return
	}
	e.exIdx++
	e.setIdx = 0
	e.seedInputsLocked()
}

// PreviousExercise moves to the first set of the previous exercise. No-op on
// the first.
func (e *Engine) PreviousExercise() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.exIdx == 0 {
		return
	}
	e.exIdx--
	e.setIdx = 0
	e.seedInputsLocked()
}

// SkipExercise abandons the remaining sets of the current exercise. On the
// last exercise it finishes the session. Reports whether the session is done.
func (e *Engine) SkipExercise() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.completed {
		return true
	}
	if e.exIdx < len(e.exercises)-1 {
		e.exIdx++
		e.setIdx = 0
		e.seedInputsLocked()
		return false
	}
	e.finishLocked()
	return true
}

// Finish ends the session early, e.g. when the lifter quits mid-plan.
func (e *Engine) Finish() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.completed {
		e.finishLocked()
	}
}
