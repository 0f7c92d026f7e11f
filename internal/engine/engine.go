// Package engine drives a single workout session: set and exercise
// progression, the rest timer between sets, and the numbers derived from the
// lifter's inputs and history.
//
// All state lives in one Engine guarded by a mutex. Callers mutate it through
// methods and render from Snapshot; the tickers in Runner (or a UI event loop)
// call TickRest and TickElapsed once per second.
package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/spotter/internal/domain"
)

var (
	ErrEmptyPlan       = errors.New("workout plan has no exercises")
	ErrInvalidExercise = errors.New("invalid exercise")
)

// RestPhase is the state of the rest timer. Pausing is tracked separately
// because it suspends the whole session, not just the rest period.
type RestPhase int

const (
	RestIdle RestPhase = iota
	RestResting
	RestWarned
)

func (p RestPhase) String() string {
	switch p {
	case RestIdle:
		return "idle"
	case RestResting:
		return "resting"
	case RestWarned:
		return "warned"
	default:
		return "unknown"
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithSettings replaces the default rest timer settings.
func WithSettings(s domain.RestTimerSettings) Option {
	return func(e *Engine) { e.settings = s.Clone() }
}

// WithNotifier sets the device notifier fired when a rest period ends.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		if n != nil {
			e.notifier = n
		}
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithMuted starts the engine with sound muted.
func WithMuted(muted bool) Option {
	return func(e *Engine) { e.muted = muted }
}

// WithBarWeight sets the bar used for plate loading.
func WithBarWeight(w float64) Option {
	return func(e *Engine) {
		if w > 0 {
			e.barWeight = w
		}
	}
}

// Engine is the session state machine.
type Engine struct {
	mu        sync.Mutex
	now       func() time.Time
	notifier  Notifier
	settings  domain.RestTimerSettings
	muted     bool
	barWeight float64

	exercises []domain.Exercise
	sets      map[string][]domain.WorkoutSet
	exIdx     int
	setIdx    int

	// Redoing a completed set must not count it twice.
	recordSets map[string][]bool // sets counted in PersonalRecords
	finishedEx map[string]bool   // exercises counted in ExercisesCompleted

	// Live inputs for the set being performed.
	weight  float64
	reps    int
	rpe     int
	notes   string
	warmup  bool
	dropSet bool

	phase        RestPhase
	timeLeft     int
	restDuration int
	paused       bool

	elapsed   int
	completed bool
	session   domain.WorkoutSession
}

// New builds an engine for the given plan.
func New(exercises []domain.Exercise, opts ...Option) (*Engine, error) {
	e := &Engine{
		now:       time.Now,
		notifier:  NoopNotifier{},
		settings:  domain.DefaultRestTimerSettings(),
		barWeight: DefaultBarWeight,
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.Load(exercises); err != nil {
		return nil, err
	}
	return e, nil
}

// Load replaces the plan and starts a fresh session on it.
func (e *Engine) Load(exercises []domain.Exercise) error {
	if err := validatePlan(exercises); err != nil {
		return err
	}

	plan := make([]domain.Exercise, len(exercises))
	copy(plan, exercises)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.exercises = plan
	e.sets = make(map[string][]domain.WorkoutSet, len(plan))
	e.recordSets = make(map[string][]bool, len(plan))
	e.finishedEx = make(map[string]bool, len(plan))
	for i := range plan {
		e.sets[plan[i].ID] = seedSets(&plan[i])
		e.recordSets[plan[i].ID] = make([]bool, len(e.sets[plan[i].ID]))
	}

	e.exIdx, e.setIdx = 0, 0
	e.seedInputsLocked()
	e.rpe = domain.DefaultRPE
	e.resetScratchLocked()

	e.phase, e.timeLeft, e.restDuration = RestIdle, 0, 0
	e.paused = false
	e.elapsed = 0
	e.completed = false
	e.session = domain.WorkoutSession{StartTime: e.now()}
	return nil
}

func validatePlan(exercises []domain.Exercise) error {
	if len(exercises) == 0 {
		return ErrEmptyPlan
	}
	seen := make(map[string]bool, len(exercises))
	for i, ex := range exercises {
		if ex.ID == "" {
			return fmt.Errorf("exercise %d: missing id: %w", i, ErrInvalidExercise)
		}
		if seen[ex.ID] {
			return fmt.Errorf("exercise %q: duplicate id: %w", ex.ID, ErrInvalidExercise)
		}
		seen[ex.ID] = true
		if ex.Sets < 1 {
			return fmt.Errorf("exercise %q: sets must be at least 1: %w", ex.ID, ErrInvalidExercise)
		}
	}
	return nil
}

// seedSets prefers the matching set from the last workout over plan defaults.
func seedSets(ex *domain.Exercise) []domain.WorkoutSet {
	sets := make([]domain.WorkoutSet, ex.Sets)
	for i := range sets {
		if h, ok := ex.HistoricalSetAt(i); ok {
			rpe := domain.IntFromPtrWithDefault(domain.DefaultRPE, h.RPE)
			sets[i] = domain.WorkoutSet{Weight: h.Weight, Reps: h.Reps, RPE: &rpe}
			continue
		}
		rpe := domain.DefaultRPE
		sets[i] = domain.WorkoutSet{Weight: ex.Weight, Reps: ex.Reps, RPE: &rpe}
	}
	return sets
}

func (e *Engine) currentLocked() *domain.Exercise {
	return &e.exercises[e.exIdx]
}

func (e *Engine) seedInputsLocked() {
	ex := e.currentLocked()
	e.weight = max(ex.Weight, 0)
	e.reps = max(ex.Reps, 1)
}

func (e *Engine) resetScratchLocked() {
	e.notes = ""
	e.warmup = false
	e.dropSet = false
}

// ── Input setters ────────────────────────────────────────────────────────────

// AdjustWeight adds delta to the working weight, never going below zero.
func (e *Engine) AdjustWeight(delta float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.weight = max(e.weight+delta, 0)
}

// AdjustReps adds delta to the rep count, never going below one.
func (e *Engine) AdjustReps(delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reps = max(e.reps+delta, 1)
}

func (e *Engine) SetWeight(w float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.weight = max(w, 0)
}

func (e *Engine) SetReps(r int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reps = max(r, 1)
}

// SetRPE clamps to the 1..10 scale.
func (e *Engine) SetRPE(rpe int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rpe = min(max(rpe, 1), 10)
}

func (e *Engine) SetNotes(notes string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notes = notes
}

func (e *Engine) SetWarmup(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.warmup = on
}

func (e *Engine) SetDropSet(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dropSet = on
}

// UpdateSettings applies to the next rest period; a running countdown keeps
// its remaining time.
func (e *Engine) UpdateSettings(s domain.RestTimerSettings) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings = s.Clone()
}

// Settings returns a copy of the current rest timer settings.
func (e *Engine) Settings() domain.RestTimerSettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings.Clone()
}

func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = muted
}

// ── Derived values ───────────────────────────────────────────────────────────

// RestTime resolves the rest duration for the current exercise.
func (e *Engine) RestTime() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.restTimeLocked()
}

// restTimeLocked: custom override, then smart rest, then the exercise's own
// rest time, then the global default.
func (e *Engine) restTimeLocked() int {
	ex := e.currentLocked()
	if t, ok := e.settings.CustomRestTimes[ex.ID]; ok && t > 0 {
		return t
	}
	if e.settings.SmartRest {
		return SmartRestTime(ex.Difficulty, e.rpe)
	}
	if ex.RestTime != nil {
		return *ex.RestTime
	}
	return e.settings.DefaultRestTime
}

// CheckPersonalRecord reports whether weight x reps would be a new record for
// the current exercise.
func (e *Engine) CheckPersonalRecord(weight float64, reps int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return CheckPersonalRecord(e.currentLocked().PersonalRecord, weight, reps)
}

// PlateLoading returns the plates for the current working weight.
func (e *Engine) PlateLoading() PlateLoading {
	e.mu.Lock()
	defer e.mu.Unlock()
	return CalculatePlateLoading(e.weight, e.barWeight)
}

// CompareLastWorkout classifies the set just before the current one against
// the last workout's set at the current index.
func (e *Engine) CompareLastWorkout() domain.Comparison {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.compareLastWorkoutLocked()
}

func (e *Engine) compareLastWorkoutLocked() domain.Comparison {
	if e.setIdx == 0 {
		return domain.NoComparison
	}
	ex := e.currentLocked()
	prev := e.sets[ex.ID][e.setIdx-1]
	if !prev.Completed {
		return domain.NoComparison
	}
	// Index e.setIdx (not e.setIdx-1) is intentional; see DESIGN.md.
	hist, ok := ex.HistoricalSetAt(e.setIdx)
	if !ok {
		return domain.NoComparison
	}
	return CompareVolumes(prev.Volume(), hist.Volume())
}

// WeightSuggestion proposes a weight from the previous completed set's RPE.
// ok is false when there is nothing to base a suggestion on.
func (e *Engine) WeightSuggestion() (weight float64, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.weightSuggestionLocked()
}

func (e *Engine) weightSuggestionLocked() (float64, bool) {
	if e.setIdx == 0 {
		return 0, false
	}
	prev := e.sets[e.currentLocked().ID][e.setIdx-1]
	if !prev.Completed || prev.RPE == nil {
		return 0, false
	}
	return SuggestWeight(prev.Weight, *prev.RPE), true
}

// WorkoutSets returns a deep copy of every exercise's sets keyed by exercise id.
func (e *Engine) WorkoutSets() map[string][]domain.WorkoutSet {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string][]domain.WorkoutSet, len(e.sets))
	for id, sets := range e.sets {
		out[id] = copySets(sets)
	}
	return out
}

// Exercises returns the loaded plan.
func (e *Engine) Exercises() []domain.Exercise {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.Exercise, len(e.exercises))
	copy(out, e.exercises)
	return out
}

func copySets(sets []domain.WorkoutSet) []domain.WorkoutSet {
	out := make([]domain.WorkoutSet, len(sets))
	for i, s := range sets {
		if s.RPE != nil {
			rpe := *s.RPE
			s.RPE = &rpe
		}
		if s.CompletedAt != nil {
			at := *s.CompletedAt
			s.CompletedAt = &at
		}
		out[i] = s
	}
	return out
}
