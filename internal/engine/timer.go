package engine

// TickResult reports what a rest tick changed.
type TickResult struct {
	Warned  bool // the warning threshold was crossed on this tick
	Expired bool // the rest period reached zero on this tick
}

// Tick applies one second to the rest timer, then to the elapsed counter.
func (e *Engine) Tick() TickResult {
	res := e.TickRest()
	e.TickElapsed()
	return res
}

// TickRest counts the rest period down by one second. On expiry the sound and
// vibration notifications fire once, outside the lock.
func (e *Engine) TickRest() TickResult {
	e.mu.Lock()
	res := e.tickRestLocked()
	sound := res.Expired && e.settings.SoundEnabled && !e.muted
	vibrate := res.Expired && e.settings.VibrationEnabled
	n := e.notifier
	e.mu.Unlock()

	if sound {
		notifySafely(n.Sound)
	}
	if vibrate {
		notifySafely(func() { n.Vibrate(VibrationPattern) })
	}
	return res
}

func (e *Engine) tickRestLocked() TickResult {
	if e.phase == RestIdle || e.paused || e.timeLeft <= 0 {
		return TickResult{}
	}

	var res TickResult
	e.timeLeft--
	e.session.TotalRestTime++

	if e.phase == RestResting && e.timeLeft <= e.settings.WarningTime {
		e.phase = RestWarned
		res.Warned = true
	}
	if e.timeLeft == 0 {
		e.phase = RestIdle
		res.Expired = true
	}
	return res
}

// TickElapsed adds one second of session time unless paused or finished.
func (e *Engine) TickElapsed() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.paused || e.completed {
		return
	}
	e.elapsed++
}

// StartRest begins a rest period of the given length, replacing any running
// one. A non-positive length leaves the timer idle. No-op once finished.
func (e *Engine) StartRest(seconds int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.completed {
		return
	}
	e.startRestLocked(seconds)
}

// startRestLocked begins a rest period. A zero duration leaves the timer idle.
func (e *Engine) startRestLocked(seconds int) {
	e.restDuration = max(seconds, 0)
	e.timeLeft = e.restDuration
	if e.timeLeft == 0 {
		e.phase = RestIdle
		return
	}
	e.phase = RestResting
}

func (e *Engine) stopRestLocked() {
	e.phase = RestIdle
	e.timeLeft = 0
}

// Pause freezes the rest countdown and the elapsed counter.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.paused = true
}

// Resume continues whatever was frozen by Pause, including an unfinished rest.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.paused = false
}

// TogglePause flips between Pause and Resume and reports the new state.
func (e *Engine) TogglePause() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.paused = !e.paused
	return e.paused
}

// SkipRest ends the current rest period without notifications.
func (e *Engine) SkipRest() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopRestLocked()
}

// ExtendRest adds delta seconds to the active rest period. Shortening it to
// zero or less ends the rest silently. No-op when not resting.
func (e *Engine) ExtendRest(delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase == RestIdle {
		return
	}
	e.timeLeft += delta
	if delta > 0 {
		e.restDuration += delta
	}
	switch {
	case e.timeLeft <= 0:
		e.stopRestLocked()
	case e.phase == RestWarned && e.timeLeft > e.settings.WarningTime:
		// The warning fires again for the extended period.
		e.phase = RestResting
	}
}
