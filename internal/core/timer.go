package core

import "time"

// DefaultMaxDelta is the longest single step the timer reports.
const DefaultMaxDelta = 100 * time.Millisecond

// StepTimer measures variable-length simulation steps.
// The first Tick only records the starting instant; every later Tick runs
// the update callback once with the time elapsed since the previous Tick.
type StepTimer struct {
	now      func() time.Time
	maxDelta time.Duration

	primed     bool
	last       time.Time
	elapsed    time.Duration
	total      time.Duration
	frameCount uint64
}

// NewStepTimer creates a timer reading the given clock. A nil clock means
// time.Now; a non-positive maxDelta means DefaultMaxDelta.
func NewStepTimer(now func() time.Time, maxDelta time.Duration) *StepTimer {
	if now == nil {
		now = time.Now
	}
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	return &StepTimer{now: now, maxDelta: maxDelta}
}

// Tick measures the time since the previous Tick and calls update once.
func (t *StepTimer) Tick(update func()) {
	current := t.now()
	if !t.primed {
		t.primed = true
		t.last = current
		return
	}

	delta := current.Sub(t.last)
	t.last = current
	if delta < 0 {
		delta = 0
	}
	if delta > t.maxDelta {
		delta = t.maxDelta
	}

	t.elapsed = delta
	t.total += delta
	t.frameCount++

	if update != nil {
		update()
	}
}

// ResetElapsedTime forgets the time that passed since the last Tick.
// Called after the app was suspended so the pause is not simulated.
func (t *StepTimer) ResetElapsedTime() {
	t.last = t.now()
	t.elapsed = 0
}

// ElapsedSeconds returns the length of the most recent step.
func (t *StepTimer) ElapsedSeconds() float64 {
	return t.elapsed.Seconds()
}

// TotalSeconds returns the simulated time accumulated over all steps.
func (t *StepTimer) TotalSeconds() float64 {
	return t.total.Seconds()
}

// FrameCount returns how many steps have run.
func (t *StepTimer) FrameCount() uint64 {
	return t.frameCount
}
