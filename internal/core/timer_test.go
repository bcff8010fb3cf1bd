package core

import (
	"math"
	"testing"
	"time"
)

type manualClock struct {
	t time.Time
}

func (c *manualClock) now() time.Time { return c.t }

func (c *manualClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestStepTimerFirstTickPrimes(t *testing.T) {
	clock := &manualClock{t: time.Unix(1000, 0)}
	timer := NewStepTimer(clock.now, 0)

	calls := 0
	timer.Tick(func() { calls++ })

	if calls != 0 {
		t.Errorf("first Tick should not update, got %d calls", calls)
	}
	if timer.FrameCount() != 0 {
		t.Errorf("FrameCount() = %d after priming, expected 0", timer.FrameCount())
	}
}

func TestStepTimerVariableSteps(t *testing.T) {
	clock := &manualClock{t: time.Unix(1000, 0)}
	timer := NewStepTimer(clock.now, 0)
	timer.Tick(nil)

	clock.advance(16 * time.Millisecond)
	timer.Tick(nil)
	clock.advance(30 * time.Millisecond)
	timer.Tick(nil)

	if timer.FrameCount() != 2 {
		t.Errorf("FrameCount() = %d, expected 2", timer.FrameCount())
	}
	if math.Abs(timer.ElapsedSeconds()-0.030) > 1e-9 {
		t.Errorf("ElapsedSeconds() = %f, expected 0.030", timer.ElapsedSeconds())
	}
	if math.Abs(timer.TotalSeconds()-0.046) > 1e-9 {
		t.Errorf("TotalSeconds() = %f, expected 0.046", timer.TotalSeconds())
	}
}

func TestStepTimerClampsLargeDelta(t *testing.T) {
	clock := &manualClock{t: time.Unix(1000, 0)}
	timer := NewStepTimer(clock.now, 0)
	timer.Tick(nil)

	clock.advance(5 * time.Second)
	timer.Tick(nil)

	if timer.ElapsedSeconds() != DefaultMaxDelta.Seconds() {
		t.Errorf("ElapsedSeconds() = %f, expected clamp to %f", timer.ElapsedSeconds(), DefaultMaxDelta.Seconds())
	}
}

func TestStepTimerResetElapsedTime(t *testing.T) {
	clock := &manualClock{t: time.Unix(1000, 0)}
	timer := NewStepTimer(clock.now, time.Hour)
	timer.Tick(nil)

	// Suspended for a while
	clock.advance(10 * time.Minute)
	timer.ResetElapsedTime()

	clock.advance(20 * time.Millisecond)
	timer.Tick(nil)

	if math.Abs(timer.ElapsedSeconds()-0.020) > 1e-9 {
		t.Errorf("ElapsedSeconds() = %f after resume, expected 0.020", timer.ElapsedSeconds())
	}
	if math.Abs(timer.TotalSeconds()-0.020) > 1e-9 {
		t.Errorf("TotalSeconds() = %f after resume, expected 0.020", timer.TotalSeconds())
	}
}
