package flappy

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func newTestApp(t *testing.T, surface *recordingSurface) (*App, *manualClock) {
	t.Helper()
	clock := newManualClock()
	app := NewApp(surface, config.DefaultFlappyConfig(), fixedRandom(0.5), WithClock(clock.Now))
	return app, clock
}

func TestWorldWidth(t *testing.T) {
	tests := []struct {
		w, h     float64
		expected float64
	}{
		{1600, 900, 12 * 16.0 / 9},
		{900, 900, 12},
		{0, 900, 12},
		{800, 0, 12},
	}
	for _, tt := range tests {
		if got := WorldWidth(12, tt.w, tt.h); !approx(got, tt.expected) {
			t.Errorf("WorldWidth(12, %v, %v): got %v, expected %v", tt.w, tt.h, got, tt.expected)
		}
	}
}

func TestAppFirstTickDoesNotRender(t *testing.T) {
	surface := &recordingSurface{w: 1600, h: 900}
	app, clock := newTestApp(t, surface)

	if err := app.Tick(); err != nil {
		t.Fatalf("first Tick: %v", err)
	}
	if len(surface.calls) != 0 {
		t.Errorf("first tick drew: %v", surface.calls)
	}

	clock.Advance(16 * time.Millisecond)
	if err := app.Tick(); err != nil {
		t.Fatalf("second Tick: %v", err)
	}
	if surface.count("begin") != 1 || surface.count("end") != 1 {
		t.Errorf("second tick calls: %v", surface.calls)
	}
	if app.Timer().FrameCount() != 1 {
		t.Errorf("frames: got %d, expected 1", app.Timer().FrameCount())
	}
}

func TestAppTickReturnsSurfaceError(t *testing.T) {
	lost := errors.New("device lost")
	surface := &recordingSurface{w: 1600, h: 900, endErr: lost}
	app, clock := newTestApp(t, surface)

	_ = app.Tick()
	clock.Advance(16 * time.Millisecond)
	if err := app.Tick(); !errors.Is(err, lost) {
		t.Errorf("got %v, expected %v", err, lost)
	}
}

func TestAppResize(t *testing.T) {
	surface := &recordingSurface{w: 1600, h: 900}
	app, _ := newTestApp(t, surface)
	app.OnKeyDown(core.KeySpace, false)
	before := app.Game().Avatar().Position()

	surface.w, surface.h = 900, 900
	app.OnOutputSizeChanged()

	if got := app.Game().WorldWidth(); !approx(got, 12) {
		t.Errorf("world width: got %v, expected 12", got)
	}
	if app.Game().State() != StateRunning {
		t.Errorf("state: got %v, expected %v", app.Game().State(), StateRunning)
	}
	// 1600x900 gives a world 64/3 wide; the avatar moves to the new centre.
	after := app.Game().Avatar().Position()
	if !approx(after.X, 5.5) || after.Y != before.Y {
		t.Errorf("avatar: got %+v, expected (5.5, %v)", after, before.Y)
	}
}

func TestAppResumeDropsSuspendedTime(t *testing.T) {
	surface := &recordingSurface{w: 1600, h: 900}
	app, clock := newTestApp(t, surface)
	_ = app.Tick()

	app.OnSuspend()
	clock.Advance(5 * time.Second)
	app.OnResume()
	clock.Advance(20 * time.Millisecond)
	_ = app.Tick()

	if got := app.Timer().ElapsedSeconds(); !approx(got, 0.02) {
		t.Errorf("elapsed after resume: got %v, expected 0.02", got)
	}
}

func TestAppClampsLongSteps(t *testing.T) {
	surface := &recordingSurface{w: 1600, h: 900}
	app, clock := newTestApp(t, surface)
	_ = app.Tick()

	clock.Advance(2 * time.Second)
	_ = app.Tick()

	if got := app.Timer().ElapsedSeconds(); !approx(got, 0.1) {
		t.Errorf("elapsed: got %v, expected 0.1", got)
	}
}

func TestAppRoundTrip(t *testing.T) {
	surface := &recordingSurface{w: 1600, h: 900}
	app, clock := newTestApp(t, surface)
	tick := func() {
		clock.Advance(16 * time.Millisecond)
		if err := app.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}

	tick()
	app.OnPointerDown(core.ButtonPrimary)
	if app.Game().State() != StateRunning {
		t.Fatalf("state: got %v, expected %v", app.Game().State(), StateRunning)
	}

	for i := 0; i < 600 && app.Game().State() != StateOver; i++ {
		tick()
	}
	if app.Game().State() != StateOver {
		t.Fatal("round never ended")
	}

	app.OnKeyDown(core.KeyOther, false)
	if app.Game().State() != StateNotStarted || app.Game().Score() != 0 {
		t.Errorf("after restart: state %v score %d", app.Game().State(), app.Game().Score())
	}
}
