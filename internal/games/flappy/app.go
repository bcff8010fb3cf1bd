package flappy

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// App is the surface-facing entry point a platform shell drives. All
// methods must be called from the shell's single event loop.
type App struct {
	game    *Game
	timer   *core.StepTimer
	surface core.Surface
	logger  *log.Logger
}

// NewApp creates the game sized to the surface's current aspect ratio.
func NewApp(surface core.Surface, cfg config.FlappyConfig, rng core.Random, opts ...Option) *App {
	o := collectOptions(opts)
	maxDelta := time.Duration(cfg.Timer.MaxDelta * float64(time.Second))

	w, h := surface.Size()
	return &App{
		game:    New(cfg, rng, WorldWidth(cfg.World.Height, w, h), opts...),
		timer:   core.NewStepTimer(o.clock, maxDelta),
		surface: surface,
		logger:  o.logger,
	}
}

// WorldWidth returns the world width that keeps height world units
// filling a surface of the given size. A degenerate surface gets a square
// world.
func WorldWidth(height, surfaceW, surfaceH float64) float64 {
	if surfaceW <= 0 || surfaceH <= 0 {
		return height
	}
	return height * surfaceW / surfaceH
}

// Tick advances the game by the time since the previous Tick and renders
// one frame.
func (a *App) Tick() error {
	a.Advance()
	return a.Render()
}

// Advance runs the update half of a tick.
func (a *App) Advance() {
	a.timer.Tick(func() {
		a.game.Update(a.timer.ElapsedSeconds(), a.timer.TotalSeconds())
	})
}

// Render draws the current frame. Nothing is drawn before the timer has
// produced a step.
func (a *App) Render() error {
	if a.timer.FrameCount() == 0 {
		return nil
	}
	return a.game.Render(a.surface)
}

// OnOutputSizeChanged adapts the world width to the surface's new aspect
// ratio. The round continues.
func (a *App) OnOutputSizeChanged() {
	w, h := a.surface.Size()
	a.game.Resize(WorldWidth(a.game.WorldHeight(), w, h))
	a.logger.Debug("output resized", "width", w, "height", h, "world_width", a.game.WorldWidth())
}

// OnResume drops the time spent suspended.
func (a *App) OnResume() {
	a.timer.ResetElapsedTime()
	a.logger.Debug("resumed")
}

func (a *App) OnSuspend() {
	a.logger.Debug("suspended")
}

func (a *App) OnKeyDown(key core.Key, isRepeat bool) {
	a.game.OnKeyDown(key, isRepeat)
}

func (a *App) OnPointerDown(buttons core.Buttons) {
	a.game.OnPointerDown(buttons)
}

// Game returns the running game.
func (a *App) Game() *Game {
	return a.game
}

// Timer returns the step timer.
func (a *App) Timer() *core.StepTimer {
	return a.timer
}
