// Package window runs the game in a desktop window through Ebitengine.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Options configures a window session.
type Options struct {
	Config config.FlappyConfig
	Random core.Random
	FPS    int
	Logger *log.Logger
	Width  int
	Height int
}

// Shell adapts the game App to ebiten.Game.
type Shell struct {
	app     *flappy.App
	surface *Surface
	logger  *log.Logger

	width, height int
	focused       bool
	keys          []ebiten.Key
	touches       []ebiten.TouchID
	err           error
}

// NewShell creates the surface and the game for a window of the given size.
func NewShell(opts Options) (*Shell, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Random == nil {
		opts.Random = core.NewRandom(0)
	}

	surface, err := NewSurface(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	return &Shell{
		app:     flappy.NewApp(surface, opts.Config, opts.Random, flappy.WithLogger(opts.Logger)),
		surface: surface,
		logger:  opts.Logger,
		width:   opts.Width,
		height:  opts.Height,
		focused: true,
	}, nil
}

// Update polls input and advances the game.
func (s *Shell) Update() error {
	if s.err != nil {
		return s.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if focused := ebiten.IsFocused(); focused != s.focused {
		s.focused = focused
		if focused {
			s.app.OnResume()
		} else {
			s.app.OnSuspend()
		}
	}

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		s.app.OnKeyDown(mapKey(k), false)
	}

	if pressedButtons(inpututil.IsMouseButtonJustPressed) != 0 {
		s.app.OnPointerDown(pressedButtons(ebiten.IsMouseButtonPressed))
	}
	s.touches = inpututil.AppendJustPressedTouchIDs(s.touches[:0])
	if len(s.touches) > 0 {
		s.app.OnPointerDown(core.ButtonPrimary)
	}

	s.app.Advance()
	return nil
}

// Draw renders the current frame. A render failure ends the run at the
// next Update.
func (s *Shell) Draw(screen *ebiten.Image) {
	s.surface.SetTarget(screen)
	if err := s.app.Render(); err != nil && s.err == nil {
		s.err = err
	}
	s.surface.SetTarget(nil)
}

// Layout keeps one surface pixel per window pixel and tells the game when
// the aspect ratio changes.
func (s *Shell) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != s.width || outsideHeight != s.height {
		s.width, s.height = outsideWidth, outsideHeight
		s.surface.SetSize(outsideWidth, outsideHeight)
		s.app.OnOutputSizeChanged()
	}
	return outsideWidth, outsideHeight
}

// App returns the running game.
func (s *Shell) App() *flappy.App {
	return s.app
}

func mapKey(k ebiten.Key) core.Key {
	switch k {
	case ebiten.KeySpace:
		return core.KeySpace
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return core.KeyEnter
	case ebiten.KeyArrowUp:
		return core.KeyUp
	}
	return core.KeyOther
}

var buttonMap = []struct {
	button ebiten.MouseButton
	flag   core.Buttons
}{
	{ebiten.MouseButtonLeft, core.ButtonPrimary},
	{ebiten.MouseButtonRight, core.ButtonSecondary},
	{ebiten.MouseButtonMiddle, core.ButtonMiddle},
	{ebiten.MouseButton3, core.ButtonExtra},
	{ebiten.MouseButton4, core.ButtonExtra},
}

// pressedButtons collects the buttons for which pressed reports true.
func pressedButtons(pressed func(ebiten.MouseButton) bool) core.Buttons {
	var b core.Buttons
	for _, m := range buttonMap {
		if pressed(m.button) {
			b |= m.flag
		}
	}
	return b
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1280, 720
	}
	shell, err := NewShell(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("Flappy")
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.FPS > 0 {
		ebiten.SetTPS(opts.FPS)
	}

	start := time.Now()
	err = ebiten.RunGame(shell)
	shell.logger.Info("window closed", "played", time.Since(start).Round(time.Second))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
