package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// helpHeight is the number of rows reserved under the playfield.
const helpHeight = 1

// Options configures a terminal session.
type Options struct {
	Config config.FlappyConfig
	Random core.Random
	FPS    int
	Logger *log.Logger

	// Initial terminal size; zero waits for the first resize message.
	Width, Height int

	// Clock defaults to time.Now; tests replace it.
	Clock func() time.Time
}

// Model is the Bubble Tea model running one game.
type Model struct {
	opts   Options
	app    *flappy.App
	canvas *Canvas

	keys     KeyMap
	help     help.Model
	repeat   *RepeatDetector
	showHelp bool

	err      error
	quitting bool
}

// NewModel creates a model. The game starts as soon as the terminal size
// is known.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Random == nil {
		opts.Random = core.NewRandom(0)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	m := Model{
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		repeat: NewRepeatDetector(DefaultRepeatWindow),
	}
	if opts.Width > 0 && opts.Height > helpHeight {
		m.start(opts.Width, opts.Height)
	}
	return m
}

// start creates the canvas and the game for a terminal of the given size.
func (m *Model) start(width, height int) {
	m.canvas = NewCanvas(width, height-helpHeight)
	m.app = flappy.NewApp(m.canvas, m.opts.Config, m.opts.Random,
		flappy.WithLogger(m.opts.Logger),
		flappy.WithClock(m.opts.Clock),
	)
	m.help.Width = width
	m.opts.Logger.Info("game started", "cols", width, "rows", height-helpHeight)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.app != nil {
			if buttons := MapMouse(msg); buttons != 0 {
				m.app.OnPointerDown(buttons)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		if m.app != nil {
			m.app.OnSuspend()
		}
		return m, nil

	case tea.FocusMsg, tea.ResumeMsg:
		if m.app != nil {
			m.app.OnResume()
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Suspend):
		if m.app != nil {
			m.app.OnSuspend()
		}
		return m, tea.Suspend
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	repeat := m.repeat.Observe(msg.String(), m.opts.Clock())
	if m.app != nil {
		m.app.OnKeyDown(m.keys.MapKey(msg), repeat)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Height <= helpHeight || msg.Width <= 0 {
		return m, nil
	}
	if m.app == nil {
		m.start(msg.Width, msg.Height)
		return m, nil
	}

	m.canvas.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	m.app.OnOutputSizeChanged()
	return m, nil
}

// handleTick advances and draws one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.app != nil {
		if err := m.app.Tick(); err != nil {
			m.err = err
			return m, tea.Quit
		}
	}
	return m, tickCmd(m.opts.FPS)
}

// View renders the last drawn frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.app == nil {
		return "Waiting for terminal size..."
	}
	return RenderScreen(m.canvas.Screen()) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// App returns the running game, or nil before the terminal size is known.
func (m Model) App() *flappy.App {
	return m.app
}

// Err returns the error that stopped the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap
		tea.WithReportFocus(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
