package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap defines the terminal key bindings.
type KeyMap struct {
	Flap    key.Binding
	Help    key.Binding
	Suspend key.Binding
	Quit    key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Help, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap},
		{k.Help, k.Suspend, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space/click", "flap"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Suspend: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "suspend"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a Bubble Tea key message to a game key. Whatever the
// Flap binding matches becomes the game's jump key.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Key {
	if key.Matches(msg, k.Flap) {
		return core.KeySpace
	}
	switch msg.String() {
	case "enter":
		return core.KeyEnter
	case "up":
		return core.KeyUp
	}
	return core.KeyOther
}

// MapMouse translates a mouse press to the buttons it holds. Wheel events
// and releases map to no buttons.
func MapMouse(msg tea.MouseMsg) core.Buttons {
	if msg.Action != tea.MouseActionPress {
		return 0
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		return core.ButtonPrimary
	case tea.MouseButtonRight:
		return core.ButtonSecondary
	case tea.MouseButtonMiddle:
		return core.ButtonMiddle
	case tea.MouseButtonBackward, tea.MouseButtonForward:
		return core.ButtonExtra
	}
	return 0
}

// DefaultRepeatWindow is the longest gap between two identical key
// presses that still counts as auto-repeat.
const DefaultRepeatWindow = 60 * time.Millisecond

// RepeatDetector guesses auto-repeat, which terminals do not report, from
// the timing of identical key presses.
type RepeatDetector struct {
	window time.Duration
	last   string
	at     time.Time
}

// NewRepeatDetector creates a detector. A non-positive window means
// DefaultRepeatWindow.
func NewRepeatDetector(window time.Duration) *RepeatDetector {
	if window <= 0 {
		window = DefaultRepeatWindow
	}
	return &RepeatDetector{window: window}
}

// Observe records a key press at now and reports whether it repeats the
// previous press.
func (d *RepeatDetector) Observe(k string, now time.Time) bool {
	repeat := k == d.last && !d.at.IsZero() && now.Sub(d.at) <= d.window
	d.last = k
	d.at = now
	return repeat
}
