package core

// Key identifies a keyboard key, abstracted from the shell's key codes.
// Only keys the game distinguishes get their own value.
type Key int

const (
	KeyNone Key = iota
	KeySpace
	KeyEnter
	KeyUp
	KeyOther // any key the game treats generically ("press any key")
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case KeyUp:
		return "Up"
	case KeyOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Buttons is the set of pointer buttons held when a pointer-down event
// was delivered.
type Buttons uint8

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonSecondary
	ButtonMiddle
	ButtonExtra
)

// Has reports whether every button in b2 is held.
func (b Buttons) Has(b2 Buttons) bool {
	return b&b2 == b2 && b2 != 0
}
