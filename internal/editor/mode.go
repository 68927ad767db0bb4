package editor

// Mode determines how key events are interpreted.
type Mode uint8

const (
	// ModeNavigate provides movement through the document. The cursor rests
	// on existing characters.
	ModeNavigate Mode = iota

	// ModeEdit allows insertion and removal of text, like vi's insert mode.
	// The cursor may rest one past the end of a line.
	ModeEdit
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeNavigate:
		return "navigate"
	case ModeEdit:
		return "edit"
	default:
		return "unknown"
	}
}
