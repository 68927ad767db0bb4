package editor

import "math"

// CursorPosition is the position of the cursor on the display, relative to
// the visible viewport. It is bounded above by the display size.
type CursorPosition struct {
	Column uint16
	Row    uint16
}

// ViewportOffset is the document-relative offset of the viewport's top-left
// corner. The absolute document row is ViewportOffset.Row + CursorPosition.Row,
// and the absolute column is analogous.
type ViewportOffset struct {
	Column int
	Row    int
}

// DisplaySize is the size of the rendering surface. It is updated externally
// when the terminal is resized.
type DisplaySize struct {
	Columns uint16
	Rows    uint16
}

// DefaultDisplaySize returns the 80x24 fallback used before the terminal
// reports its real size.
func DefaultDisplaySize() DisplaySize {
	return DisplaySize{Columns: 80, Rows: 24}
}

// Movement identifies a cursor movement handled in Navigate mode.
type Movement uint8

const (
	MoveLeft Movement = iota
	MoveRight
	MoveUp
	MoveDown
)

// String returns a human-readable movement name.
func (m Movement) String() string {
	switch m {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	}
	return "unknown"
}

// saturateUint16 converts n to uint16, clamping to the representable range
// instead of overflowing.
func saturateUint16(n int) uint16 {
	if n < 0 {
		return 0
	}
	if n > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(n)
}
