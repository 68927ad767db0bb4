// Package backend provides the display abstraction the renderer paints to.
package backend

import "github.com/ted-editor/ted/internal/input/key"

// CursorStyle defines how the native cursor appears.
type CursorStyle int

const (
	// CursorBlock is a full-cell block cursor (Navigate mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (Edit mode).
	CursorBar
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event payload.
	Key key.Event

	// Resize event payload.
	Width, Height int
}

// Backend is the display surface and blocking event source the editor runs
// against. Implementations handle actual drawing to the terminal or, for
// tests, to an in-memory grid.
type Backend interface {
	// Init prepares the backend for use (raw mode, alternate screen).
	// Must be called before any other method.
	Init() error

	// Shutdown restores the terminal state.
	Shutdown()

	// Size returns the current surface dimensions.
	Size() (width, height int)

	// SetCell places a rune at the given position. Positions outside the
	// surface are silently ignored.
	SetCell(x, y int, r rune)

	// Clear erases the whole surface.
	Clear()

	// Show flushes pending changes to the display. Changes within one render
	// pass are applied in order and flushed together.
	Show()

	// ShowCursor positions and shows the native cursor.
	ShowCursor(x, y int)

	// HideCursor hides the native cursor.
	HideCursor()

	// SetCursorStyle changes the cursor appearance.
	SetCursorStyle(style CursorStyle)

	// PollEvent blocks until the next terminal event.
	PollEvent() Event

	// PostEvent queues a synthetic event, used by tests to script sessions.
	PostEvent(ev Event)
}
