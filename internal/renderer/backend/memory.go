package backend

import "strings"

// Memory is a headless in-memory backend for tests: a rune grid plus a
// buffered event queue that tests fill through PostEvent.
type Memory struct {
	width, height int
	cells         [][]rune
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   CursorStyle
	events        chan Event
}

// NewMemory creates a memory backend with the given dimensions.
func NewMemory(width, height int) *Memory {
	m := &Memory{
		width:  width,
		height: height,
		events: make(chan Event, 64),
	}
	m.Clear()
	return m
}

func (m *Memory) Init() error {
	return nil
}

func (m *Memory) Shutdown() {}

func (m *Memory) Size() (int, int) {
	return m.width, m.height
}

func (m *Memory) SetCell(x, y int, r rune) {
	if x >= 0 && x < m.width && y >= 0 && y < m.height {
		m.cells[y][x] = r
	}
}

func (m *Memory) Clear() {
	m.cells = make([][]rune, m.height)
	for y := range m.cells {
		m.cells[y] = make([]rune, m.width)
		for x := range m.cells[y] {
			m.cells[y][x] = ' '
		}
	}
}

func (m *Memory) Show() {}

func (m *Memory) ShowCursor(x, y int) {
	m.cursorX = x
	m.cursorY = y
	m.cursorVisible = true
}

func (m *Memory) HideCursor() {
	m.cursorVisible = false
}

func (m *Memory) SetCursorStyle(style CursorStyle) {
	m.cursorStyle = style
}

func (m *Memory) PollEvent() Event {
	return <-m.events
}

func (m *Memory) PostEvent(ev Event) {
	select {
	case m.events <- ev:
	default:
		// Event dropped if the queue is full.
	}
}

// Cursor returns the native cursor position and visibility, for tests.
func (m *Memory) Cursor() (x, y int, visible bool) {
	return m.cursorX, m.cursorY, m.cursorVisible
}

// CursorStyleValue returns the current cursor style, for tests.
func (m *Memory) CursorStyleValue() CursorStyle {
	return m.cursorStyle
}

// Resize changes the surface dimensions and queues the matching resize
// event, simulating a terminal resize.
func (m *Memory) Resize(width, height int) {
	m.width = width
	m.height = height
	m.Clear()
	m.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

// String returns the screen contents, one row per line with trailing blanks
// trimmed. Golden tests compare against this dump.
func (m *Memory) String() string {
	var b strings.Builder
	for _, row := range m.cells {
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
