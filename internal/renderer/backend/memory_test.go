package backend

import (
	"testing"

	"github.com/ted-editor/ted/internal/input/key"
)

func TestMemorySetCell(t *testing.T) {
	m := NewMemory(4, 2)

	m.SetCell(0, 0, 'a')
	m.SetCell(3, 1, 'b')

	// Out-of-bounds writes are ignored.
	m.SetCell(-1, 0, 'x')
	m.SetCell(4, 0, 'x')
	m.SetCell(0, 2, 'x')

	if got := m.String(); got != "a\n   b\n" {
		t.Errorf("String() = %q, want %q", got, "a\n   b\n")
	}
}

func TestMemoryClear(t *testing.T) {
	m := NewMemory(3, 2)
	m.SetCell(1, 1, 'z')

	m.Clear()

	if got := m.String(); got != "\n\n" {
		t.Errorf("String() = %q, want blank screen", got)
	}
}

func TestMemoryCursor(t *testing.T) {
	m := NewMemory(3, 2)

	m.ShowCursor(2, 1)
	if x, y, visible := m.Cursor(); x != 2 || y != 1 || !visible {
		t.Errorf("Cursor() = %d, %d, %v", x, y, visible)
	}

	m.HideCursor()
	if _, _, visible := m.Cursor(); visible {
		t.Error("cursor still visible after HideCursor")
	}

	m.SetCursorStyle(CursorBar)
	if m.CursorStyleValue() != CursorBar {
		t.Error("cursor style not recorded")
	}
}

func TestMemoryEvents(t *testing.T) {
	m := NewMemory(3, 2)

	m.PostEvent(Event{Type: EventKey, Key: key.Rune('q')})

	ev := m.PollEvent()
	if ev.Type != EventKey || ev.Key.Rune != 'q' {
		t.Errorf("PollEvent() = %+v", ev)
	}
}

func TestMemoryResize(t *testing.T) {
	m := NewMemory(3, 2)
	m.SetCell(0, 0, 'a')

	m.Resize(5, 4)

	if w, h := m.Size(); w != 5 || h != 4 {
		t.Errorf("Size() = %d, %d", w, h)
	}
	ev := m.PollEvent()
	if ev.Type != EventResize || ev.Width != 5 || ev.Height != 4 {
		t.Errorf("resize event = %+v", ev)
	}
	if got := m.String(); got != "\n\n\n\n" {
		t.Errorf("grid not reset on resize: %q", got)
	}
}
