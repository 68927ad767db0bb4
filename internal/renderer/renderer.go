// Package renderer paints an editor snapshot onto a backend surface. It
// holds no state of its own, so any snapshot can be drawn onto any backend,
// including the in-memory one used by tests.
package renderer

import (
	"github.com/ted-editor/ted/internal/editor"
	"github.com/ted-editor/ted/internal/renderer/backend"
)

// Render paints one frame: up to Size.Rows document lines starting at the
// viewport row, each byte-sliced from the viewport column and truncated to
// Size.Columns, followed by the native cursor.
func Render(b backend.Backend, snap editor.Snapshot) {
	b.HideCursor()
	b.Clear()

	rows := int(snap.Size.Rows)
	columns := int(snap.Size.Columns)

	for y := 0; y < rows; y++ {
		i := snap.Viewport.Row + y
		if i >= len(snap.Lines) {
			break
		}

		line := snap.Lines[i]
		if snap.Viewport.Column > len(line) {
			// The viewport is scrolled past the end of this line.
			continue
		}
		visible := line[snap.Viewport.Column:]
		if len(visible) > columns {
			visible = visible[:columns]
		}

		x := 0
		for _, r := range visible {
			b.SetCell(x, y, r)
			x++
		}
	}

	b.SetCursorStyle(cursorStyle(snap.Mode))
	b.ShowCursor(cursorColumn(snap), int(snap.Cursor.Row))
	b.Show()
}

// cursorColumn clamps the cursor to the last legal column for the mode, so a
// momentarily stale column never paints the cursor past the end of the line.
func cursorColumn(snap editor.Snapshot) int {
	last := rowLength(snap)
	if snap.Mode != editor.ModeEdit {
		last = max(last-1, 0)
	}
	return min(int(snap.Cursor.Column), last)
}

// rowLength is the byte length of the line under the cursor, 0 past the end.
func rowLength(snap editor.Snapshot) int {
	i := snap.Viewport.Row + int(snap.Cursor.Row)
	if i < 0 || i >= len(snap.Lines) {
		return 0
	}
	return len(snap.Lines[i])
}

func cursorStyle(m editor.Mode) backend.CursorStyle {
	if m == editor.ModeEdit {
		return backend.CursorBar
	}
	return backend.CursorBlock
}
