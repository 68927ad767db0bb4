package editor

import (
	"github.com/ted-editor/ted/internal/input/key"
)

// Editor owns the document, the screen-relative cursor, the viewport offset
// and the current mode.
type Editor struct {
	doc      *Document
	cursor   CursorPosition
	viewport ViewportOffset
	size     DisplaySize
	mode     Mode
}

// New creates an editor over doc, starting in Navigate mode with the default
// display size.
func New(doc *Document) *Editor {
	return &Editor{doc: doc, size: DefaultDisplaySize()}
}

// Document returns the document being edited.
func (e *Editor) Document() *Document {
	return e.doc
}

// Cursor returns the screen-relative cursor position.
func (e *Editor) Cursor() CursorPosition {
	return e.cursor
}

// Viewport returns the document-relative viewport offset.
func (e *Editor) Viewport() ViewportOffset {
	return e.viewport
}

// Size returns the display size.
func (e *Editor) Size() DisplaySize {
	return e.size
}

// Mode returns the current input mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// SetDisplaySize updates the display size, saturating to the representable
// range, and pulls the viewport back inside the new bounds.
func (e *Editor) SetDisplaySize(columns, rows int) {
	e.size.Columns = saturateUint16(columns)
	e.size.Rows = saturateUint16(rows)
	e.viewport.Column = min(e.viewport.Column, int(e.size.Columns))
	e.viewport.Row = min(e.viewport.Row, int(e.size.Rows))
}

// RowLength returns the byte length of the line the cursor sits on, or 0
// when the absolute row is past the end of the document.
func (e *Editor) RowLength() int {
	return e.doc.LineLen(e.viewport.Row + int(e.cursor.Row))
}

// CursorIndex returns the insertion point in the document addressed by the
// viewport offset and cursor: the lengths of all lines strictly above the
// absolute row, each plus one for its newline, plus the absolute column.
func (e *Editor) CursorIndex() int {
	lines := e.doc.Lines()
	row := min(e.viewport.Row+int(e.cursor.Row), len(lines))

	idx := 0
	for _, line := range lines[:row] {
		idx += len(line) + 1
	}
	return idx + e.viewport.Column + int(e.cursor.Column)
}

// MoveCursor applies one Navigate-mode movement. Hitting a display edge
// scrolls the viewport instead of moving the cursor; all clamps happen in
// absolute document coordinates.
func (e *Editor) MoveCursor(m Movement) {
	switch m {
	case MoveLeft:
		if e.cursor.Column > 0 {
			e.cursor.Column--
		} else if e.viewport.Column > 0 {
			e.viewport.Column--
		}

	case MoveRight:
		// In Edit mode the cursor may sit one past the last character, for
		// appending. In Navigate mode it must sit on a character, or column 0
		// on an empty line.
		last := e.RowLength()
		if e.mode != ModeEdit {
			last = max(last-1, 0)
		}

		canMove := e.viewport.Column+int(e.cursor.Column) < last
		atRightEdge := int(e.cursor.Column) == int(e.size.Columns)-1
		switch {
		case canMove && atRightEdge:
			e.viewport.Column++
		case canMove:
			e.cursor.Column++
		}

	case MoveUp:
		if e.cursor.Row > 0 {
			e.cursor.Row--
		} else if e.viewport.Row > 0 {
			e.viewport.Row--
		}
		e.reclampColumn()

	case MoveDown:
		remaining := e.doc.LineCount() - e.viewport.Row
		canMove := int(e.cursor.Row)+1 < remaining
		atBottomEdge := int(e.cursor.Row)+1 == int(e.size.Rows)
		switch {
		case canMove && atBottomEdge:
			e.viewport.Row++
		case canMove:
			e.cursor.Row++
		}
		e.reclampColumn()
	}
}

// reclampColumn keeps the viewport offset and screen column within the
// current row after a vertical move, since line lengths vary.
func (e *Editor) reclampColumn() {
	length := e.RowLength()
	if e.viewport.Column > length {
		e.viewport.Column = length
	}
	if limit := saturateUint16(length - e.viewport.Column); e.cursor.Column > limit {
		e.cursor.Column = limit
	}
}

// Insert inserts r at the cursor index. A line break resets the screen
// column and advances the screen row; the viewport is left alone, so typing
// past the bottom of the display does not scroll.
func (e *Editor) Insert(r rune) {
	e.doc.InsertAt(e.CursorIndex(), r)

	if r == '\n' {
		e.cursor.Column = 0
		e.cursor.Row++
	} else {
		e.cursor.Column++
	}
}

// Remove deletes the character before the cursor index, backspace style. At
// the very start of the document it is a no-op. Removing a line break merges
// the line into the one above and lands the cursor on the join point.
func (e *Editor) Remove() {
	idx := e.CursorIndex() - 1
	if idx < 0 {
		return
	}

	previousLength := e.RowLength()
	r, ok := e.doc.RemoveAt(idx)
	if !ok {
		return
	}

	if r == '\n' {
		if e.cursor.Row > 0 {
			e.cursor.Row--
		}
		e.cursor.Column = saturateUint16(e.RowLength() - previousLength)
	} else if e.cursor.Column > 0 {
		e.cursor.Column--
	}
}

// HandleKey dispatches a key event according to the current mode. It reports
// whether the quit key was pressed; a failed save is returned as a fatal
// error. Unrecognized events are ignored.
func (e *Editor) HandleKey(ev key.Event) (quit bool, err error) {
	switch e.mode {
	case ModeEdit:
		return false, e.handleEditKey(ev)
	default:
		return e.handleNavigateKey(ev)
	}
}

func (e *Editor) handleNavigateKey(ev key.Event) (bool, error) {
	if ev.Key != key.KeyRune {
		return false, nil
	}

	switch ev.Rune {
	case 'q':
		return true, nil
	case 'h':
		e.MoveCursor(MoveLeft)
	case 'j':
		e.MoveCursor(MoveDown)
	case 'k':
		e.MoveCursor(MoveUp)
	case 'l':
		e.MoveCursor(MoveRight)
	case 'i':
		e.mode = ModeEdit
	case 'w':
		return false, e.doc.Save()
	}
	return false, nil
}

func (e *Editor) handleEditKey(ev key.Event) error {
	switch ev.Key {
	case key.KeyEscape:
		e.mode = ModeNavigate
	case key.KeyEnter:
		e.Insert('\n')
	case key.KeyBackspace:
		e.Remove()
	case key.KeyRune:
		if ev.Rune != 0 {
			e.Insert(ev.Rune)
		}
	}
	return nil
}

// Snapshot is a read-only copy of the state the renderer needs to paint one
// frame.
type Snapshot struct {
	Lines    []string
	Cursor   CursorPosition
	Viewport ViewportOffset
	Size     DisplaySize
	Mode     Mode
}

// Snapshot captures the current editor state for rendering.
func (e *Editor) Snapshot() Snapshot {
	return Snapshot{
		Lines:    e.doc.Lines(),
		Cursor:   e.cursor,
		Viewport: e.viewport,
		Size:     e.size,
		Mode:     e.mode,
	}
}
