package renderer

import (
	"testing"

	"github.com/charmbracelet/x/exp/golden"

	"github.com/ted-editor/ted/internal/editor"
	"github.com/ted-editor/ted/internal/renderer/backend"
)

func TestRenderScreen(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		viewport editor.ViewportOffset
		size     editor.DisplaySize
	}{
		{
			name:     "basic",
			contents: "hello\nworld",
			size:     editor.DisplaySize{Columns: 10, Rows: 4},
		},
		{
			name:     "scrolled_rows",
			contents: "1\n2\n3\n4\n5",
			viewport: editor.ViewportOffset{Row: 2},
			size:     editor.DisplaySize{Columns: 10, Rows: 3},
		},
		{
			name:     "scrolled_columns",
			contents: "abcdefgh\nxy",
			viewport: editor.ViewportOffset{Column: 3},
			size:     editor.DisplaySize{Columns: 4, Rows: 2},
		},
		{
			name:     "truncated_to_width",
			contents: "abcdefghij",
			size:     editor.DisplaySize{Columns: 5, Rows: 2},
		},
		{
			name:     "empty_document",
			contents: "",
			size:     editor.DisplaySize{Columns: 5, Rows: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := backend.NewMemory(int(tt.size.Columns), int(tt.size.Rows))

			Render(m, editor.Snapshot{
				Lines:    editor.NewDocument(tt.contents).Lines(),
				Viewport: tt.viewport,
				Size:     tt.size,
			})

			golden.RequireEqual(t, []byte(m.String()))
		})
	}
}

func TestRenderCursorPlacement(t *testing.T) {
	tests := []struct {
		name   string
		mode   editor.Mode
		cursor editor.CursorPosition
		wantX  int
		wantY  int
	}{
		{"navigate on character", editor.ModeNavigate, editor.CursorPosition{Column: 1}, 1, 0},
		{"navigate clamped to last character", editor.ModeNavigate, editor.CursorPosition{Column: 9}, 2, 0},
		{"edit clamped one past end", editor.ModeEdit, editor.CursorPosition{Column: 9}, 3, 0},
		{"second row", editor.ModeNavigate, editor.CursorPosition{Column: 0, Row: 1}, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := backend.NewMemory(10, 3)

			Render(m, editor.Snapshot{
				Lines:  []string{"abc", "de"},
				Cursor: tt.cursor,
				Size:   editor.DisplaySize{Columns: 10, Rows: 3},
				Mode:   tt.mode,
			})

			x, y, visible := m.Cursor()
			if !visible {
				t.Fatal("cursor hidden after render")
			}
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("cursor at (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRenderCursorOnEmptyDocument(t *testing.T) {
	m := backend.NewMemory(5, 2)

	Render(m, editor.Snapshot{
		Size: editor.DisplaySize{Columns: 5, Rows: 2},
	})

	x, y, visible := m.Cursor()
	if !visible || x != 0 || y != 0 {
		t.Errorf("cursor = (%d, %d, %v), want visible at origin", x, y, visible)
	}
}

func TestRenderCursorStyleFollowsMode(t *testing.T) {
	m := backend.NewMemory(5, 2)
	snap := editor.Snapshot{Size: editor.DisplaySize{Columns: 5, Rows: 2}}

	Render(m, snap)
	if m.CursorStyleValue() != backend.CursorBlock {
		t.Error("navigate mode should use a block cursor")
	}

	snap.Mode = editor.ModeEdit
	Render(m, snap)
	if m.CursorStyleValue() != backend.CursorBar {
		t.Error("edit mode should use a bar cursor")
	}
}

func TestCursorColumnPastDocumentEnd(t *testing.T) {
	snap := editor.Snapshot{
		Lines:    []string{"abc"},
		Cursor:   editor.CursorPosition{Column: 2, Row: 5},
		Viewport: editor.ViewportOffset{},
		Size:     editor.DisplaySize{Columns: 10, Rows: 10},
	}

	// Rows past the end of the document have length zero, so the cursor
	// column collapses to zero in both modes.
	if got := cursorColumn(snap); got != 0 {
		t.Errorf("cursorColumn = %d, want 0", got)
	}
	snap.Mode = editor.ModeEdit
	if got := cursorColumn(snap); got != 0 {
		t.Errorf("cursorColumn in edit mode = %d, want 0", got)
	}
}
