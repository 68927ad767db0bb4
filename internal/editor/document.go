package editor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Document is the full in-memory text being edited. The contents are a
// single newline-delimited string; an empty document is valid.
type Document struct {
	path     string
	contents string
}

// NewDocument creates a document seeded with s and no backing file.
func NewDocument(s string) *Document {
	return &Document{contents: s}
}

// FromPath wraps a document around a path on the filesystem.
//
// If the file exists its contents are read eagerly; if it does not, the
// document starts empty and the file is created on the first Save. The
// parent directory must exist up front, because by the time a save fails the
// terminal is in raw mode and there is no good way to surface the error.
func FromPath(path string) (*Document, error) {
	if filepath.Clean(path) == string(filepath.Separator) {
		return nil, ErrCannotOpenRoot
	}

	dir := filepath.Dir(path)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, &DirectoryError{Dir: dir}
	}

	doc := &Document{path: path}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		doc.contents = string(data)
	case !errors.Is(err, os.ErrNotExist):
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	return doc, nil
}

// Path returns the backing file path, or "" for a seeded document.
func (d *Document) Path() string {
	return d.path
}

// Contents returns the full text.
func (d *Document) Contents() string {
	return d.contents
}

// Len returns the total byte length of the contents.
func (d *Document) Len() int {
	return len(d.contents)
}

// Lines splits the contents into logical lines the way the movement and
// rendering code counts them: a trailing newline terminates the final line
// rather than opening an empty one, and an empty document has no lines.
func (d *Document) Lines() []string {
	if d.contents == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(d.contents, "\n"), "\n")
}

// LineCount returns the number of logical lines.
func (d *Document) LineCount() int {
	return len(d.Lines())
}

// Line returns the line at index i, reporting whether it exists.
func (d *Document) Line(i int) (string, bool) {
	lines := d.Lines()
	if i < 0 || i >= len(lines) {
		return "", false
	}
	return lines[i], true
}

// LineLen returns the byte length of line i, or 0 if the line does not
// exist.
func (d *Document) LineLen(i int) int {
	line, ok := d.Line(i)
	if !ok {
		return 0
	}
	return len(line)
}

// InsertAt inserts r at byte index idx. The index must be a valid insertion
// point (0..=Len).
func (d *Document) InsertAt(idx int, r rune) {
	d.contents = d.contents[:idx] + string(r) + d.contents[idx:]
}

// RemoveAt deletes the character starting at byte index idx and returns it.
// Out-of-range indexes are a no-op.
func (d *Document) RemoveAt(idx int) (rune, bool) {
	if idx < 0 || idx >= len(d.contents) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(d.contents[idx:])
	d.contents = d.contents[:idx] + d.contents[idx+size:]
	return r, true
}

// Save writes the full contents to the backing file, creating it if absent
// and overwriting it otherwise.
func (d *Document) Save() error {
	if d.path == "" {
		return ErrNoFilePath
	}
	if err := os.WriteFile(d.path, []byte(d.contents), 0o644); err != nil {
		return &FileError{Op: "save", Path: d.path, Err: err}
	}
	return nil
}
