package editor

import (
	"errors"
	"fmt"
)

// Document errors.
var (
	// ErrCannotOpenRoot indicates the target path resolves to the filesystem
	// root, which has no parent directory to validate.
	ErrCannotOpenRoot = errors.New("cannot open the filesystem root")

	// ErrNoFilePath indicates a seeded document with no backing file.
	ErrNoFilePath = errors.New("document has no file path")
)

// FileError wraps a filesystem failure while opening, reading or writing the
// document.
type FileError struct {
	Op   string // Operation name ("open", "read", "save")
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// DirectoryError indicates the parent directory of the target file does not
// exist, so the file could never be saved.
type DirectoryError struct {
	Dir string
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("the directory %s does not exist", e.Dir)
}
