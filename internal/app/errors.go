// Package app wires the editor core, renderer and terminal backend into a
// running session.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the session should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrNoBackend indicates Run was called before a backend was attached.
	ErrNoBackend = errors.New("no backend attached")
)

// TerminalError wraps a terminal-control failure.
type TerminalError struct {
	Op  string // Operation name ("create", "init")
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}
