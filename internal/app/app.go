package app

import (
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/ted-editor/ted/internal/editor"
	"github.com/ted-editor/ted/internal/renderer"
	"github.com/ted-editor/ted/internal/renderer/backend"
)

// Options configures a session.
type Options struct {
	// Path is the file to edit. Loaded eagerly; a missing file starts an
	// empty document that is created on the first save.
	Path string

	// LogLevel is the minimum level for the session log.
	LogLevel string

	// LogFile is where the session log is appended. Empty disables logging;
	// the terminal itself is never used for log output.
	LogFile string
}

// Application owns an editing session: the core model, the display backend
// and the logger. It runs the strictly synchronous render, poll, dispatch
// loop; there is no internal concurrency.
type Application struct {
	editor   *editor.Editor
	backend  backend.Backend
	logger   *Logger
	logFile  *os.File
	session  string
	shutdown sync.Once
}

// New loads the document at opts.Path and prepares a session. The backend is
// attached separately so tests can substitute a headless one.
func New(opts Options) (*Application, error) {
	doc, err := editor.FromPath(opts.Path)
	if err != nil {
		return nil, err
	}

	app := &Application{
		editor:  editor.New(doc),
		logger:  NullLogger,
		session: uuid.NewString(),
	}

	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, &editor.FileError{Op: "open", Path: opts.LogFile, Err: err}
		}
		app.logFile = f
		app.logger = NewLogger(LoggerConfig{
			Level:  ParseLogLevel(opts.LogLevel),
			Output: f,
			Prefix: "ted",
		}).WithField("session", app.session)
	}

	return app, nil
}

// SetBackend attaches the display backend. Must be called before Run.
func (app *Application) SetBackend(b backend.Backend) {
	app.backend = b
}

// SetLogger replaces the session logger.
func (app *Application) SetLogger(l *Logger) {
	app.logger = l
}

// Editor returns the session's editor core.
func (app *Application) Editor() *editor.Editor {
	return app.editor
}

// Session returns the unique id tagged onto this session's log lines.
func (app *Application) Session() string {
	return app.session
}

// Run initializes the backend and executes the blocking read, dispatch,
// render loop. It returns ErrQuit on the normal exit path and the underlying
// failure on any fatal error; the caller restores terminal state before
// surfacing either.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if err := app.backend.Init(); err != nil {
		return &TerminalError{Op: "init", Err: err}
	}

	width, height := app.backend.Size()
	app.editor.SetDisplaySize(width, height)

	log := app.logger.WithComponent("app")
	log.Info("session started: path=%s display=%dx%d",
		app.editor.Document().Path(), width, height)

	for {
		renderer.Render(app.backend, app.editor.Snapshot())

		ev := app.backend.PollEvent()
		switch ev.Type {
		case backend.EventResize:
			app.editor.SetDisplaySize(ev.Width, ev.Height)
			log.Debug("display resized to %dx%d", ev.Width, ev.Height)

		case backend.EventKey:
			quit, err := app.editor.HandleKey(ev.Key)
			if err != nil {
				log.Error("fatal: %v", err)
				return err
			}
			if quit {
				log.Info("session ended")
				return ErrQuit
			}
		}
	}
}

// Shutdown restores the terminal and closes the log file. Safe to call more
// than once and from a signal handler.
func (app *Application) Shutdown() {
	app.shutdown.Do(func() {
		if app.backend != nil {
			app.backend.Shutdown()
		}
		if app.logFile != nil {
			_ = app.logFile.Close()
		}
	})
}
