// Package main is the entry point for the ted editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ted-editor/ted/internal/app"
	"github.com/ted-editor/ted/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	application.SetBackend(term)

	// A signal must still restore the terminal before the process dies.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		application.Shutdown()
		os.Exit(1)
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		// Leave the alternate screen before printing, or the message is lost
		// with it.
		application.Shutdown()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.LogLevel, "log-level", envOr("TED_LOG_LEVEL", "info"),
		"Log level (debug, info, warn, error)")
	flag.StringVar(&opts.LogFile, "log-file", os.Getenv("TED_LOG_FILE"),
		"Append session logs to this file (empty disables logging)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ted - a modal terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: ted [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  h/j/k/l   move (navigate mode)\n")
		fmt.Fprintf(os.Stderr, "  i         enter edit mode\n")
		fmt.Fprintf(os.Stderr, "  Esc       return to navigate mode\n")
		fmt.Fprintf(os.Stderr, "  w         save\n")
		fmt.Fprintf(os.Stderr, "  q         quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("ted %s (%s)\n", version, commit)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one file argument")
		flag.Usage()
		os.Exit(2)
	}
	opts.Path = flag.Arg(0)

	return opts
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
