package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a configured application logger.
// It writes to Stderr so that logs never mix with command output on Stdout.
// It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Flags are the verbosity switches read from the environment.
type Flags struct {
	Verbose bool
	Quiet   bool
	Debug   bool
}

// FromEnv reads VERBOSE, QUIET and DEBUG through lookup (os.LookupEnv when
// nil). "1" and "true" enable a flag.
func FromEnv(lookup func(string) (string, bool)) Flags {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	on := func(key string) bool {
		v, ok := lookup(key)
		if !ok {
			return false
		}
		v = strings.ToLower(strings.TrimSpace(v))
		return v == "1" || v == "true"
	}
	return Flags{
		Verbose: on("VERBOSE"),
		Quiet:   on("QUIET"),
		Debug:   on("DEBUG"),
	}
}

// Level maps the flags to a log level. Debug wins over Verbose, which wins
// over Quiet.
func (f Flags) Level() slog.Level {
	switch {
	case f.Debug:
		return slog.LevelDebug
	case f.Verbose:
		return slog.LevelInfo
	case f.Quiet:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
