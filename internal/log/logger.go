// Package log provides structured logging for the runner CLI.
package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Config captures options for building the root logger.
type Config struct {
	Level  string    // zerolog level name; defaults to "info"
	Format string    // "console" or "json"; defaults to "console"
	Output io.Writer // defaults to os.Stderr so answers on stdout stay clean
}

// New builds a root logger from cfg.
//
// Unlike a daemon, the CLI builds its logger once per invocation and
// passes it down explicitly, so there is no global state here and no
// environment lookups: every knob comes from parsed flags.
func New(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// WithDay returns a child logger annotated with the given day number.
func WithDay(logger zerolog.Logger, day int) zerolog.Logger {
	return logger.With().Int("day", day).Logger()
}
