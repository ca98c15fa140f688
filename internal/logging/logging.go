// Package logging provides the structured logging used for every tolerated
// failure the engine reports about itself (malformed config, dropped
// commands, hook timeouts). It never terminates the host process.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the package-wide logger. Packages within this module may
// reassign it (or call Init) before constructing an extension.Surface; the
// package is internal, so code outside the module cannot.
var Logger zerolog.Logger

// Config controls the global logger.
type Config struct {
	Level  zerolog.Level
	Output io.Writer
	Pretty bool
}

// DefaultConfig logs at warn level to stderr, matching the level at which
// the engine reports tolerated failures.
func DefaultConfig() Config {
	return Config{Level: zerolog.WarnLevel, Output: os.Stderr}
}

// Init (re)configures the global logger.
func Init(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = cfg.Output
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
	}

	Logger = zerolog.New(out).Level(cfg.Level).With().Timestamp().Logger()
}

func init() {
	Init(DefaultConfig())
}
