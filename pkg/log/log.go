package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the global logger. Components never construct their own root
// logger; they derive children via the With* helpers so that every line
// carries the fields operators filter on.
var Logger zerolog.Logger

// Options control Setup. The zero value is usable: info level, console
// output on stderr.
type Options struct {
	// Level is the minimum level emitted. Accepts the common spellings
	// ("debug", "info", "warn"/"warning", "error"/"err"); anything else
	// falls back to info and is reported on the configured output.
	Level string

	// JSON switches from the human console format to one JSON object per
	// line for log collectors.
	JSON bool

	// Output defaults to stderr. Stdout is reserved for the payloads of
	// the agent's children, which inherit the agent's file descriptors.
	Output io.Writer
}

// Setup initializes the global logger for the agent process.
func Setup(opts Options) {
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	level, known := parseLevel(opts.Level)
	zerolog.SetGlobalLevel(level)

	if opts.JSON {
		Logger = zerolog.New(output).With().Timestamp().Logger()
	} else {
		Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	}

	if !known {
		Logger.Warn().Str("level", opts.Level).Msg("unknown log level, using info")
	}
}

// parseLevel maps a level string to a zerolog level, tolerating the aliases
// that show up in controller-pushed configs and operator habit.
func parseLevel(s string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "trace":
		return zerolog.DebugLevel, true
	case "", "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error", "err":
		return zerolog.ErrorLevel, true
	default:
		return zerolog.InfoLevel, false
	}
}

// WithComponent creates a child logger with component field
func WithComponent(component string) zerolog.Logger {
	return Logger.With().Str("component", component).Logger()
}

// WithInstanceID creates a child logger with instance_id field
func WithInstanceID(instanceID string) zerolog.Logger {
	return Logger.With().Str("instance_id", instanceID).Logger()
}

// WithNodeID creates a child logger with node_id field
func WithNodeID(nodeID string) zerolog.Logger {
	return Logger.With().Str("node_id", nodeID).Logger()
}
