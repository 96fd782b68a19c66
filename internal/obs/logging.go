package obs

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger configures a zerolog logger writing to stdout using the provided format and
// minimum level.
func NewLogger(format, level string) zerolog.Logger {
	return NewLoggerTo(os.Stdout, format, level)
}

// NewLoggerTo is NewLogger with an explicit destination. The minimum level is applied to
// the returned logger only; the process-wide zerolog level is left untouched.
func NewLoggerTo(w io.Writer, format, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	var out io.Writer = w
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console", "text":
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Caller().
		Logger()
}

// ParseLevel maps a configured level name onto a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "warning":
		return zerolog.WarnLevel
	case "":
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// LevelEnabled reports whether an event at lvl passes the minimum level.
//
// debug permits everything; info permits info, warn and error; warn permits warn and
// error; error permits error only.
func LevelEnabled(minimum, lvl zerolog.Level) bool {
	switch minimum {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return true
	case zerolog.InfoLevel:
		return lvl >= zerolog.InfoLevel
	case zerolog.WarnLevel:
		return lvl >= zerolog.WarnLevel
	case zerolog.ErrorLevel:
		return lvl >= zerolog.ErrorLevel
	case zerolog.Disabled:
		return false
	default:
		return lvl >= minimum
	}
}
