// Package log provides structured logging for goforest training and
// prediction operations.
//
// The package defines a minimal, slog-compatible Logger interface plus
// standard attribute keys for ML operations, with a zerolog-backed default
// implementation. Keeping the interface implementation-agnostic lets
// applications route library logs into their own logging stack.
package log

// Logger is a structured logging interface compatible with log/slog
// conventions: a message followed by alternating key/value fields.
type Logger interface {
	// Debug logs detailed diagnostic information, such as per-fit shapes
	// and durations.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs potentially problematic situations that do not stop the
	// operation.
	Warn(msg string, fields ...any)

	// Error logs error conditions. If a field value is an error, backends
	// may attach stack trace information.
	Error(msg string, fields ...any)

	// With returns a Logger that includes the given fields in every
	// subsequent message.
	With(fields ...any) Logger
}

// Level is a logging level, value-compatible with slog.Level.
type Level int

// Standard levels.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
