// Package log exposes the logger used by the calcoli library, applications may plug in their own implementation.
package log

import "sync/atomic"

// Level indicates the verbosity of a log statement.
type Level uint8

const (
	// LevelTrace is used for per element decisions made while computing values, such as rejected pairs.
	LevelTrace Level = iota

	// LevelError is used when a computation is abandoned because of invalid input.
	LevelError
)

// Logger interface which allows applications to provide custom logger implementations.
type Logger interface {
	Log(level Level, format string, args ...any)
}

// holder wraps the installed logger so a <nil> logger can be stored in an 'atomic.Value'.
type holder struct {
	l Logger
}

// logger holds the logger which is used internally by the library.
var logger atomic.Value

// SetLogger sets the logger which will be used by the calcoli library, a <nil> logger disables logging.
//
// NOTE: Safe to call while calculations are running in other goroutines.
func SetLogger(l Logger) {
	logger.Store(holder{l: l})
}

// Logf allows raw access to the underlying logger, most use cases should be through 'Tracef' and 'Errorf'.
//
// NOTE: If no logger has been set using 'SetLogger' all logging information is omitted.
func Logf(level Level, format string, args ...any) {
	h, ok := logger.Load().(holder)
	if !ok || h.l == nil {
		return
	}

	h.l.Log(level, format, args...)
}

// Tracef logs the provided information at the trace level.
func Tracef(format string, args ...any) {
	Logf(LevelTrace, format, args...)
}

// Errorf logs the provided information at the error level.
func Errorf(format string, args ...any) {
	Logf(LevelError, format, args...)
}
