package log

// Logger is the logging interface used throughout this library. Components
// accept a Logger and default to a no-op implementation, so callers only pay
// for logging they ask for.
type Logger interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})

	With(keyvals ...interface{}) Logger
}
