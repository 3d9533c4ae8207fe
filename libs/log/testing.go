package log

import (
	"testing"
)

// NewTestingLogger converts a testing.TB into a Logger. Output is only
// written when the test fails or is run with the verbose (-v) flag.
func NewTestingLogger(tb testing.TB) Logger {
	level := LogLevelInfo
	if testing.Verbose() {
		level = LogLevelDebug
	}

	return NewTestingLoggerWithLevel(tb, level)
}

// NewTestingLoggerWithLevel creates a testing logger instance using the given
// minimum level. See NewTestingLogger.
func NewTestingLoggerWithLevel(tb testing.TB, level string) Logger {
	logger, err := newDefaultLogger(testingWriter{tb}, LogFormatPlain, level)
	if err != nil {
		tb.Fatalf("failed to create testing logger: %v", err)
	}
	return logger
}

type testingWriter struct {
	tb testing.TB
}

func (w testingWriter) Write(p []byte) (int, error) {
	w.tb.Logf("%s", p)
	return len(p), nil
}
