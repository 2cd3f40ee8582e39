package lunchrtest

import (
	"testing"

	"github.com/mrterry/lunchr/types"
)

// NewTestLogger creates a logger that writes to the test's log.
// Output is shown for failing tests or with go test -v.
func NewTestLogger(tb testing.TB) types.Logger {
	return &testLogger{tb: tb}
}

type testLogger struct {
	tb testing.TB
}

var _ types.Logger = (*testLogger)(nil)

func (l *testLogger) Debug(msg string, keysAndValues ...any) {
	l.tb.Helper()
	l.tb.Logf("DEBUG: %s %v", msg, keysAndValues)
}

func (l *testLogger) Info(msg string, keysAndValues ...any) {
	l.tb.Helper()
	l.tb.Logf("INFO: %s %v", msg, keysAndValues)
}

func (l *testLogger) Warn(msg string, keysAndValues ...any) {
	l.tb.Helper()
	l.tb.Logf("WARN: %s %v", msg, keysAndValues)
}

func (l *testLogger) Error(msg string, keysAndValues ...any) {
	l.tb.Helper()
	l.tb.Logf("ERROR: %s %v", msg, keysAndValues)
}

func (l *testLogger) Fatal(msg string, keysAndValues ...any) {
	l.tb.Helper()
	l.tb.Fatalf("FATAL: %s %v", msg, keysAndValues)
}
