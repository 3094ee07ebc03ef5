package logging_test

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"firststeps/internal/logging"
)

func TestNew_Default(t *testing.T) {
	logger, err := logging.New(false)
	if err != nil {
		t.Fatalf("New(false) error: %v", err)
	}
	defer logger.Sync()

	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level enabled, want disabled in non-debug mode")
	}
	if !logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info level disabled, want enabled")
	}
}

func TestNew_Debug(t *testing.T) {
	logger, err := logging.New(true)
	if err != nil {
		t.Fatalf("New(true) error: %v", err)
	}
	defer logger.Sync()

	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level disabled, want enabled in debug mode")
	}
}
