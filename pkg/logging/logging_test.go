package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetup(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop() })

	tests := []struct {
		debug bool
		level zapcore.Level
	}{
		{debug: false, level: zapcore.WarnLevel},
		{debug: true, level: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		if err := Setup(tt.debug, "enclose", "test"); err != nil {
			t.Fatalf("Setup(%v) error = %v", tt.debug, err)
		}
		if !Logger.Core().Enabled(tt.level) {
			t.Errorf("Setup(%v): level %v not enabled", tt.debug, tt.level)
		}
		if !tt.debug && Logger.Core().Enabled(zapcore.InfoLevel) {
			t.Error("production logger should not log info")
		}
		if zap.L() != Logger {
			t.Error("Setup should replace the global logger")
		}
	}
}
