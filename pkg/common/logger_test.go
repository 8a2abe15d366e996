package common

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	_ "aquaview.xyz/water-quality-dashboard/pkg/testing"
)

func TestLoggingCapture(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLogger()
	logger.Info("Test log message", zap.String("key", "value"))

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Test log message") {
		t.Errorf("expected log output to contain message, got: %s", logOutput)
	}
}

func TestGetEnvFallbacks(t *testing.T) {
	t.Setenv(EnvKeyAQVRetryAttempts, "5")

	if got := GetEnvInt(EnvKeyAQVRetryAttempts, 2); got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
	if got := GetEnvInt("AQV_NOT_SET", 2); got != 2 {
		t.Errorf("expected fallback 2, got %d", got)
	}
	if got := GetEnv("AQV_NOT_SET", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %s", got)
	}
}
