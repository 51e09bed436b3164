//go:build unit
// +build unit

package logger

import (
	"bytes"
	"testing"

	"github.com/MGTheTrain/aes-ecb/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(config.LogLevelInfo, &buf)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestWriterLogger_Fatal(t *testing.T) {
	var buf bytes.Buffer
	exitCode := -1
	logger := NewWriterLogger(config.LogLevelError, &buf).WithExit(func(code int) { exitCode = code })

	logger.Fatal("backend fault: ", "cipher init failed")

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, buf.String(), "backend fault: cipher init failed")
	assert.Contains(t, buf.String(), "level=FATAL")
}

func TestWriterLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(config.LogLevelInfo, &buf)

	assert.PanicsWithValue(t, "schedule misuse", func() { logger.Panic("schedule misuse") })
	assert.Contains(t, buf.String(), "schedule misuse")
}

func TestNewConsoleLogger(t *testing.T) {
	logger := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, logger)

	require.NotPanics(t, func() {
		logger.Info("test")
		logger.Warn("test")
		logger.Error("test")
	})
}
