package testutil

import (
	"fmt"
	"sync"
	"testing"

	"github.com/MGTheTrain/aes-ecb/internal/pkg/config"
	"github.com/MGTheTrain/aes-ecb/internal/pkg/logger"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger sets up a logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	err := logger.InitLogger(config.DefaultLoggerSettings())
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}

// MockLogger records leveled messages and routes Fatal through a mock expectation,
// so tests can assert on the fatal path without the process exiting.
type MockLogger struct {
	mock.Mock

	mu       sync.Mutex
	Messages []string
}

// NewMockLogger returns a MockLogger whose Fatal panics with FatalPanic.
func NewMockLogger() *MockLogger {
	m := &MockLogger{}
	m.On("Fatal", mock.Anything).Run(func(mock.Arguments) { panic(FatalPanic) }).Maybe()
	return m
}

// FatalPanic is the value MockLogger panics with when Fatal is called.
const FatalPanic = "mock logger: fatal"

func (m *MockLogger) record(level string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, level+" "+fmt.Sprint(args...))
}

func (m *MockLogger) Debug(args ...interface{}) { m.record("DEBUG", args...) }
func (m *MockLogger) Info(args ...interface{})  { m.record("INFO", args...) }
func (m *MockLogger) Warn(args ...interface{})  { m.record("WARN", args...) }
func (m *MockLogger) Error(args ...interface{}) { m.record("ERROR", args...) }

func (m *MockLogger) Fatal(args ...interface{}) {
	m.record("FATAL", args...)
	m.Called(fmt.Sprint(args...))
}

func (m *MockLogger) Panic(args ...interface{}) {
	m.record("PANIC", args...)
	panic(fmt.Sprint(args...))
}
