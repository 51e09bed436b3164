package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
)

// SlogLogger is an implementation of Logger on top of log/slog.
type SlogLogger struct {
	logger *slog.Logger
	exit   func(code int)
}

// NewConsoleLogger creates a logger writing text records to stderr.
func NewConsoleLogger(level string) Logger {
	return NewWriterLogger(level, os.Stderr)
}

// NewWriterLogger creates a logger writing text records to w.
func NewWriterLogger(level string, w io.Writer) *SlogLogger {
	handler := slog.NewTextHandler(w, handlerOptions(level))
	return &SlogLogger{logger: slog.New(handler), exit: os.Exit}
}

// NewFileLogger creates a logger writing JSON records to a size rotated file.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	handler := slog.NewJSONHandler(writer, handlerOptions(level))
	return &SlogLogger{logger: slog.New(handler), exit: os.Exit}
}

// WithExit replaces the function Fatal calls after logging.
func (l *SlogLogger) WithExit(exit func(code int)) *SlogLogger {
	return &SlogLogger{logger: l.logger, exit: exit}
}

// Debug logs a debug message.
func (l *SlogLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

// Info logs an informational message.
func (l *SlogLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

// Warn logs a warning message.
func (l *SlogLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

// Error logs an error message.
func (l *SlogLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

// Fatal logs a fatal message and exits.
func (l *SlogLogger) Fatal(args ...interface{}) {
	l.logger.Log(context.Background(), LevelFatal, fmt.Sprint(args...))
	l.exit(1)
}

// Panic logs a panic message and panics.
func (l *SlogLogger) Panic(args ...interface{}) {
	msg := fmt.Sprint(args...)
	l.logger.Error(msg)
	panic(msg)
}
