// Package logger provides the leveled logger shared by the dispatch layer, the CLI and the tests.
package logger

// Logger defines the logging interface
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	// Fatal logs the message and terminates the process with exit code 1.
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
