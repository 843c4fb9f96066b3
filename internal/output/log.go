package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the package-wide logger instance.
var logger *log.Logger

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig controls logger behavior.
type LogConfig struct {
	// Verbose enables debug-level logging and caller reporting.
	Verbose bool

	// Timestamps controls timestamp reporting. Nil means default (true).
	// Verbose mode forces timestamps on regardless.
	Timestamps *bool
}

// BoolPtr returns a pointer to the given bool.
func BoolPtr(b bool) *bool {
	return &b
}

// SetLogWriter redirects the package-wide logger's output. Tests use
// it to capture log lines.
func SetLogWriter(w io.Writer) {
	logger.SetOutput(w)
}

// SetupLogging configures the package-wide logger.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
	})
}

// FileLogger returns a sub-logger prefixed with the given catalog file path.
// Commands that process multiple files use it to attribute log lines.
func FileLogger(path string) *log.Logger {
	return logger.WithPrefix(path)
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// Fatal logs a fatal message and exits.
func Fatal(msg string, keyvals ...interface{}) {
	logger.Fatal(msg, keyvals...)
}

// Details prints plain multi-line text to stderr. Structured error
// detail uses it to bypass the logger's line formatting.
func Details(msg string) {
	os.Stderr.WriteString(msg + "\n")
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	os.Stdout.WriteString(msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	os.Stdout.WriteString(msg + "\n")
}
