// Package logger provides the console logging used to report run progress.
//
// The logger writes per-file outcome notices and the final run summary. It
// is thread-safe, supports log level filtering, and colorizes output when
// writing to a terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/addnl/internal/prepend"
)

// Log level constants for filtering
const (
	levelDebug int = 0
	levelInfo  int = 1
	levelWarn  int = 2
	levelError int = 3
)

// ConsoleLogger logs run progress to a writer with thread safety.
// It supports log level filtering to control message verbosity.
// Color output is automatically enabled for terminal output (os.Stdout/os.Stderr).
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// logLevel determines the minimum log level for messages to be output.
// Valid levels: debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
// Returns true for os.Stdout and os.Stderr when they are TTYs.
// color.NoColor also honors the NO_COLOR environment variable.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if w == os.Stdout {
		return !color.NoColor && isatty.IsTerminal(os.Stdout.Fd())
	}
	if w == os.Stderr {
		return !color.NoColor && isatty.IsTerminal(os.Stderr.Fd())
	}
	return false
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if validLevels[normalized] {
		return normalized
	}
	return "info" // Default level
}

// shouldLog checks if a message at the given level should be logged.
// Returns true if messageLevel >= configured logLevel.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo // Default to info if unknown
	}
}

// timestamp returns the current time formatted as HH:MM:SS.
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// write emits an already-formatted line under the mutex.
func (cl *ConsoleLogger) write(line string) {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	fmt.Fprint(cl.writer, line)
}

// LogDebug logs a debug-level message.
// Format: "[HH:MM:SS] [DEBUG] <message>"
func (cl *ConsoleLogger) LogDebug(message string) {
	if cl.writer == nil || !cl.shouldLog("debug") {
		return
	}
	level := "DEBUG"
	if cl.colorOutput {
		level = color.New(color.FgCyan).Sprint(level)
	}
	cl.write(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message))
}

// LogWarn logs a warning-level message.
// Format: "[HH:MM:SS] [WARN] <message>"
func (cl *ConsoleLogger) LogWarn(message string) {
	if cl.writer == nil || !cl.shouldLog("warn") {
		return
	}
	level := "WARN"
	if cl.colorOutput {
		level = color.New(color.FgYellow).Sprint(level)
	}
	cl.write(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message))
}

// LogRunStart logs the directory a run is about to process at INFO level.
func (cl *ConsoleLogger) LogRunStart(dir string) {
	if cl.writer == nil || !cl.shouldLog("info") {
		return
	}
	cl.write(fmt.Sprintf("[%s] Processing directory: %s\n", timestamp(), dir))
}

// LogFileResult logs a single per-file outcome at INFO level.
// Processed files are green, non-text skips yellow, errors red.
func (cl *ConsoleLogger) LogFileResult(result prepend.FileResult, policy prepend.Policy) {
	if cl.writer == nil || !cl.shouldLog("info") {
		return
	}

	var line string
	switch result.Status {
	case prepend.StatusProcessed:
		line = fmt.Sprintf("Processed: %s [newline: %s]", result.Name, policy.Describe())
		if cl.colorOutput {
			line = color.New(color.FgGreen).Sprint(line)
		}
	case prepend.StatusNotText:
		line = fmt.Sprintf("Skipped non-text file: %s", result.Name)
		if cl.colorOutput {
			line = color.New(color.FgYellow).Sprint(line)
		}
	case prepend.StatusFailed:
		line = fmt.Sprintf("Error processing %s: %v", result.Name, result.Err)
		if cl.colorOutput {
			line = color.New(color.FgRed).Sprint(line)
		}
	}

	cl.write(fmt.Sprintf("[%s] %s\n", timestamp(), line))
}

// LogSummary logs the end-of-run summary: total processed count and the
// resolved newline mode.
func (cl *ConsoleLogger) LogSummary(summary *prepend.Summary) {
	if cl.writer == nil || !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	fmt.Fprintf(cl.writer, "\n")
	fmt.Fprintf(cl.writer, "Run complete. Processed %d file(s)\n", summary.Processed)
	if summary.NotText > 0 {
		fmt.Fprintf(cl.writer, "Skipped %d non-text file(s)\n", summary.NotText)
	}
	if summary.Failed > 0 {
		fmt.Fprintf(cl.writer, "Failed %d file(s)\n", summary.Failed)
	}
	fmt.Fprintf(cl.writer, "Newline mode: %s\n", summary.Policy.Describe())
}
