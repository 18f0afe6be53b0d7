package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

// DisableFile turns off the log file when used as Options.LogFile.
const DisableFile = "-"

// Options configures a logger created by New
type Options struct {
	// Verbosity maps -v flags to levels: 0 warn, 1 info, 2 debug, 3+ trace
	Verbosity int
	// Console receives human readable output, os.Stderr when nil
	Console io.Writer
	// LogFile receives JSON lines; empty means DefaultLogFile()
	LogFile string
	// NoColor disables ANSI colors on the console writer
	NoColor bool
}

// New builds the logger owned by the caller. It writes to the console and to
// a log file. The returned closer releases the log file and is always
// non-nil.
func New(opts Options) (zerolog.Logger, io.Closer) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}

	writers := []io.Writer{consoleWriter}
	var closer io.Closer = nopCloser{}

	logFile := opts.LogFile
	if logFile == "" {
		logFile = DefaultLogFile()
	}

	var fileErr error
	if logFile != DisableFile {
		var handle *os.File
		handle, fileErr = setupLogFile(logFile)
		if fileErr == nil {
			writers = append(writers, handle)
			closer = handle
		}
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).
		Level(LevelForVerbosity(opts.Verbosity)).
		With().Timestamp()
	if opts.Verbosity >= 2 {
		ctx = ctx.Caller()
	}
	logger := ctx.Logger()

	if fileErr != nil {
		logger.Warn().Err(fileErr).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}
	logger.Debug().Int("verbosity", opts.Verbosity).Str("logFile", logFile).Msg("Logger initialized")

	return logger, closer
}

// LevelForVerbosity converts a -v count to a zerolog level
func LevelForVerbosity(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Component returns a child logger tagged with the component name
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}

// WithBatch returns a child logger tagged with a batch id and operation
func WithBatch(logger zerolog.Logger, id, operation string) zerolog.Logger {
	return logger.With().Str("batch", id).Str("operation", operation).Logger()
}

// DefaultLogFile returns $XDG_STATE_HOME/redate/redate.log
func DefaultLogFile() string {
	return filepath.Join(xdg.StateHome, "redate", "redate.log")
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
