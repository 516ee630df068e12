package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ConsoleLogger writes leveled diagnostics through zerolog's console writer.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	zlog    zerolog.Logger
	verbose bool
}

// NewConsoleLogger creates a ConsoleLogger on stderr.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerTo(os.Stderr, verbose)
}

// NewConsoleLoggerTo creates a ConsoleLogger writing to w without colors.
func NewConsoleLoggerTo(w io.Writer, verbose bool) *ConsoleLogger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    w != os.Stderr,
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return &ConsoleLogger{
		zlog:    zerolog.New(output).Level(level).With().Timestamp().Logger(),
		verbose: verbose,
	}
}

// With returns a child logger that adds key=value to every message.
func (l *ConsoleLogger) With(key, value string) *ConsoleLogger {
	return &ConsoleLogger{
		zlog:    l.zlog.With().Str(key, value).Logger(),
		verbose: l.verbose,
	}
}

// IsVerbose reports whether Verbose() produces output.
func (l *ConsoleLogger) IsVerbose() bool {
	return l.verbose
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	emit(l.zlog.Debug(), format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	emit(l.zlog.Info(), format, args)
}

// Warn logs recoverable problems.
func (l *ConsoleLogger) Warn(format string, args ...interface{}) {
	emit(l.zlog.Warn(), format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	emit(l.zlog.Error(), format, args)
}

// emit treats format literally when there are no args, so paths containing
// '%' are never mangled.
func emit(event *zerolog.Event, format string, args []interface{}) {
	if len(args) == 0 {
		event.Msg(format)
		return
	}
	event.Msgf(format, args...)
}
