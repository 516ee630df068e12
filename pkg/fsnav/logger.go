package fsnav

// Logger provides a pluggable logging interface for fsnav operations.
// Implementations must be safe for concurrent use by multiple goroutines.
//
// Logger carries diagnostics only; the user-facing output of shell commands
// is written to the shell's own streams.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Warn logs recoverable problems such as unreadable directories.
	Warn(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}
