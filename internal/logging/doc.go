// Package logging provides concrete implementations of the fsnav.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: zerolog console output on stderr, debug level when verbose
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
// Diagnostics go to stderr and never replace the shell's user-facing output.
package logging
