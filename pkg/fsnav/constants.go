package fsnav

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
//
// The interactive shell always exits with ExitSuccess; the other codes are
// produced by one-shot subcommands.
const (
	ExitSuccess          = 0  // Command completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration
	ExitNotFound         = 11 // Path missing or not a directory
	ExitPermissionDenied = 12 // Operating system refused access
	ExitIOError          = 13 // Underlying filesystem failure
)

const (
	// DefaultPromptMaxWidth is the longest working directory shown verbatim in the prompt.
	// Longer paths are abbreviated to an ellipsis followed by their tail.
	DefaultPromptMaxWidth = 40

	// PromptEllipsis prefixes an abbreviated prompt path.
	PromptEllipsis = "..."

	// MinPromptMaxWidth is the smallest prompt width that still leaves room for a tail.
	MinPromptMaxWidth = len(PromptEllipsis) + 1

	// HomeDirSymbol is the shell shorthand for the user's home directory.
	HomeDirSymbol = "~"
)

// DefaultSkipPaths are reserved system paths excluded from every traversal.
// A path is skipped when it contains any of these strings verbatim.
var DefaultSkipPaths = []string{
	"$Recycle.Bin",
	"System Volume Information",
	"pagefile.sys",
	"hiberfil.sys",
	"swapfile.sys",
}
