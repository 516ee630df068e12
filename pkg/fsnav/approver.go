package fsnav

import "context"

// Approver handles confirmation before destructive operations,
// currently the recursive removal of a directory.
//
// Implementations:
//   - AutoApprover: approves without asking (default)
//   - InteractiveApprover: asks the user to confirm on the terminal
type Approver interface {
	// RequestApproval asks whether target, holding containedItems entries,
	// may be removed.
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred during the approval process
	RequestApproval(ctx context.Context, target string, containedItems int) (bool, error)
}
