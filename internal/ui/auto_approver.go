package ui

import (
	"context"

	"github.com/vvka-141/fsnav/pkg/fsnav"
)

// AutoApprover implements the Approver interface by approving every request
// without asking. It is the default: "rm" removes directories outright.
type AutoApprover struct {
	logger fsnav.Logger
}

// NewAutoApprover creates a new AutoApprover.
func NewAutoApprover(logger fsnav.Logger) fsnav.Approver {
	return &AutoApprover{logger: logger}
}

// RequestApproval approves immediately unless ctx is already done.
func (a *AutoApprover) RequestApproval(ctx context.Context, target string, containedItems int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if a.logger != nil {
		a.logger.Verbose("Auto-approved removal of %s (%d contained items)", target, containedItems)
	}
	return true, nil
}

// Verify AutoApprover implements the Approver interface at compile time
var _ fsnav.Approver = (*AutoApprover)(nil)
