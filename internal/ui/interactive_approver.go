package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/vvka-141/fsnav/pkg/fsnav"
)

// LineReader reads one line of user input after showing a prompt.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// InteractiveApprover implements the Approver interface by asking the user
// to confirm recursive removals on the shell's own input.
type InteractiveApprover struct {
	input LineReader
}

// NewInteractiveApprover creates a new InteractiveApprover.
func NewInteractiveApprover(input LineReader) fsnav.Approver {
	return &InteractiveApprover{input: input}
}

// RequestApproval asks "y/N" and approves only on an explicit yes.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, target string, containedItems int) (bool, error) {
	prompt := fmt.Sprintf("Delete directory '%s' and its %d contained items? [y/N]: ", target, containedItems)

	// The reader is shared with the shell, so the read stays on this
	// goroutine and a cancelled ctx is only honoured before prompting.
	if err := ctx.Err(); err != nil {
		return false, err
	}

	input, err := a.input.ReadLine(prompt)
	if err != nil {
		return false, fmt.Errorf("failed to read input: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ fsnav.Approver = (*InteractiveApprover)(nil)
