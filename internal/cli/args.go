package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireDirectory validates that exactly one directory argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireDirectory(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <directory>

Usage: %s

Example:
  %s .`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
