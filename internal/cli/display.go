package cli

import (
	"github.com/spf13/cobra"
)

var displayCmd = &cobra.Command{
	Use:   "display <directory>",
	Short: "List everything under a directory",
	Long: `Walks the directory tree depth-first and prints each entry tagged
[DIR] or [FILE], followed by the number of items found.

Entries matching the skip policy (built-in system entries plus skip_paths
and skip_globs from fsnav.yaml) are left out. Unreadable directories are
reported as warnings and the walk continues.

Examples:
  fsnav display .
  fsnav display ~/projects --verbose`,
	Args:              RequireDirectory,
	ValidArgsFunction: completeDirectories,
	RunE:              runDisplay,
}

func init() {
	rootCmd.AddCommand(displayCmd)
}

func runDisplay(cmd *cobra.Command, args []string) error {
	cfg, source, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	env, err := newEnvironment(cfg, ".", cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logSettings(env.logger, source)

	_, err = env.explorer.Display(args[0])
	return err
}
