package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchTerm string

var searchCmd = &cobra.Command{
	Use:   "search <directory>",
	Short: "Find entries whose name contains a term",
	Long: `Walks the directory tree and prints the absolute path of every entry
whose name contains the search term, ignoring case.

Examples:
  fsnav search . --term readme
  fsnav search /var/log -t .gz`,
	Args:              RequireDirectory,
	ValidArgsFunction: completeDirectories,
	RunE:              runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&searchTerm, "term", "t", "", "Case-insensitive substring to look for (required)")
	_ = searchCmd.MarkFlagRequired("term")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchTerm == "" {
		return fmt.Errorf("invalid argument: --term cannot be empty")
	}

	cfg, source, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	env, err := newEnvironment(cfg, ".", cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logSettings(env.logger, source)

	_, err = env.explorer.Search(args[0], searchTerm)
	return err
}
