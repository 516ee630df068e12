package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fsnav/internal/retry"
	"github.com/vvka-141/fsnav/internal/services"
	"github.com/vvka-141/fsnav/internal/shell"
	"github.com/vvka-141/fsnav/internal/tui"
	"github.com/vvka-141/fsnav/internal/tui/components"
	"github.com/vvka-141/fsnav/internal/ui"
	"github.com/vvka-141/fsnav/pkg/fsnav"
)

// defaultMutationRetries is how often rm and mv retry a busy file.
const defaultMutationRetries = 3

var rootCmd = &cobra.Command{
	Use:   "fsnav",
	Short: "Interactive filesystem shell",
	Long: `fsnav is a small interactive shell for exploring and managing files.

It keeps a working directory and understands a handful of commands:
display and search walk a directory tree, cd and pwd move around, and
mkdir, touch, rm and mv change the filesystem. Type 'help' inside the
shell for details.

Settings come from fsnav.yaml (see 'fsnav config init'), FSNAV_*
environment variables, a .env file and the flags below.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Path not found or not a directory
  12 - Permission denied
  13 - I/O error`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runShell,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout, os.Stderr)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFlags.configPath, "config", "c", "", "Path to fsnav.yaml (default: ./fsnav.yaml, then the user config directory)")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVarP(&rootFlags.startDir, "start-dir", "C", "", "Directory the shell starts in")
	rootCmd.PersistentFlags().BoolVar(&rootFlags.confirmDelete, "confirm-delete", false, "Ask before rm removes a directory")

	_ = rootCmd.RegisterFlagCompletionFunc("start-dir", completeDirectoryFlag)
	_ = rootCmd.RegisterFlagCompletionFunc("config", completeConfigFlag)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, source, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	env, err := newEnvironment(cfg, "", out, errOut)
	if err != nil {
		return err
	}
	logSettings(env.logger, source)

	mode := tui.DetectMode()
	reader := newLineReader(cmd.InOrStdin(), out, env, mode)
	if mode == tui.ModeInteractive {
		fmt.Fprint(errOut, tui.Banner())
	}

	var approver fsnav.Approver
	if cfg.ConfirmDelete {
		approver = ui.NewInteractiveApprover(reader)
	} else {
		approver = ui.NewAutoApprover(env.logger)
	}
	executor := retry.NewExecutor(retry.NewFilesystemErrorClassifier(), retry.NewBackoff(defaultMutationRetries))
	manager := services.NewManager(env.session, env.fs, approver, env.logger, services.WithRetry(executor))

	sh := shell.New(env.session, env.explorer, manager, reader, out, errOut, env.logger,
		shell.WithPromptWidth(cfg.PromptMaxWidth))
	return sh.Run(commandContext(cmd))
}

// newLineReader picks the line editor for terminals and plain line reads otherwise.
func newLineReader(in io.Reader, out io.Writer, env *environment, mode tui.Mode) tui.LineReader {
	if mode != tui.ModeInteractive {
		return tui.NewPlainLineReader(in, out)
	}

	paths := components.NewPathCompleter(env.fs, env.session.Cwd, false).WithHomeDir(os.UserHomeDir)
	dirs := components.NewPathCompleter(env.fs, env.session.Cwd, true).WithHomeDir(os.UserHomeDir)
	completer := components.NewLineCompleter(shell.CommandNames(), shell.DirectoryCommands(), paths, dirs)
	return tui.NewInteractiveLineReader(in, out, completer)
}

// commandContext returns the command's context, which is nil when RunE is
// called directly.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
