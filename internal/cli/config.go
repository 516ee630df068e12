package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fsnav/internal/config"
	"github.com/vvka-141/fsnav/internal/tui"
	"github.com/vvka-141/fsnav/pkg/fsnav"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create fsnav.yaml configuration",
	Long: `Inspect the effective configuration or write a commented fsnav.yaml.

Configuration is looked up in this order:
  1. --config <path>
  2. ./fsnav.yaml
  3. <user config dir>/fsnav/fsnav.yaml

FSNAV_START_DIR, FSNAV_SKIP_PATHS, FSNAV_CONFIRM_DELETE and FSNAV_VERBOSE
(also read from .env) override the file; flags override both.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Write a commented fsnav.yaml",
	Long: `Writes a commented fsnav.yaml with the default settings.

When the file already exists, fsnav asks before replacing it in an
interactive terminal and refuses otherwise unless --force is given.

Examples:
  # Create config in current directory
  fsnav config init

  # Create config in the user config directory
  fsnav config init ~/.config/fsnav`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDirectories,
	RunE:              runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing fsnav.yaml without asking")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, source, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if source == "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "# No fsnav.yaml found, showing defaults")
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "# Loaded from %s\n", source)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}

	path, err := config.WriteTemplate(targetDir, configInitForce)
	if errors.Is(err, fsnav.ErrAlreadyExists) {
		if !tui.IsInteractive() {
			return fmt.Errorf("%s already exists (use --force to overwrite): %w", path, err)
		}
		reader := tui.NewPlainLineReader(cmd.InOrStdin(), cmd.ErrOrStderr())
		if !tui.Confirm(reader, fmt.Sprintf("Overwrite existing %s?", path), false) {
			fmt.Fprintln(cmd.ErrOrStderr(), tui.WarningStyle.Render("Cancelled."))
			return nil
		}
		path, err = config.WriteTemplate(targetDir, true)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s Configuration saved to %s\n", tui.SuccessStyle.Render(tui.SymbolCheck), path)
	return nil
}
