package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/fsnav/internal/config"
	"github.com/vvka-141/fsnav/internal/files/filesystem"
	"github.com/vvka-141/fsnav/internal/files/walker"
	"github.com/vvka-141/fsnav/internal/logging"
	"github.com/vvka-141/fsnav/internal/services"
	"github.com/vvka-141/fsnav/pkg/fsnav"
)

// globalFlags holds the flag values shared by every command.
type globalFlags struct {
	configPath    string
	verbose       bool
	startDir      string
	confirmDelete bool
}

var rootFlags globalFlags

// resolveSettings builds the effective configuration.
// Priority (highest to lowest): flags > environment (.env included) > fsnav.yaml > defaults.
// Returns the path of the configuration file used, empty when none was found.
func resolveSettings(cmd *cobra.Command) (*config.Config, string, error) {
	_ = godotenv.Load()

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to determine working directory: %w", err)
	}

	cfg, source, err := config.Resolve(rootFlags.configPath, workDir)
	if err != nil {
		return nil, "", err
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, "", err
	}

	if cmd.Flags().Changed("start-dir") {
		cfg.StartDir = rootFlags.startDir
	}
	if cmd.Flags().Changed("confirm-delete") {
		cfg.ConfirmDelete = rootFlags.confirmDelete
	}
	if rootFlags.verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, source, nil
}

// environment holds the components shared by the shell and the one-shot commands.
type environment struct {
	logger   *logging.ConsoleLogger
	fs       filesystem.FileSystemProvider
	session  *services.Session
	explorer *services.Explorer
}

// newEnvironment wires the filesystem, skip policy, walker, session and explorer.
// start overrides cfg.StartDir when not empty; one-shot commands pass "." so
// relative arguments resolve against the process working directory.
func newEnvironment(cfg *config.Config, start string, out, errOut io.Writer) (*environment, error) {
	logger := logging.NewConsoleLoggerTo(errOut, cfg.Verbose)

	pol, err := cfg.Policy()
	if err != nil {
		return nil, err
	}

	if start == "" {
		start = cfg.StartDir
	}

	fsProvider := filesystem.NewOSFileSystem()
	session, err := services.NewSession(fsProvider, logger, start)
	if err != nil {
		return nil, err
	}
	logger = logger.With("session", session.ID().String())

	w := walker.New(fsProvider, pol, logger)
	return &environment{
		logger:   logger,
		fs:       fsProvider,
		session:  session,
		explorer: services.NewExplorer(session, w, out, errOut, logger),
	}, nil
}

// logSettings reports where the configuration came from when verbose.
func logSettings(logger fsnav.Logger, source string) {
	if source == "" {
		logger.Verbose("No %s found, using defaults", config.ConfigFileName)
		return
	}
	logger.Verbose("Loaded configuration from %s", source)
}
