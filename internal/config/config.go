package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fsnav/internal/files/policy"
	"github.com/vvka-141/fsnav/pkg/fsnav"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const (
	ConfigFileName = "fsnav.yaml"

	// ConfigDirName is the per-user directory under os.UserConfigDir.
	ConfigDirName = "fsnav"
)

// Environment variables that override file settings.
const (
	EnvStartDir      = "FSNAV_START_DIR"
	EnvSkipPaths     = "FSNAV_SKIP_PATHS"
	EnvConfirmDelete = "FSNAV_CONFIRM_DELETE"
	EnvVerbose       = "FSNAV_VERBOSE"
)

// Config is the effective configuration of a run.
type Config struct {
	// StartDir is the shell's initial working directory; empty means the process directory
	StartDir string `yaml:"start_dir"`

	// SkipPaths extends fsnav.DefaultSkipPaths with more reserved substrings
	SkipPaths []string `yaml:"skip_paths"`

	// SkipGlobs are doublestar patterns excluded from traversal
	SkipGlobs []string `yaml:"skip_globs"`

	PromptMaxWidth int  `yaml:"prompt_max_width"`
	ConfirmDelete  bool `yaml:"confirm_delete"`

	// Verbose is set from the environment or flags only.
	Verbose bool `yaml:"-"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		PromptMaxWidth: fsnav.DefaultPromptMaxWidth,
	}
}

// Load reads fsnav.yaml from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file. Keys absent from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", fsnav.ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// SearchPaths lists the files Resolve tries, in order, when no explicit
// path is given: workDir first, then the per-user config directory.
func SearchPaths(workDir string) []string {
	paths := []string{filepath.Join(workDir, ConfigFileName)}
	if userDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(userDir, ConfigDirName, ConfigFileName))
	}
	return paths
}

// Resolve finds and loads the configuration.
// An explicit path must exist; otherwise the first file found in
// SearchPaths(workDir) is used, falling back to Default().
//
// Returns:
//   - *Config: loaded configuration (never nil on success)
//   - string: path of the file used, empty when defaults apply
//   - error: read, parse or explicit-path-missing failure
func Resolve(explicit, workDir string) (*Config, string, error) {
	if explicit != "" {
		cfg, err := LoadFile(explicit)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load %s: %w", explicit, err)
		}
		return cfg, explicit, nil
	}

	for _, candidate := range SearchPaths(workDir) {
		cfg, err := LoadFile(candidate)
		if errors.Is(err, ErrConfigNotFound) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to load %s: %w", candidate, err)
		}
		return cfg, candidate, nil
	}
	return Default(), "", nil
}

// ApplyEnv overrides file settings from FSNAV_* environment variables.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvStartDir); ok && v != "" {
		c.StartDir = v
	}

	if v, ok := lookup(EnvSkipPaths); ok {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				c.SkipPaths = append(c.SkipPaths, part)
			}
		}
	}

	if v, ok := lookup(EnvConfirmDelete); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", fsnav.ErrInvalidConfig, EnvConfirmDelete, v)
		}
		c.ConfirmDelete = b
	}

	if v, ok := lookup(EnvVerbose); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", fsnav.ErrInvalidConfig, EnvVerbose, v)
		}
		c.Verbose = b
	}
	return nil
}

// Validate checks value ranges and glob syntax.
func (c *Config) Validate() error {
	if c.PromptMaxWidth < fsnav.MinPromptMaxWidth {
		return fmt.Errorf("%w: prompt_max_width must be at least %d, got %d",
			fsnav.ErrInvalidConfig, fsnav.MinPromptMaxWidth, c.PromptMaxWidth)
	}
	_, err := c.Policy()
	return err
}

// Policy builds the skip policy: the default reserved paths plus configured
// substrings and globs.
func (c *Config) Policy() (*policy.Policy, error) {
	substrings := make([]string, 0, len(fsnav.DefaultSkipPaths)+len(c.SkipPaths))
	substrings = append(substrings, fsnav.DefaultSkipPaths...)
	substrings = append(substrings, c.SkipPaths...)
	return policy.New(substrings, c.SkipGlobs)
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Template is the commented file written by "fsnav config init".
const Template = `# fsnav configuration
#
# Directory the shell starts in (default: the directory fsnav was launched from).
# start_dir: ~/projects

# Extra path substrings never listed or searched, in addition to the built-in
# system entries ($Recycle.Bin, System Volume Information, pagefile.sys, ...).
skip_paths: []

# Glob patterns (doublestar syntax) never listed or searched.
# Patterns without a slash match the entry name, e.g. "*.tmp".
skip_globs:
  - "**/.git"

# Working directories longer than this are abbreviated in the prompt.
prompt_max_width: 40

# Ask before "rm" removes a directory.
confirm_delete: false
`

// WriteTemplate writes Template to dir/fsnav.yaml and returns the file path.
// An existing file is only replaced when overwrite is true.
func WriteTemplate(dir string, overwrite bool) (string, error) {
	path := filepath.Join(dir, ConfigFileName)
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return path, fsnav.NewPathError("config init", path, fsnav.ErrAlreadyExists, nil)
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return path, fsnav.WrapOSError("config init", dir, err)
	}
	if err := os.WriteFile(path, []byte(Template), 0o644); err != nil {
		return path, fsnav.WrapOSError("config init", path, err)
	}
	return path, nil
}
