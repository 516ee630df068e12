package filesystem

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// OSFileSystem implements FileSystemProvider for the OS filesystem
type OSFileSystem struct {
	aferoProvider
}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{aferoProvider{fs: afero.NewOsFs()}}
}

// Canonical resolves path to an absolute path with every symbolic link evaluated.
func (p *OSFileSystem) Canonical(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return filepath.EvalSymlinks(absPath)
}

var _ FileSystemProvider = (*OSFileSystem)(nil)
