package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// MemoryFileSystem implements FileSystemProvider on an in-memory tree for testing.
// It has no symbolic links, so Canonical is a lexical clean of an existing path.
// Paths registered with Deny fail enumeration with fs.ErrPermission, which lets
// tests reproduce unreadable directories without touching real permissions.
type MemoryFileSystem struct {
	aferoProvider
	denied map[string]bool
}

// NewMemoryFileSystem creates an empty in-memory filesystem containing only "/".
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		aferoProvider: aferoProvider{fs: afero.NewMemMapFs()},
		denied:        make(map[string]bool),
	}
}

// AddDir creates a directory and its parents.
func (m *MemoryFileSystem) AddDir(path string) {
	if err := m.fs.MkdirAll(path, dirPerm); err != nil {
		panic(err)
	}
}

// AddFile writes a file, creating its parent directories.
func (m *MemoryFileSystem) AddFile(path string, content string) {
	m.AddDir(filepath.Dir(path))
	if err := afero.WriteFile(m.fs, path, []byte(content), filePerm); err != nil {
		panic(err)
	}
}

// Deny makes every later enumeration or enumerability check of path fail with a permission error.
func (m *MemoryFileSystem) Deny(path string) {
	m.denied[filepath.Clean(path)] = true
}

// Exists reports whether anything is present at path.
func (m *MemoryFileSystem) Exists(path string) bool {
	ok, err := afero.Exists(m.fs, path)
	return err == nil && ok
}

// ReadDir implements FileSystemProvider.ReadDir
func (m *MemoryFileSystem) ReadDir(path string) ([]FileInfo, error) {
	if m.denied[filepath.Clean(path)] {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
	}
	return m.aferoProvider.ReadDir(path)
}

// CheckEnumerable implements FileSystemProvider.CheckEnumerable
func (m *MemoryFileSystem) CheckEnumerable(path string) error {
	if m.denied[filepath.Clean(path)] {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
	}
	return m.aferoProvider.CheckEnumerable(path)
}

// Canonical implements FileSystemProvider.Canonical
func (m *MemoryFileSystem) Canonical(path string) (string, error) {
	absPath := filepath.Clean(path)
	if !filepath.IsAbs(absPath) {
		absPath = filepath.Join(string(filepath.Separator), absPath)
	}
	if _, err := m.fs.Stat(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
