package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider is the set of filesystem primitives fsnav relies on.
// Errors are returned unclassified; callers map them with fsnav.ClassifyOSError.
type FileSystemProvider interface {
	// Stat returns file information, following symbolic links
	Stat(path string) (FileInfo, error)

	// Lstat returns file information without following a final symbolic link.
	// Providers without symlink support behave like Stat.
	Lstat(path string) (FileInfo, error)

	// ReadDir enumerates the immediate children of a directory, sorted by name.
	// Entries describe the children themselves (links are not followed).
	// On a mid-enumeration failure the entries read so far are returned
	// together with the error.
	ReadDir(path string) ([]FileInfo, error)

	// CheckEnumerable verifies a directory can be opened for enumeration without listing it
	CheckEnumerable(path string) error

	// MkdirAll creates a directory along with any necessary parents
	MkdirAll(path string) error

	// CreateFile creates an empty file, failing if anything already exists at path
	CreateFile(path string) error

	// Remove removes a file, symbolic link or empty directory
	Remove(path string) error

	// RemoveAll removes path and everything beneath it
	RemoveAll(path string) error

	// Rename renames (moves) oldPath to newPath with a single primitive call
	Rename(oldPath, newPath string) error

	// Canonical returns the unique absolute form of an existing path
	// with symbolic links and . / .. segments resolved
	Canonical(path string) (string, error)

	// CountTree returns the number of entries beneath path, excluding path itself.
	// Symbolic links are counted but not followed.
	CountTree(path string) (int, error)
}
