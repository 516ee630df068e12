// Package filesystem provides the filesystem abstraction used by every fsnav component.
//
// All reads and mutations go through FileSystemProvider so that traversal,
// session and management logic can be exercised against an in-memory tree
// in tests and against the real disk in production. Both implementations are
// backed by github.com/spf13/afero.
//
// Key interfaces:
//   - FileSystemProvider: stat, enumerate, check, mutate and canonicalize paths
//   - FileInfo: File metadata similar to os.FileInfo
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem (afero.OsFs)
//   - MemoryFileSystem: In-memory implementation for testing (afero.MemMapFs)
package filesystem
