// Package walker implements the traversal engine behind display and search.
//
// The walk is an iterative depth-first traversal driven by an explicit stack
// of pending directories, so tree depth is bounded only by memory. Every
// directory popped from the stack is enumerated in one pass; each child that
// survives the skip policy is classified, handed to the visit callback and,
// when it is a directory, pushed for later expansion.
//
// Failures are isolated at the smallest possible scope:
//   - a missing or unreadable root is an error returned to the caller
//   - a directory that cannot be enumerated becomes a fsnav.Warning
//   - an entry that cannot be classified (a dangling symlink) is skipped
//
// Symbolic links to directories are followed, but every directory is expanded
// at most once per walk, keyed by its canonical path, so link cycles terminate.
package walker
