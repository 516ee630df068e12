package walker

import (
	"os"
	"path/filepath"

	"github.com/vvka-141/fsnav/internal/files/filesystem"
	"github.com/vvka-141/fsnav/internal/files/policy"
	"github.com/vvka-141/fsnav/pkg/fsnav"
)

// VisitFunc receives every entry the walk yields.
// Returning fsnav.Stop ends the walk without error.
type VisitFunc func(entry fsnav.DirectoryEntry) fsnav.VisitAction

// Option customizes a single Walk call.
type Option func(*walkOptions)

type walkOptions struct {
	onExpand  func(dir string)
	onWarning func(w fsnav.Warning)
}

// OnExpand registers a hook fired each time a directory is popped from the
// stack and about to be enumerated, including the root.
func OnExpand(fn func(dir string)) Option {
	return func(o *walkOptions) {
		o.onExpand = fn
	}
}

// OnWarning registers a hook fired as soon as a directory fails to enumerate.
// The warning is still recorded in the result.
func OnWarning(fn func(w fsnav.Warning)) Option {
	return func(o *walkOptions) {
		o.onWarning = fn
	}
}

// Walker traverses directory trees through a filesystem provider.
// Walker holds no per-walk state and is safe for concurrent use as long as
// the provider and logger are.
type Walker struct {
	fsProvider filesystem.FileSystemProvider
	policy     *policy.Policy
	logger     fsnav.Logger
}

// pending is a directory waiting on the stack. canonical is tracked so a
// directory reached again through a link is not expanded twice.
type pending struct {
	path      string
	canonical string
}

// New creates a walker.
// Panics if any dependency is nil.
func New(fsProvider filesystem.FileSystemProvider, pol *policy.Policy, logger fsnav.Logger) *Walker {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if pol == nil {
		panic("policy cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Walker{
		fsProvider: fsProvider,
		policy:     pol,
		logger:     logger,
	}
}

// Walk traverses root depth-first and calls visit for every reachable entry
// not excluded by the skip policy.
//
// Parameters:
//   - root: file or directory to traverse
//   - visit: callback for each entry
//   - opts: optional hooks
//
// Returns:
//   - fsnav.TraversalResult: number of entries visited and non-fatal warnings
//   - error: a *fsnav.PathError when root cannot be examined (ErrNotFound, ErrPermissionDenied, ErrIO)
func (w *Walker) Walk(root string, visit VisitFunc, opts ...Option) (fsnav.TraversalResult, error) {
	var o walkOptions
	for _, opt := range opts {
		opt(&o)
	}

	var result fsnav.TraversalResult

	info, err := w.Stat(root)
	if err != nil {
		return result, err
	}

	if !info.IsDir() {
		absPath, err := filepath.Abs(root)
		if err != nil {
			absPath = root
		}
		result.ItemsVisited = 1
		visit(fsnav.DirectoryEntry{Path: absPath, Name: filepath.Base(absPath), Kind: fsnav.KindFile})
		return result, nil
	}

	rootCanonical, err := w.fsProvider.Canonical(root)
	if err != nil {
		rootCanonical = filepath.Clean(root)
	}

	expanded := map[string]bool{rootCanonical: true}
	stack := []pending{{path: root, canonical: rootCanonical}}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if w.policy.ShouldSkip(current.path) {
			w.logger.Verbose("Skipping reserved path %s", current.path)
			continue
		}

		if o.onExpand != nil {
			o.onExpand(current.path)
		}

		children, err := w.fsProvider.ReadDir(current.path)
		if err != nil {
			warning := fsnav.Warning{Path: current.path, Err: err}
			result.Warnings = append(result.Warnings, warning)
			w.logger.Verbose("Enumeration of %s incomplete: %v", current.path, err)
			if o.onWarning != nil {
				o.onWarning(warning)
			}
		}

		for _, child := range children {
			childPath := filepath.Join(current.path, child.Name())
			if w.policy.ShouldSkip(childPath) {
				w.logger.Verbose("Skipping reserved path %s", childPath)
				continue
			}

			kind, canonical, ok := w.classify(current, childPath, child)
			if !ok {
				continue
			}

			result.ItemsVisited++
			entry := fsnav.DirectoryEntry{Path: childPath, Name: child.Name(), Kind: kind}
			if visit(entry) == fsnav.Stop {
				return result, nil
			}

			if kind != fsnav.KindDirectory {
				continue
			}
			if expanded[canonical] {
				w.logger.Verbose("Not descending into %s: %s already expanded", childPath, canonical)
				continue
			}
			expanded[canonical] = true
			stack = append(stack, pending{path: childPath, canonical: canonical})
		}
	}

	return result, nil
}

// Stat examines a traversal root, following links.
// Errors are *fsnav.PathError values carrying the classified kind.
func (w *Walker) Stat(root string) (filesystem.FileInfo, error) {
	info, err := w.fsProvider.Stat(root)
	if err != nil {
		return nil, fsnav.WrapOSError("traverse", root, err)
	}
	return info, nil
}

// classify determines an entry's kind, following symbolic links.
// ok is false when the entry cannot be classified and must be skipped.
func (w *Walker) classify(parent pending, childPath string, info filesystem.FileInfo) (kind fsnav.EntryKind, canonical string, ok bool) {
	if info.Mode()&os.ModeSymlink == 0 {
		if info.IsDir() {
			return fsnav.KindDirectory, filepath.Join(parent.canonical, info.Name()), true
		}
		return fsnav.KindFile, "", true
	}

	target, err := w.fsProvider.Stat(childPath)
	if err != nil {
		w.logger.Verbose("Skipping unresolvable link %s: %v", childPath, err)
		return 0, "", false
	}
	if !target.IsDir() {
		return fsnav.KindFile, "", true
	}

	canonical, err = w.fsProvider.Canonical(childPath)
	if err != nil {
		w.logger.Verbose("Skipping unresolvable link %s: %v", childPath, err)
		return 0, "", false
	}
	return fsnav.KindDirectory, canonical, true
}
