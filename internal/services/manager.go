package services

import (
	"context"
	"path/filepath"
	"time"

	"github.com/vvka-141/fsnav/internal/files/filesystem"
	"github.com/vvka-141/fsnav/internal/retry"
	"github.com/vvka-141/fsnav/pkg/fsnav"
)

// Manager implements the create, delete and rename commands.
// Every path is resolved against the session before use.
// Thread-Safety: safe for concurrent use as long as the injected dependencies are.
type Manager struct {
	session    *Session
	fsProvider filesystem.FileSystemProvider
	approver   fsnav.Approver
	logger     fsnav.Logger
	retry      *retry.Executor
}

// ManagerOption customizes a Manager.
type ManagerOption func(*Manager)

// WithRetry repeats removals and renames that fail with transient errors.
func WithRetry(executor *retry.Executor) ManagerOption {
	return func(m *Manager) {
		m.retry = executor
	}
}

// NewManager creates a Manager.
// Panics if any dependency is nil.
func NewManager(session *Session, fsProvider filesystem.FileSystemProvider, approver fsnav.Approver, logger fsnav.Logger, opts ...ManagerOption) *Manager {
	if session == nil {
		panic("session cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if approver == nil {
		panic("approver cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	m := &Manager{
		session:    session,
		fsProvider: fsProvider,
		approver:   approver,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create makes an empty file or a directory at path and returns the resolved path.
// Missing parent directories are created in both cases.
//
// Returns a *fsnav.PathError with kind ErrAlreadyExists when anything is
// already at path, or the classified kind of the underlying failure.
func (m *Manager) Create(path string, asDirectory bool) (string, error) {
	target := m.session.Resolve(path)

	op := "touch"
	if asDirectory {
		op = "mkdir"
	}

	if _, err := m.fsProvider.Lstat(target); err == nil {
		return "", fsnav.NewPathError(op, target, fsnav.ErrAlreadyExists, nil)
	}

	if asDirectory {
		if err := m.fsProvider.MkdirAll(target); err != nil {
			return "", ioError(op, target, err)
		}
		m.logger.Verbose("Created directory %s", target)
		return target, nil
	}

	if err := m.fsProvider.MkdirAll(filepath.Dir(target)); err != nil {
		return "", ioError(op, target, err)
	}
	if err := m.fsProvider.CreateFile(target); err != nil {
		return "", ioError(op, target, err)
	}
	m.logger.Verbose("Created file %s", target)
	return target, nil
}

// Delete removes path: a directory with everything beneath it, anything else
// singly. Removing a directory first asks the approver.
//
// Returns a *fsnav.PathError with kind:
//   - ErrNotFound: nothing at path
//   - ErrDeleteCurrentDirectory: path, or the symlink target it names, is the working directory or one of its ancestors
//   - ErrApprovalDenied: the approver declined
//   - ErrPermissionDenied / ErrIO: the removal failed
func (m *Manager) Delete(ctx context.Context, path string) (fsnav.DeleteResult, error) {
	target := m.session.Resolve(path)

	info, err := m.fsProvider.Lstat(target)
	if err != nil {
		return fsnav.DeleteResult{}, fsnav.WrapOSError("rm", target, err)
	}

	if m.guardsCwd(target) {
		return fsnav.DeleteResult{}, fsnav.NewPathError("rm", target, fsnav.ErrDeleteCurrentDirectory, nil)
	}

	if info.IsDir() {
		contained, err := m.fsProvider.CountTree(target)
		if err != nil {
			m.logger.Verbose("Could not count entries under %s: %v", target, err)
		}

		approved, err := m.approver.RequestApproval(ctx, target, contained)
		if err != nil {
			return fsnav.DeleteResult{}, fsnav.NewPathError("rm", target, fsnav.ErrApprovalDenied, err)
		}
		if !approved {
			return fsnav.DeleteResult{}, fsnav.NewPathError("rm", target, fsnav.ErrApprovalDenied, nil)
		}

		if err := m.mutate(ctx, func() error { return m.fsProvider.RemoveAll(target) }); err != nil {
			return fsnav.DeleteResult{}, ioError("rm", target, err)
		}
		m.logger.Verbose("Removed directory %s with %d contained items", target, contained)
		return fsnav.DeleteResult{Path: target, IsDir: true, ContainedItems: contained}, nil
	}

	if err := m.mutate(ctx, func() error { return m.fsProvider.Remove(target) }); err != nil {
		return fsnav.DeleteResult{}, ioError("rm", target, err)
	}
	m.logger.Verbose("Removed %s", target)
	return fsnav.DeleteResult{Path: target}, nil
}

// Rename moves oldPath to newPath with a single rename call, creating the
// destination's parent directories first.
//
// Returns a *fsnav.PathError with kind:
//   - ErrNotFound: nothing at oldPath
//   - ErrAlreadyExists: something is already at newPath (checked before the working-directory guard)
//   - ErrRenameCurrentDirectory: oldPath, or the symlink target it names, is the working directory or one of its ancestors
//   - ErrPermissionDenied / ErrIO: the rename failed
func (m *Manager) Rename(ctx context.Context, oldPath, newPath string) (fsnav.RenameResult, error) {
	from := m.session.Resolve(oldPath)
	to := m.session.Resolve(newPath)

	if _, err := m.fsProvider.Lstat(from); err != nil {
		return fsnav.RenameResult{}, fsnav.WrapOSError("mv", from, err)
	}
	if _, err := m.fsProvider.Lstat(to); err == nil {
		return fsnav.RenameResult{}, fsnav.NewPathError("mv", to, fsnav.ErrAlreadyExists, nil)
	}

	if m.guardsCwd(from) {
		return fsnav.RenameResult{}, fsnav.NewPathError("mv", from, fsnav.ErrRenameCurrentDirectory, nil)
	}

	if err := m.fsProvider.MkdirAll(filepath.Dir(to)); err != nil {
		return fsnav.RenameResult{}, ioError("mv", to, err)
	}
	if err := m.mutate(ctx, func() error { return m.fsProvider.Rename(from, to) }); err != nil {
		return fsnav.RenameResult{}, ioError("mv", from, err)
	}

	m.logger.Verbose("Renamed %s to %s", from, to)
	return fsnav.RenameResult{From: from, To: to}, nil
}

// guardsCwd reports whether path, after resolving symlinks, is the working
// directory or one of its ancestors. A dangling symlink resolves nowhere and
// is never guarded.
func (m *Manager) guardsCwd(path string) bool {
	canonical, err := m.fsProvider.Canonical(path)
	if err != nil {
		return false
	}
	return m.session.ContainsCwd(canonical)
}

// mutate runs a removal or rename, through the retry executor when one is set.
func (m *Manager) mutate(ctx context.Context, op func() error) error {
	if m.retry == nil {
		return op()
	}
	return m.retry.WithOnRetry(func(attempt int, err error, delay time.Duration) {
		m.logger.Verbose("Retrying after %v (attempt %d): %v", delay, attempt+1, err)
	}).Execute(ctx, func(context.Context) error { return op() })
}

// ioError reports a failed mutation. Permission problems keep their own kind;
// everything else is an I/O error regardless of what the OS called it.
func ioError(op, path string, err error) error {
	kind := fsnav.ErrIO
	if fsnav.ClassifyOSError(err) == fsnav.ErrPermissionDenied {
		kind = fsnav.ErrPermissionDenied
	}
	return fsnav.NewPathError(op, path, kind, err)
}
