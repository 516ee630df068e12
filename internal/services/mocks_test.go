package services

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fsnav/internal/files/filesystem"
	"github.com/vvka-141/fsnav/internal/logging"
)

type mockApprover struct {
	approved bool
	err      error

	target         string
	containedItems int
	calls          int
}

func (m *mockApprover) RequestApproval(_ context.Context, target string, containedItems int) (bool, error) {
	m.calls++
	m.target = target
	m.containedItems = containedItems
	return m.approved, m.err
}

func fixedHome(path string) SessionOption {
	return WithHomeDir(func() (string, error) { return path, nil })
}

func noHome() SessionOption {
	return WithHomeDir(func() (string, error) { return "", errors.New("$HOME is not defined") })
}

func newMemorySession(t *testing.T, mfs *filesystem.MemoryFileSystem, start string, opts ...SessionOption) *Session {
	t.Helper()
	session, err := NewSession(mfs, logging.NewNullLogger(), start, opts...)
	require.NoError(t, err)
	return session
}

// busyFileSystem fails the first busyCalls removals and renames with EBUSY.
type busyFileSystem struct {
	*filesystem.MemoryFileSystem
	busyCalls int
	calls     int
}

func (b *busyFileSystem) busy(op, path string) error {
	b.calls++
	if b.calls <= b.busyCalls {
		return &os.PathError{Op: op, Path: path, Err: syscall.EBUSY}
	}
	return nil
}

func (b *busyFileSystem) Remove(path string) error {
	if err := b.busy("remove", path); err != nil {
		return err
	}
	return b.MemoryFileSystem.Remove(path)
}

func (b *busyFileSystem) Rename(oldPath, newPath string) error {
	if err := b.busy("rename", oldPath); err != nil {
		return err
	}
	return b.MemoryFileSystem.Rename(oldPath, newPath)
}
