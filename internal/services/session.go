package services

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/vvka-141/fsnav/internal/files/filesystem"
	"github.com/vvka-141/fsnav/pkg/fsnav"
)

// HomeDirFunc returns the user's home directory.
type HomeDirFunc func() (string, error)

// SessionOption customizes a Session at construction.
type SessionOption func(*Session)

// WithHomeDir replaces os.UserHomeDir as the source of "~".
func WithHomeDir(fn HomeDirFunc) SessionOption {
	return func(s *Session) {
		s.homeDir = fn
	}
}

// Session holds the shell's current working directory.
//
// The working directory is always an existing, enumerable, canonical
// directory: it is only replaced by ChangeDirectory after the candidate
// has been validated. Session is safe for concurrent use.
type Session struct {
	id         uuid.UUID
	fsProvider filesystem.FileSystemProvider
	logger     fsnav.Logger
	homeDir    HomeDirFunc

	mu  sync.RWMutex
	cwd string
}

// NewSession creates a session positioned at start.
// An empty start means the process working directory.
//
// Panics if fsProvider or logger is nil.
func NewSession(fsProvider filesystem.FileSystemProvider, logger fsnav.Logger, start string, opts ...SessionOption) (*Session, error) {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	s := &Session{
		id:         uuid.New(),
		fsProvider: fsProvider,
		logger:     logger,
		homeDir:    os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(s)
	}

	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fsnav.WrapOSError("start", ".", err)
		}
		start = wd
	} else if expanded, ok := s.expandHome(start); ok {
		start = expanded
	}

	if !filepath.IsAbs(start) {
		absStart, err := filepath.Abs(start)
		if err != nil {
			return nil, fsnav.WrapOSError("start", start, err)
		}
		start = absStart
	}

	canonical, err := s.validateDirectory("start", start)
	if err != nil {
		return nil, err
	}
	s.cwd = canonical

	logger.Verbose("Session %s started in %s", s.id, canonical)
	return s, nil
}

// ID identifies the session in diagnostics.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Cwd returns the current working directory.
func (s *Session) Cwd() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cwd
}

// Resolve turns user input into an absolute path without touching the filesystem.
// Absolute input is cleaned, "~" and "~/..." expand to the home directory and
// anything else is joined onto the working directory. When the home directory
// is unknown, "~" is treated as an ordinary relative name.
func (s *Session) Resolve(input string) string {
	if expanded, ok := s.expandHome(input); ok {
		return expanded
	}
	if filepath.IsAbs(input) {
		return filepath.Clean(input)
	}
	return filepath.Join(s.Cwd(), input)
}

// ChangeDirectory moves the session to input and returns the new directory.
//
// ".." moves to the parent (staying put at the filesystem root), "." is a
// no-op, "~" or empty input moves to the home directory. The working
// directory is left untouched on any failure.
//
// Returns a *fsnav.PathError with kind:
//   - ErrNoHomeDirectory: "~" requested and the home directory is unknown
//   - ErrNotFound: the target does not exist
//   - ErrNotADirectory: the target is not a directory
//   - ErrPermissionDenied / ErrIO: the target cannot be enumerated
func (s *Session) ChangeDirectory(input string) (string, error) {
	cwd := s.Cwd()

	var candidate string
	switch input {
	case ".":
		return cwd, nil
	case "..":
		candidate = filepath.Dir(cwd)
	case "", fsnav.HomeDirSymbol:
		home, err := s.homeDir()
		if err != nil || home == "" {
			return "", fsnav.NewPathError("cd", fsnav.HomeDirSymbol, fsnav.ErrNoHomeDirectory, err)
		}
		candidate = home
	default:
		candidate = s.Resolve(input)
	}

	canonical, err := s.validateDirectory("cd", candidate)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.cwd = canonical
	s.mu.Unlock()

	s.logger.Verbose("Session %s changed directory to %s", s.id, canonical)
	return canonical, nil
}

// ContainsCwd reports whether canonicalPath is the working directory or one of
// its ancestors, i.e. whether removing or moving it would pull the working
// directory out from under the session.
func (s *Session) ContainsCwd(canonicalPath string) bool {
	cwd := s.Cwd()
	if canonicalPath == cwd {
		return true
	}
	rel, err := filepath.Rel(canonicalPath, cwd)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

// validateDirectory checks that path exists, is a directory and can be
// enumerated, and returns its canonical form.
func (s *Session) validateDirectory(op, path string) (string, error) {
	info, err := s.fsProvider.Stat(path)
	if err != nil {
		return "", fsnav.WrapOSError(op, path, err)
	}
	if !info.IsDir() {
		return "", fsnav.NewPathError(op, path, fsnav.ErrNotADirectory, nil)
	}
	if err := s.fsProvider.CheckEnumerable(path); err != nil {
		return "", fsnav.WrapOSError(op, path, err)
	}

	canonical, err := s.fsProvider.Canonical(path)
	if err != nil {
		return "", fsnav.WrapOSError(op, path, err)
	}
	return canonical, nil
}

func (s *Session) expandHome(input string) (string, bool) {
	if input != fsnav.HomeDirSymbol && !strings.HasPrefix(input, fsnav.HomeDirSymbol+"/") &&
		!strings.HasPrefix(input, fsnav.HomeDirSymbol+string(filepath.Separator)) {
		return "", false
	}
	home, err := s.homeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, input[len(fsnav.HomeDirSymbol):]), true
}
