package fsnav

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"syscall"
)

// Sentinel errors for the failure kinds an operation can report.
// Callers distinguish them with errors.Is().
//
// Example usage:
//
//	_, err := session.ChangeDirectory("nonexistent")
//	if errors.Is(err, fsnav.ErrNotFound) {
//	    // path does not exist
//	}
var (
	// ErrNotFound indicates the path does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotADirectory indicates a directory was required but the path is something else.
	ErrNotADirectory = errors.New("not a directory")

	// ErrAlreadyExists indicates the target path is already present.
	ErrAlreadyExists = errors.New("already exists")

	// ErrPermissionDenied indicates the operating system refused access.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIO indicates an underlying filesystem failure.
	ErrIO = errors.New("i/o error")

	// ErrDeleteCurrentDirectory indicates an attempt to delete the session's working directory.
	ErrDeleteCurrentDirectory = errors.New("cannot delete the current working directory")

	// ErrRenameCurrentDirectory indicates an attempt to rename the session's working directory.
	ErrRenameCurrentDirectory = errors.New("cannot rename the current working directory")

	// ErrNoHomeDirectory indicates the home directory could not be determined.
	ErrNoHomeDirectory = errors.New("could not determine home directory")

	// ErrEmptySearchTerm indicates a search was requested without a term.
	ErrEmptySearchTerm = errors.New("search term cannot be empty")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrApprovalDenied indicates the user declined a confirmation prompt.
	ErrApprovalDenied = errors.New("approval denied")
)

// PathError records a failed operation on a path together with its kind.
// errors.Is matches both the kind sentinel and the wrapped cause.
type PathError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

// NewPathError builds a PathError. err may be nil when the kind alone explains the failure.
func NewPathError(op, path string, kind, err error) *PathError {
	return &PathError{Op: op, Path: path, Kind: kind, Err: err}
}

func (e *PathError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s '%s': %v", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s '%s': %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *PathError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ClassifyOSError maps an error returned by a filesystem primitive onto one of
// the sentinel kinds. Unknown failures become ErrIO.
func ClassifyOSError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	case errors.Is(err, fs.ErrExist):
		return ErrAlreadyExists
	case errors.Is(err, syscall.ENOTDIR):
		return ErrNotADirectory
	}
	return ErrIO
}

// WrapOSError converts a primitive's error into a PathError with the classified kind.
func WrapOSError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewPathError(op, path, ClassifyOSError(err), err)
}

// KindOf returns the sentinel kind carried by err, or nil when err is not one of ours.
func KindOf(err error) error {
	for _, kind := range []error{
		ErrNotFound,
		ErrNotADirectory,
		ErrAlreadyExists,
		ErrPermissionDenied,
		ErrDeleteCurrentDirectory,
		ErrRenameCurrentDirectory,
		ErrNoHomeDirectory,
		ErrEmptySearchTerm,
		ErrInvalidConfig,
		ErrApprovalDenied,
		ErrIO,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNotADirectory):
		return ExitNotFound
	case errors.Is(err, ErrPermissionDenied):
		return ExitPermissionDenied
	case errors.Is(err, ErrIO):
		return ExitIOError
	case errors.Is(err, ErrEmptySearchTerm):
		return ExitUsageError
	}

	// Cobra reports argument and flag problems as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"missing required argument",
}
