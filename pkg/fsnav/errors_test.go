package fsnav_test

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/fsnav/pkg/fsnav"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, fsnav.ExitSuccess},
		{"unknown flag", errors.New("unknown flag --foo"), fsnav.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), fsnav.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), fsnav.ExitUsageError},
		{"required flag", errors.New("required flag \"term\" not set"), fsnav.ExitUsageError},
		{"general error", errors.New("something went wrong"), fsnav.ExitGeneralError},
		{"invalid config", fmt.Errorf("bad glob: %w", fsnav.ErrInvalidConfig), fsnav.ExitConfigError},
		{"not found", fsnav.NewPathError("display", "/x", fsnav.ErrNotFound, nil), fsnav.ExitNotFound},
		{"not a directory", fsnav.ErrNotADirectory, fsnav.ExitNotFound},
		{"permission", fsnav.ErrPermissionDenied, fsnav.ExitPermissionDenied},
		{"io", fsnav.WrapOSError("rm", "/x", errors.New("disk on fire")), fsnav.ExitIOError},
		{"empty term", fsnav.ErrEmptySearchTerm, fsnav.ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fsnav.ExitCodeForError(tt.err))
		})
	}
}

func TestClassifyOSError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"not exist", &fs.PathError{Op: "stat", Path: "/x", Err: fs.ErrNotExist}, fsnav.ErrNotFound},
		{"permission", &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrPermission}, fsnav.ErrPermissionDenied},
		{"exist", &fs.PathError{Op: "mkdir", Path: "/x", Err: fs.ErrExist}, fsnav.ErrAlreadyExists},
		{"other", errors.New("boom"), fsnav.ErrIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fsnav.ClassifyOSError(tt.err))
		})
	}
}

func TestClassifyOSError_RealFilesystem(t *testing.T) {
	_, err := os.Stat(t.TempDir() + "/missing")
	assert.Equal(t, fsnav.ErrNotFound, fsnav.ClassifyOSError(err))
}

func TestPathError_IsKindAndCause(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "/secret", Err: fs.ErrPermission}
	err := fsnav.WrapOSError("cd", "/secret", cause)

	assert.ErrorIs(t, err, fsnav.ErrPermissionDenied)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Contains(t, err.Error(), "cd '/secret'")

	var pathErr *fsnav.PathError
	assert.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "/secret", pathErr.Path)
}

func TestPathError_WithoutCause(t *testing.T) {
	err := fsnav.NewPathError("rm", "/home/u", fsnav.ErrDeleteCurrentDirectory, nil)
	assert.ErrorIs(t, err, fsnav.ErrDeleteCurrentDirectory)
	assert.Equal(t, "rm '/home/u': cannot delete the current working directory", err.Error())
}

func TestWrapOSError_Nil(t *testing.T) {
	assert.NoError(t, fsnav.WrapOSError("mkdir", "/x", nil))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, fsnav.ErrAlreadyExists, fsnav.KindOf(fsnav.NewPathError("mv", "/b", fsnav.ErrAlreadyExists, nil)))
	assert.Equal(t, fsnav.ErrEmptySearchTerm, fsnav.KindOf(fmt.Errorf("search: %w", fsnav.ErrEmptySearchTerm)))
	assert.Nil(t, fsnav.KindOf(errors.New("plain")))
}
