package shell

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/fsnav/pkg/fsnav"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"not found", fsnav.NewPathError("cd", "/x", fsnav.ErrNotFound, fs.ErrNotExist), "Path '/x' does not exist"},
		{"not a directory", fsnav.NewPathError("cd", "/f", fsnav.ErrNotADirectory, nil), "Path '/f' is not a directory"},
		{"already exists", fsnav.NewPathError("mkdir", "/d", fsnav.ErrAlreadyExists, nil), "'/d' already exists"},
		{"permission", fsnav.NewPathError("cd", "/root", fsnav.ErrPermissionDenied, fs.ErrPermission), "Cannot access '/root': permission denied"},
		{"delete cwd", fsnav.NewPathError("rm", "/w", fsnav.ErrDeleteCurrentDirectory, nil), "Cannot delete the current working directory"},
		{"rename cwd", fsnav.NewPathError("mv", "/w", fsnav.ErrRenameCurrentDirectory, nil), "Cannot rename the current working directory"},
		{"no home", fsnav.NewPathError("cd", "~", fsnav.ErrNoHomeDirectory, nil), "Could not determine home directory"},
		{"empty term", fsnav.NewPathError("search", ".", fsnav.ErrEmptySearchTerm, nil), "Search term cannot be empty"},
		{"approval denied", fsnav.NewPathError("rm", "/w/old", fsnav.ErrApprovalDenied, nil), "Deletion of '/w/old' cancelled"},
		{"io with cause", fsnav.NewPathError("rm", "/w/old", fsnav.ErrIO, errors.New("device busy")), "rm '/w/old' failed: device busy"},
		{"usage", usageError("rm command requires a <path> argument"), "rm command requires a <path> argument"},
		{"plain", errors.New("something odd"), "something odd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, describe(tt.err))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		line     string
		expected []string
	}{
		{"cd docs", []string{"cd", "docs"}},
		{"  display   .  ", []string{"display", "."}},
		{`mv "my file.txt" 'new name.txt'`, []string{"mv", "my file.txt", "new name.txt"}},
		{`touch a\ b`, []string{"touch", "a b"}},
		{"", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			tokens, err := tokenize(tt.line)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestTokenize_Errors(t *testing.T) {
	for _, line := range []string{`cd "unterminated`, "rm a | b", "touch x > y"} {
		t.Run(line, func(t *testing.T) {
			_, err := tokenize(line)
			assert.Error(t, err)
		})
	}
}

func TestCommandNames(t *testing.T) {
	names := CommandNames()
	for _, cmd := range []string{"search", "display", "cd", "pwd", "mkdir", "touch", "rm", "mv", "help", "exit", "quit"} {
		assert.Contains(t, names, cmd)
		assert.Contains(t, HelpText, cmd)
	}
	assert.Equal(t, []string{"cd"}, DirectoryCommands())
}
