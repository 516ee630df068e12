package fsnav_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/fsnav/pkg/fsnav"
)

func TestEntryKind_Tag(t *testing.T) {
	assert.Equal(t, "[FILE]", fsnav.KindFile.Tag())
	assert.Equal(t, "[DIR]", fsnav.KindDirectory.Tag())
	assert.Equal(t, "directory", fsnav.KindDirectory.String())
	assert.Equal(t, "file", fsnav.KindFile.String())
}

func TestDirectoryEntry_IsDir(t *testing.T) {
	assert.True(t, fsnav.DirectoryEntry{Kind: fsnav.KindDirectory}.IsDir())
	assert.False(t, fsnav.DirectoryEntry{Kind: fsnav.KindFile}.IsDir())
}

func TestWarning_String(t *testing.T) {
	w := fsnav.Warning{Path: "/locked", Err: errors.New("permission denied")}
	assert.Equal(t, "/locked: permission denied", w.String())
}

func TestDefaultSkipPaths(t *testing.T) {
	assert.Contains(t, fsnav.DefaultSkipPaths, "$Recycle.Bin")
	assert.Contains(t, fsnav.DefaultSkipPaths, "System Volume Information")
	assert.Len(t, fsnav.DefaultSkipPaths, 5)
}
