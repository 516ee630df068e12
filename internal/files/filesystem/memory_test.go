package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_Basic(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("/test/project/root.txt", "hello")
	mfs.AddFile("/test/project/docs/readme.md", "# readme")

	infos, err := mfs.ReadDir("/test/project")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "docs", infos[0].Name())
	assert.True(t, infos[0].IsDir())
	assert.Equal(t, "root.txt", infos[1].Name())
	assert.False(t, infos[1].IsDir())
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("/test/project/root.txt", "hello")

	info, err := mfs.Stat("/test/project/root.txt")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, "root.txt", info.Name())

	info, err = mfs.Lstat("/test/project")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = mfs.Stat("/test/missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}

func TestMemoryFileSystem_Deny(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("/locked/secret.txt", "x")
	mfs.Deny("/locked/")

	_, err := mfs.ReadDir("/locked")
	assert.True(t, errors.Is(err, fs.ErrPermission), "got %v", err)
	assert.True(t, errors.Is(mfs.CheckEnumerable("/locked"), fs.ErrPermission))

	_, err = mfs.Stat("/locked")
	assert.NoError(t, err, "stat is still allowed")
}

func TestMemoryFileSystem_Canonical(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddDir("/home/u/projects")

	got, err := mfs.Canonical("/home/u/projects/../projects/.")
	require.NoError(t, err)
	assert.Equal(t, "/home/u/projects", got)

	_, err = mfs.Canonical("/home/u/nope")
	assert.Error(t, err)
}

func TestMemoryFileSystem_MutationsAndCount(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("/w/a/one.txt", "1")
	mfs.AddFile("/w/a/sub/two.txt", "2")

	count, err := mfs.CountTree("/w/a")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, mfs.CreateFile("/w/new.txt"))
	assert.True(t, mfs.Exists("/w/new.txt"))
	assert.True(t, errors.Is(mfs.CreateFile("/w/new.txt"), fs.ErrExist))

	require.NoError(t, mfs.Rename("/w/new.txt", "/w/renamed.txt"))
	assert.False(t, mfs.Exists("/w/new.txt"))
	assert.True(t, mfs.Exists("/w/renamed.txt"))

	require.NoError(t, mfs.Remove("/w/renamed.txt"))
	require.NoError(t, mfs.RemoveAll("/w/a"))
	assert.False(t, mfs.Exists("/w/a/sub/two.txt"))
	assert.True(t, mfs.Exists("/w"))
}

func TestMemoryFileSystem_CheckEnumerable_EmptyDirectory(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddDir("/empty")
	assert.NoError(t, mfs.CheckEnumerable("/empty"))
}
