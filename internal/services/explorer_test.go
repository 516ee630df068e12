package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fsnav/internal/files/filesystem"
	"github.com/vvka-141/fsnav/internal/files/policy"
	"github.com/vvka-141/fsnav/internal/files/walker"
	"github.com/vvka-141/fsnav/internal/logging"
	"github.com/vvka-141/fsnav/pkg/fsnav"
)

type explorerFixture struct {
	mfs      *filesystem.MemoryFileSystem
	explorer *Explorer
	out      *bytes.Buffer
	errOut   *bytes.Buffer
}

func newExplorerFixture(t *testing.T) *explorerFixture {
	t.Helper()
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("/data/docs/readme.md", "# docs")
	mfs.AddFile("/data/notes.txt", "x")
	mfs.AddFile("/data/pagefile.sys", "x")

	logger := logging.NewNullLogger()
	session := newMemorySession(t, mfs, "/data")
	w := walker.New(mfs, policy.Default(), logger)

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return &explorerFixture{
		mfs:      mfs,
		explorer: NewExplorer(session, w, out, errOut, logger),
		out:      out,
		errOut:   errOut,
	}
}

func TestExplorer_Display(t *testing.T) {
	f := newExplorerFixture(t)

	count, err := f.explorer.Display("/data")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	expected := "Displaying contents of: /data\n\n" +
		"\n[DIR] /data\n" +
		"  [DIR] docs\n" +
		"  [FILE] notes.txt\n" +
		"\n[DIR] /data/docs\n" +
		"  [FILE] readme.md\n" +
		"\nTotal items found: 3\n"
	assert.Equal(t, expected, f.out.String())
	assert.Empty(t, f.errOut.String())
}

func TestExplorer_Display_RelativeToSession(t *testing.T) {
	f := newExplorerFixture(t)

	count, err := f.explorer.Display("docs")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Contains(t, f.out.String(), "Displaying contents of: /data/docs\n")
}

func TestExplorer_Display_FileRoot(t *testing.T) {
	f := newExplorerFixture(t)

	count, err := f.explorer.Display("notes.txt")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	expected := "Displaying contents of: /data/notes.txt\n\n" +
		"[FILE] /data/notes.txt\n" +
		"\nTotal items found: 1\n"
	assert.Equal(t, expected, f.out.String())
}

func TestExplorer_Display_Missing(t *testing.T) {
	f := newExplorerFixture(t)

	_, err := f.explorer.Display("ghost")
	assert.ErrorIs(t, err, fsnav.ErrNotFound)
	assert.Empty(t, f.out.String())
}

func TestExplorer_Display_WarnsOnUnreadableDirectory(t *testing.T) {
	f := newExplorerFixture(t)
	f.mfs.AddFile("/data/vault/secret.txt", "x")
	f.mfs.Deny("/data/vault")

	count, err := f.explorer.Display("/data")
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	assert.Equal(t, "Warning: Some entries in /data/vault could not be accessed\n", f.errOut.String())
	assert.Contains(t, f.out.String(), "\n[DIR] /data/vault\n")
	assert.NotContains(t, f.out.String(), "secret.txt")
}

func TestExplorer_Search(t *testing.T) {
	f := newExplorerFixture(t)

	matches, err := f.explorer.Search("/data", "READ")
	require.NoError(t, err)
	assert.Equal(t, 1, matches)

	expected := "Searching for 'READ' in: /data\n" +
		"[FILE] /data/docs/readme.md\n" +
		"\nFound 1 matches for 'READ'\n"
	assert.Equal(t, expected, f.out.String())
}

func TestExplorer_Search_MatchesDirectoriesAndSkipsReserved(t *testing.T) {
	f := newExplorerFixture(t)

	matches, err := f.explorer.Search(".", "s")
	require.NoError(t, err)

	// docs, notes.txt; pagefile.sys is never visited
	assert.Equal(t, 2, matches)
	assert.Contains(t, f.out.String(), "[DIR] /data/docs\n")
	assert.Contains(t, f.out.String(), "[FILE] /data/notes.txt\n")
	assert.NotContains(t, f.out.String(), "pagefile.sys")
}

func TestExplorer_Search_NoMatches(t *testing.T) {
	f := newExplorerFixture(t)

	matches, err := f.explorer.Search("/data", "zzz")
	require.NoError(t, err)
	assert.Equal(t, 0, matches)
	assert.Contains(t, f.out.String(), "\nFound 0 matches for 'zzz'\n")
}

func TestExplorer_Search_Errors(t *testing.T) {
	f := newExplorerFixture(t)

	_, err := f.explorer.Search("/data", "")
	assert.ErrorIs(t, err, fsnav.ErrEmptySearchTerm)

	_, err = f.explorer.Search("/ghost", "x")
	assert.ErrorIs(t, err, fsnav.ErrNotFound)

	assert.Empty(t, f.out.String())
}
