package filesystem

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// aferoProvider implements the primitives shared by every afero-backed provider.
// Only canonicalization differs between backends.
type aferoProvider struct {
	fs afero.Fs
}

func (p *aferoProvider) Stat(path string) (FileInfo, error) {
	return p.fs.Stat(path)
}

func (p *aferoProvider) Lstat(path string) (FileInfo, error) {
	if lstater, ok := p.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return p.fs.Stat(path)
}

func (p *aferoProvider) ReadDir(path string) ([]FileInfo, error) {
	dir, err := p.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	infos, err := dir.Readdir(-1)
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name() < infos[j].Name()
	})
	return infos, err
}

func (p *aferoProvider) CheckEnumerable(path string) error {
	dir, err := p.fs.Open(path)
	if err != nil {
		return err
	}
	defer dir.Close()

	if _, err := dir.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (p *aferoProvider) MkdirAll(path string) error {
	return p.fs.MkdirAll(path, dirPerm)
}

func (p *aferoProvider) CreateFile(path string) error {
	f, err := p.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return err
	}
	return f.Close()
}

func (p *aferoProvider) Remove(path string) error {
	return p.fs.Remove(path)
}

func (p *aferoProvider) RemoveAll(path string) error {
	return p.fs.RemoveAll(path)
}

func (p *aferoProvider) Rename(oldPath, newPath string) error {
	return p.fs.Rename(oldPath, newPath)
}

func (p *aferoProvider) CountTree(path string) (int, error) {
	if _, err := p.Lstat(path); err != nil {
		return 0, err
	}

	count := 0
	err := afero.Walk(p.fs, path, func(walkPath string, info os.FileInfo, err error) error {
		// Unreadable subtrees are still removed by RemoveAll; count what is visible
		if err != nil {
			return nil
		}
		if filepath.Clean(walkPath) != filepath.Clean(path) {
			count++
		}
		return nil
	})
	return count, err
}
