package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/arthur-debert/redate/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS implements types.FS using afero. MemMapFs has no symbolic links, so
// links are stored as files holding their target and remembered in links.
type aferoFS struct {
	fs afero.Fs

	mu    sync.Mutex
	links map[string]bool
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs, links: make(map[string]bool)}
}

func (a *aferoFS) isLink(name string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.links[filepath.Clean(name)]
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := afero.ReadDir(a.fs, name)
	if err != nil {
		return nil, err
	}
	dirEntries := make([]fs.DirEntry, len(entries))
	for i, entry := range entries {
		var info fs.FileInfo = entry
		if a.isLink(filepath.Join(name, entry.Name())) {
			info = linkInfo{entry}
		}
		dirEntries[i] = fs.FileInfoToDirEntry(info)
	}
	return dirEntries, nil
}

func (a *aferoFS) Symlink(oldname, newname string) error {
	if _, err := a.fs.Stat(newname); err == nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: fs.ErrExist}
	}
	if err := afero.WriteFile(a.fs, newname, []byte(oldname), 0777); err != nil {
		return err
	}
	a.mu.Lock()
	a.links[filepath.Clean(newname)] = true
	a.mu.Unlock()
	return nil
}

// Readlink fails with fs.ErrInvalid for anything that was not created by
// Symlink, like os.Readlink on a regular file.
func (a *aferoFS) Readlink(name string) (string, error) {
	if _, err := a.fs.Stat(name); err != nil {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: err}
	}
	if !a.isLink(name) {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: fs.ErrInvalid}
	}
	content, err := afero.ReadFile(a.fs, name)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Rename moves links along with the entry, including links below a renamed
// directory.
func (a *aferoFS) Rename(oldpath, newpath string) error {
	if err := a.fs.Rename(oldpath, newpath); err != nil {
		return err
	}

	oldpath, newpath = filepath.Clean(oldpath), filepath.Clean(newpath)
	prefix := oldpath + string(filepath.Separator)

	a.mu.Lock()
	defer a.mu.Unlock()
	for link := range a.links {
		switch {
		case link == oldpath:
			delete(a.links, link)
			a.links[newpath] = true
		case strings.HasPrefix(link, prefix):
			delete(a.links, link)
			a.links[newpath+link[len(oldpath):]] = true
		}
	}
	return nil
}

func (a *aferoFS) Remove(name string) error {
	if err := a.fs.Remove(name); err != nil {
		return err
	}
	a.mu.Lock()
	delete(a.links, filepath.Clean(name))
	a.mu.Unlock()
	return nil
}

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	var info fs.FileInfo
	var err error
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err = lstater.LstatIfPossible(name)
	} else {
		info, err = a.fs.Stat(name)
	}
	if err != nil {
		return nil, err
	}
	if a.isLink(name) {
		return linkInfo{info}, nil
	}
	return info, nil
}

// linkInfo reports a stored link as a symbolic link
type linkInfo struct {
	fs.FileInfo
}

func (l linkInfo) Mode() fs.FileMode {
	return l.FileInfo.Mode().Perm() | fs.ModeSymlink
}
