package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/redate/pkg/filesystem"
	"github.com/arthur-debert/redate/pkg/types"
	"github.com/stretchr/testify/require"
)

// Tree builds directory trees under Root. All paths passed to its methods
// are relative to Root and use forward slashes.
type Tree struct {
	t    *testing.T
	FS   types.FS
	Root string
}

// NewTree creates an in-memory tree rooted at root
func NewTree(t *testing.T, root string) *Tree {
	t.Helper()
	tree := &Tree{t: t, FS: NewTestFS(), Root: filepath.Clean(root)}
	require.NoError(t, tree.FS.MkdirAll(tree.Root, 0755))
	return tree
}

// NewOSTree creates a tree in a temporary directory on the real filesystem
func NewOSTree(t *testing.T) *Tree {
	t.Helper()
	tree := &Tree{t: t, FS: filesystem.NewOS(), Root: filepath.Join(t.TempDir(), "root")}
	require.NoError(t, tree.FS.MkdirAll(tree.Root, 0755))
	return tree
}

// Path returns the absolute path of rel
func (tr *Tree) Path(rel string) string {
	return filepath.Join(tr.Root, filepath.FromSlash(rel))
}

// Dir creates a directory and its parents
func (tr *Tree) Dir(rel string) string {
	tr.t.Helper()
	path := tr.Path(rel)
	require.NoError(tr.t, tr.FS.MkdirAll(path, 0755))
	return path
}

// File creates a file and its parent directories
func (tr *Tree) File(rel, content string) string {
	tr.t.Helper()
	path := tr.Path(rel)
	require.NoError(tr.t, tr.FS.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(tr.t, tr.FS.WriteFile(path, []byte(content), 0644))
	return path
}

// Shortcut creates a shortcut at rel pointing to the absolute target
func (tr *Tree) Shortcut(rel, target string) string {
	tr.t.Helper()
	path := tr.Path(rel)
	require.NoError(tr.t, tr.FS.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(tr.t, tr.FS.Symlink(target, path))
	return path
}

// Exists reports whether rel exists
func (tr *Tree) Exists(rel string) bool {
	_, err := tr.FS.Lstat(tr.Path(rel))
	return err == nil
}

// Target reads the target of the shortcut at rel
func (tr *Tree) Target(rel string) string {
	tr.t.Helper()
	target, err := tr.FS.Readlink(tr.Path(rel))
	require.NoError(tr.t, err)
	return target
}

// SampleTree builds the smallest tree that exercises both passes:
//
//	12.05.23 folder-0/12.05.23 file-0.txt
//	12.05.23 shortcuts/12.05.23 shortcut_to_file_0.lnk -> the file above
func (tr *Tree) SampleTree() *Tree {
	tr.t.Helper()
	file := tr.File("12.05.23 folder-0/12.05.23 file-0.txt", "file 0")
	tr.Shortcut("12.05.23 shortcuts/12.05.23 shortcut_to_file_0.lnk", file)
	return tr
}
