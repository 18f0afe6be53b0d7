package shortcut

import (
	"github.com/arthur-debert/redate/pkg/types"
)

// Store reads and writes shortcut objects. The Windows shell-link format is
// provided by an external implementation; the symlink store below covers
// platforms where shortcuts are symbolic links.
type Store interface {
	// Resolve returns the target path stored in the shortcut at path
	Resolve(path string) (string, error)
	// Create writes a new shortcut at path pointing to target
	Create(path, target string) error
	// Remove deletes the shortcut at path
	Remove(path string) error
}

// SymlinkStore stores shortcuts as symbolic links
type SymlinkStore struct {
	fs types.FS
}

// NewSymlinkStore creates a store backed by filesystem links
func NewSymlinkStore(filesystem types.FS) *SymlinkStore {
	return &SymlinkStore{fs: filesystem}
}

// Resolve reads the link target
func (s *SymlinkStore) Resolve(path string) (string, error) {
	return s.fs.Readlink(path)
}

// Create creates a link at path
func (s *SymlinkStore) Create(path, target string) error {
	return s.fs.Symlink(target, path)
}

// Remove deletes the link itself, never its target
func (s *SymlinkStore) Remove(path string) error {
	return s.fs.Remove(path)
}

var _ Store = (*SymlinkStore)(nil)
