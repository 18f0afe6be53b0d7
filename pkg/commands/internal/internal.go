// Package internal holds the setup shared by the command implementations.
package internal

import (
	"github.com/arthur-debert/redate/pkg/errors"
	"github.com/arthur-debert/redate/pkg/filesystem"
	"github.com/arthur-debert/redate/pkg/scanner"
	"github.com/arthur-debert/redate/pkg/types"
	"github.com/rs/zerolog"
)

// Filesystem returns fs, or the OS filesystem when nil
func Filesystem(fs types.FS) types.FS {
	if fs == nil {
		return filesystem.NewOS()
	}
	return fs
}

// ScanRoot validates root and scans it. A missing or non-directory root is
// the only error that aborts a command.
func ScanRoot(fs types.FS, logger zerolog.Logger, root string, opts scanner.Options) (*types.ScanResult, error) {
	if root == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no directory given")
	}
	return scanner.New(fs, logger).Scan(root, opts)
}
