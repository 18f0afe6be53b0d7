// Package commands provides the high-level operations behind the CLI.
//
// Each command is implemented in its own subdirectory:
//   - scan/      - Scan lists dated entries
//   - rename/    - RenameFiles rewrites date prefixes
//   - relink/    - RelinkShortcuts repoints shortcuts
//   - run/       - Run does both passes from a single scan
//   - genconfig/ - GenConfig renders the configuration as TOML
//   - internal/  - shared setup
//
// Only an unusable root directory is returned as an error. Every per-entry
// problem is reported in the outcomes of the returned batches.
package commands

import (
	"github.com/arthur-debert/redate/pkg/commands/genconfig"
	"github.com/arthur-debert/redate/pkg/commands/relink"
	"github.com/arthur-debert/redate/pkg/commands/rename"
	"github.com/arthur-debert/redate/pkg/commands/run"
	"github.com/arthur-debert/redate/pkg/commands/scan"
	"github.com/arthur-debert/redate/pkg/types"
)

// Scan lists the dated entries under a directory.
type ScanOptions = scan.ScanOptions

func Scan(opts ScanOptions) (*types.ScanResult, error) {
	return scan.Scan(opts)
}

// RenameFiles converts the prefix of every dated file and directory.
type RenameOptions = rename.RenameFilesOptions

func RenameFiles(opts RenameOptions) (*types.Batch, error) {
	return rename.RenameFiles(opts)
}

// RelinkShortcuts repoints every dated shortcut at its renamed target.
type RelinkOptions = relink.RelinkShortcutsOptions

func RelinkShortcuts(opts RelinkOptions) (*types.Batch, error) {
	return relink.RelinkShortcuts(opts)
}

// Run renames, then relinks, from a single scan.
type RunOptions = run.RunOptions

func Run(opts RunOptions) (*types.RunResult, error) {
	return run.Run(opts)
}

// GenConfig renders the configuration as TOML.
type GenConfigOptions = genconfig.GenConfigOptions
type GenConfigResult = genconfig.GenConfigResult

func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
