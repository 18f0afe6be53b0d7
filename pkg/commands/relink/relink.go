package relink

import (
	"github.com/arthur-debert/redate/pkg/commands/internal"
	"github.com/arthur-debert/redate/pkg/scanner"
	"github.com/arthur-debert/redate/pkg/shortcut"
	"github.com/arthur-debert/redate/pkg/types"
	"github.com/rs/zerolog"
)

// RelinkShortcutsOptions defines the options for the RelinkShortcuts command
type RelinkShortcutsOptions struct {
	Root   string
	FS     types.FS
	Logger zerolog.Logger
	Scan   scanner.Options
	DryRun bool
	Mode   shortcut.CommitMode
	// Store resolves and writes shortcuts, symlinks on FS by default
	Store shortcut.Store
}

// RelinkShortcuts scans Root and points every shortcut at the renamed
// location of its target. Files must already be renamed.
func RelinkShortcuts(opts RelinkShortcutsOptions) (*types.Batch, error) {
	log := opts.Logger.With().Str("command", "RelinkShortcuts").Logger()
	log.Debug().Str("root", opts.Root).Bool("dryRun", opts.DryRun).Msg("Executing command")

	fs := internal.Filesystem(opts.FS)
	result, err := internal.ScanRoot(fs, opts.Logger, opts.Root, opts.Scan)
	if err != nil {
		return nil, err
	}

	batch := NewRelinker(fs, opts.Store, opts.Logger, shortcut.Options{
		Mode:   opts.Mode,
		DryRun: opts.DryRun,
	}).RelinkAll(result.Shortcuts)

	log.Info().Str("batch", batch.ID).Int("failed", batch.Summary().Failed).Msg("Command finished")
	return batch, nil
}

// NewRelinker builds a relinker, falling back to a symlink store on fs
func NewRelinker(fs types.FS, store shortcut.Store, logger zerolog.Logger, opts shortcut.Options) *shortcut.Relinker {
	if store == nil {
		store = shortcut.NewSymlinkStore(fs)
	}
	return shortcut.New(fs, store, logger, opts)
}
