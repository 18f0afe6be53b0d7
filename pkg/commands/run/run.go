package run

import (
	"github.com/arthur-debert/redate/pkg/commands/internal"
	"github.com/arthur-debert/redate/pkg/commands/relink"
	"github.com/arthur-debert/redate/pkg/renamer"
	"github.com/arthur-debert/redate/pkg/scanner"
	"github.com/arthur-debert/redate/pkg/shortcut"
	"github.com/arthur-debert/redate/pkg/types"
	"github.com/rs/zerolog"
)

// RunOptions defines the options for the Run command
type RunOptions struct {
	Root   string
	FS     types.FS
	Logger zerolog.Logger
	Scan   scanner.Options
	DryRun bool
	Mode   shortcut.CommitMode
	Store  shortcut.Store
}

// Run scans Root once, renames files and directories, then relinks the
// shortcuts. Shortcuts that lived in renamed directories are looked up at
// their new location.
func Run(opts RunOptions) (*types.RunResult, error) {
	log := opts.Logger.With().Str("command", "Run").Logger()
	log.Debug().Str("root", opts.Root).Bool("dryRun", opts.DryRun).Msg("Executing command")

	fs := internal.Filesystem(opts.FS)
	result, err := internal.ScanRoot(fs, opts.Logger, opts.Root, opts.Scan)
	if err != nil {
		return nil, err
	}

	renames := renamer.New(fs, opts.Logger, renamer.Options{DryRun: opts.DryRun}).RenameAll(result.Files)
	moved := renames.Renames()

	relinkOpts := shortcut.Options{Mode: opts.Mode, DryRun: opts.DryRun}
	shortcuts := result.Shortcuts
	if opts.DryRun {
		// Nothing moved: shortcuts stay where they are, but their targets may
		// live in directories the renames would have created.
		relinkOpts.Planned = plannedDirectories(renames, moved)
	} else {
		shortcuts = remapEntries(result.Shortcuts, moved)
	}

	relinks := relink.NewRelinker(fs, opts.Store, opts.Logger, relinkOpts).RelinkAll(shortcuts)

	log.Info().
		Str("renameBatch", renames.ID).
		Str("relinkBatch", relinks.ID).
		Int("renameFailed", renames.Summary().Failed).
		Int("relinkFailed", relinks.Summary().Failed).
		Msg("Command finished")

	return &types.RunResult{Scan: result, Renames: renames, Relinks: relinks}, nil
}

func remapEntries(entries []types.Entry, moved map[string]string) []types.Entry {
	out := make([]types.Entry, len(entries))
	for i, e := range entries {
		out[i] = types.Entry{Path: types.RemapPath(e.Path, moved), Kind: e.Kind}
	}
	return out
}

func plannedDirectories(batch *types.Batch, moved map[string]string) []string {
	var dirs []string
	for _, o := range batch.Outcomes {
		if o.Kind == types.KindDirectory && o.Err == nil && o.NewPath != "" {
			dirs = append(dirs, types.RemapPath(o.Path, moved))
		}
	}
	return dirs
}
