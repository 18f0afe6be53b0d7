package rename

import (
	"github.com/arthur-debert/redate/pkg/commands/internal"
	"github.com/arthur-debert/redate/pkg/renamer"
	"github.com/arthur-debert/redate/pkg/scanner"
	"github.com/arthur-debert/redate/pkg/types"
	"github.com/rs/zerolog"
)

// RenameFilesOptions defines the options for the RenameFiles command
type RenameFilesOptions struct {
	Root   string
	FS     types.FS
	Logger zerolog.Logger
	Scan   scanner.Options
	DryRun bool
}

// RenameFiles scans Root and rewrites the date prefix of every file and
// directory found. Shortcuts are left to RelinkShortcuts.
func RenameFiles(opts RenameFilesOptions) (*types.Batch, error) {
	log := opts.Logger.With().Str("command", "RenameFiles").Logger()
	log.Debug().Str("root", opts.Root).Bool("dryRun", opts.DryRun).Msg("Executing command")

	fs := internal.Filesystem(opts.FS)
	result, err := internal.ScanRoot(fs, opts.Logger, opts.Root, opts.Scan)
	if err != nil {
		return nil, err
	}

	batch := renamer.New(fs, opts.Logger, renamer.Options{DryRun: opts.DryRun}).RenameAll(result.Files)

	log.Info().Str("batch", batch.ID).Int("failed", batch.Summary().Failed).Msg("Command finished")
	return batch, nil
}
