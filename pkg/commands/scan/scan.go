package scan

import (
	"github.com/arthur-debert/redate/pkg/commands/internal"
	"github.com/arthur-debert/redate/pkg/scanner"
	"github.com/arthur-debert/redate/pkg/types"
	"github.com/rs/zerolog"
)

// ScanOptions defines the options for the Scan command
type ScanOptions struct {
	// Root is the directory to scan
	Root string
	// FS defaults to the OS filesystem
	FS     types.FS
	Logger zerolog.Logger
	Scan   scanner.Options
}

// Scan lists the entries under Root without touching them
func Scan(opts ScanOptions) (*types.ScanResult, error) {
	log := opts.Logger.With().Str("command", "Scan").Logger()
	log.Debug().Str("root", opts.Root).Msg("Executing command")

	result, err := internal.ScanRoot(internal.Filesystem(opts.FS), opts.Logger, opts.Root, opts.Scan)
	if err != nil {
		return nil, err
	}

	log.Info().Int("entries", result.Total()).Msg("Command finished")
	return result, nil
}
