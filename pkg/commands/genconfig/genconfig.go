package genconfig

import (
	"path/filepath"

	"github.com/arthur-debert/redate/pkg/commands/internal"
	"github.com/arthur-debert/redate/pkg/config"
	"github.com/arthur-debert/redate/pkg/errors"
	"github.com/arthur-debert/redate/pkg/types"
	"github.com/rs/zerolog"
)

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	// Config is rendered as TOML, the embedded defaults when nil
	Config *config.Config
	// Output is a file to write; empty only returns the content
	Output string
	// Force overwrites an existing Output file
	Force  bool
	FS     types.FS
	Logger zerolog.Logger
}

// GenConfigResult holds the generated content and the file written, if any
type GenConfigResult struct {
	Content string `json:"content"`
	Written string `json:"written,omitempty"`
}

// GenConfig renders the effective configuration and optionally writes it
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	log := opts.Logger.With().Str("command", "GenConfig").Logger()

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	content, err := config.GenerateConfigContent(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}

	result := &GenConfigResult{Content: content}
	if opts.Output == "" {
		log.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	fs := internal.Filesystem(opts.FS)
	if _, err := fs.Stat(opts.Output); err == nil && !opts.Force {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s already exists, use --force to overwrite", opts.Output).
			WithDetail("path", opts.Output)
	}
	if err := fs.MkdirAll(filepath.Dir(opts.Output), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to create directory for %s", opts.Output)
	}
	if err := fs.WriteFile(opts.Output, []byte(content), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to write config to %s", opts.Output)
	}

	log.Info().Str("path", opts.Output).Msg("Written config file")
	result.Written = opts.Output
	return result, nil
}
