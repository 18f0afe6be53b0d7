package config

import (
	"strings"

	"github.com/arthur-debert/redate/pkg/display"
	"github.com/arthur-debert/redate/pkg/errors"
	"github.com/arthur-debert/redate/pkg/scanner"
	"github.com/arthur-debert/redate/pkg/shortcut"
)

// Config is the effective redate configuration
type Config struct {
	Scan      ScanConfig      `koanf:"scan" toml:"scan"`
	Shortcuts ShortcutsConfig `koanf:"shortcuts" toml:"shortcuts"`
	Logging   LoggingConfig   `koanf:"logging" toml:"logging"`
	Output    OutputConfig    `koanf:"output" toml:"output"`
}

// ScanConfig holds the entry filter
type ScanConfig struct {
	Pattern           string   `koanf:"pattern" toml:"pattern"`
	ShortcutExtension string   `koanf:"shortcut_extension" toml:"shortcut_extension"`
	Exclude           []string `koanf:"exclude" toml:"exclude"`
}

// ShortcutsConfig holds relink settings
type ShortcutsConfig struct {
	CommitMode string `koanf:"commit_mode" toml:"commit_mode"`
}

// LoggingConfig holds log file settings
type LoggingConfig struct {
	File string `koanf:"file" toml:"file"`
}

// OutputConfig holds report settings
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
}

// ScanOptions converts the scan section to scanner options
func (c *Config) ScanOptions() scanner.Options {
	return scanner.Options{
		Pattern:     c.Scan.Pattern,
		ShortcutExt: c.Scan.ShortcutExtension,
		Exclude:     append([]string(nil), c.Scan.Exclude...),
	}
}

// CommitMode returns the parsed shortcut commit mode
func (c *Config) CommitMode() shortcut.CommitMode {
	mode, err := shortcut.ParseCommitMode(c.Shortcuts.CommitMode)
	if err != nil {
		return shortcut.CommitReplace
	}
	return mode
}

// OutputFormat returns the parsed output format
func (c *Config) OutputFormat() display.Format {
	format, err := display.ParseFormat(c.Output.Format)
	if err != nil {
		return display.FormatAuto
	}
	return format
}

// Validate checks every value that would otherwise fail late
func (c *Config) Validate() error {
	if err := c.ScanOptions().Validate(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid scan configuration")
	}
	if c.Scan.Pattern == "" {
		return errors.New(errors.ErrConfigValid, "scan.pattern must not be empty")
	}
	if !strings.HasPrefix(c.Scan.ShortcutExtension, ".") || len(c.Scan.ShortcutExtension) < 2 {
		return errors.Newf(errors.ErrConfigValid, "scan.shortcut_extension %q must start with a dot", c.Scan.ShortcutExtension)
	}
	if _, err := shortcut.ParseCommitMode(c.Shortcuts.CommitMode); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid shortcuts.commit_mode")
	}
	if _, err := display.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.format")
	}
	return nil
}
