// Package scanner finds date-prefixed entries under a root directory and
// splits them into renamable entries and shortcuts, deepest first.
package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/redate/pkg/datecodec"
	"github.com/arthur-debert/redate/pkg/errors"
	"github.com/arthur-debert/redate/pkg/logging"
	"github.com/arthur-debert/redate/pkg/types"
	"github.com/rs/zerolog"
)

const (
	// DefaultPattern matches names that start with DD.MM.YY and a space.
	// Day and month are only loosely bounded here; datecodec rejects the rest.
	DefaultPattern = "[0-3][0-9].[0-1][0-9].[0-9][0-9] *"

	// DefaultShortcutExt is the extension of Windows shell links
	DefaultShortcutExt = ".lnk"
)

// Options controls a single scan
type Options struct {
	// Pattern is a filepath.Match glob applied to entry names
	Pattern string
	// ShortcutExt routes matching entries to the shortcut list (case-insensitive)
	ShortcutExt string
	// Exclude holds name globs; matching entries are skipped and matching
	// directories are not descended
	Exclude []string
}

// DefaultOptions returns the stock pattern and shortcut extension
func DefaultOptions() Options {
	return Options{
		Pattern:     DefaultPattern,
		ShortcutExt: DefaultShortcutExt,
	}
}

func (o Options) withDefaults() Options {
	if o.Pattern == "" {
		o.Pattern = DefaultPattern
	}
	if o.ShortcutExt == "" {
		o.ShortcutExt = DefaultShortcutExt
	}
	return o
}

// Validate checks that every glob in the options is well formed
func (o Options) Validate() error {
	o = o.withDefaults()
	if _, err := filepath.Match(o.Pattern, ""); err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "invalid name pattern %q", o.Pattern)
	}
	for _, ex := range o.Exclude {
		if _, err := filepath.Match(ex, ""); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "invalid exclude pattern %q", ex)
		}
	}
	return nil
}

// Scanner walks directory trees. It never modifies the filesystem.
type Scanner struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a scanner over filesystem
func New(filesystem types.FS, logger zerolog.Logger) *Scanner {
	return &Scanner{
		fs:     filesystem,
		logger: logging.Component(logger, "scanner"),
	}
}

// Scan walks root recursively and returns every entry whose name matches
// the pattern. Both result lists are sorted deepest first. The root itself
// is never part of the result.
func (s *Scanner) Scan(root string, opts Options) (*types.ScanResult, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	root = filepath.Clean(root)
	logger := s.logger.With().Str("root", root).Str("pattern", opts.Pattern).Logger()
	done := logging.LogOperationStart(logger, "scan")
	defer done()

	info, err := s.fs.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirectoryNotFound, "directory %q not found", root).
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrDirectoryNotFound, "%q is not a directory", root).
			WithDetail("path", root)
	}

	result := &types.ScanResult{
		Root:      root,
		Files:     []types.Entry{},
		Shortcuts: []types.Entry{},
	}
	if err := s.walk(root, opts, result, logger); err != nil {
		return nil, err
	}

	types.SortDeepestFirst(result.Files)
	types.SortDeepestFirst(result.Shortcuts)

	logger.Info().
		Int("files", len(result.Files)).
		Int("shortcuts", len(result.Shortcuts)).
		Int("converted", result.Converted).
		Msg("Scan completed")

	return result, nil
}

func (s *Scanner) walk(dir string, opts Options, result *types.ScanResult, logger zerolog.Logger) error {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrScanAccess, "failed to read directory %q", dir).
			WithDetail("path", dir)
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if isExcluded(name, opts.Exclude) {
			logger.Trace().Str("path", path).Msg("Entry excluded")
			continue
		}

		isDir := entry.IsDir()
		isLink := entry.Type()&fs.ModeSymlink != 0

		if matched, _ := filepath.Match(opts.Pattern, name); matched {
			kind := classify(name, isDir, opts.ShortcutExt)
			scanned := types.Entry{Path: path, Kind: kind}
			if kind == types.KindShortcut {
				result.Shortcuts = append(result.Shortcuts, scanned)
			} else {
				result.Files = append(result.Files, scanned)
			}
			logger.Trace().Str("path", path).Stringer("kind", kind).Msg("Entry matched")
		} else if datecodec.IsConverted(name) {
			result.Converted++
		}

		if isDir && !isLink {
			if err := s.walk(path, opts, result, logger); err != nil {
				return err
			}
		}
	}

	return nil
}

func classify(name string, isDir bool, shortcutExt string) types.EntryKind {
	if strings.EqualFold(filepath.Ext(name), shortcutExt) {
		return types.KindShortcut
	}
	if isDir {
		return types.KindDirectory
	}
	return types.KindFile
}

func isExcluded(name string, patterns []string) bool {
	for _, p := range patterns {
		if matched, _ := filepath.Match(p, name); matched {
			return true
		}
	}
	return false
}
