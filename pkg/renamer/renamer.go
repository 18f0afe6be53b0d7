// Package renamer rewrites the date prefix of scanned entries in place.
//
// A batch is best effort: every entry is attempted in the order given, a
// failure is recorded on its outcome and the batch moves on. Callers must
// pass entries deepest first (the scanner's order) so that renaming a
// directory never invalidates a path that is still pending.
package renamer

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/redate/pkg/datecodec"
	"github.com/arthur-debert/redate/pkg/errors"
	"github.com/arthur-debert/redate/pkg/logging"
	"github.com/arthur-debert/redate/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options controls a rename batch
type Options struct {
	// DryRun validates every entry without renaming anything
	DryRun bool
}

// Engine renames entries on a filesystem
type Engine struct {
	fs     types.FS
	logger zerolog.Logger
	opts   Options
}

// New creates a rename engine
func New(filesystem types.FS, logger zerolog.Logger, opts Options) *Engine {
	return &Engine{
		fs:     filesystem,
		logger: logging.Component(logger, "renamer"),
		opts:   opts,
	}
}

// RenameAll renames every entry and returns one outcome per entry
func (e *Engine) RenameAll(entries []types.Entry) *types.Batch {
	batch := &types.Batch{
		ID:        uuid.New().String(),
		Operation: types.OperationRename,
		DryRun:    e.opts.DryRun,
		Outcomes:  make([]types.Outcome, 0, len(entries)),
	}
	logger := logging.WithBatch(e.logger, batch.ID, batch.Operation)
	done := logging.LogOperationStart(logger, "rename batch")
	defer done()

	for _, entry := range entries {
		outcome := e.rename(entry)
		batch.Add(outcome)
		logOutcome(logger, outcome)
	}

	summary := batch.Summary()
	logger.Info().
		Int("total", summary.Total).
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Bool("dryRun", e.opts.DryRun).
		Msg("Rename batch completed")

	return batch
}

// Rename renames a single entry
func (e *Engine) Rename(entry types.Entry) types.Outcome {
	outcome := e.rename(entry)
	logOutcome(e.logger, outcome)
	return outcome
}

func (e *Engine) rename(entry types.Entry) types.Outcome {
	outcome := types.Outcome{Path: entry.Path, Kind: entry.Kind, DryRun: e.opts.DryRun}

	newName, err := datecodec.RewritePrefix(entry.Name())
	if err != nil {
		outcome.Err = err
		return outcome
	}
	newPath := filepath.Join(entry.Dir(), newName)

	if _, err := e.fs.Lstat(entry.Path); err != nil {
		outcome.Err = errors.Wrapf(err, errors.ErrRenameFailed, "cannot access %q", entry.Path).
			WithDetail("path", entry.Path)
		return outcome
	}

	// rename(2) replaces an existing file silently, so check first
	if _, err := e.fs.Lstat(newPath); err == nil {
		outcome.Err = errors.Newf(errors.ErrRenameConflict, "%q already exists", newPath).
			WithDetail("path", entry.Path).
			WithDetail("target", newPath)
		return outcome
	} else if !stderrors.Is(err, fs.ErrNotExist) {
		outcome.Err = errors.Wrapf(err, errors.ErrRenameFailed, "cannot check %q", newPath).
			WithDetail("path", entry.Path)
		return outcome
	}

	if !e.opts.DryRun {
		if err := e.fs.Rename(entry.Path, newPath); err != nil {
			code := errors.ErrRenameFailed
			if stderrors.Is(err, fs.ErrExist) {
				code = errors.ErrRenameConflict
			}
			outcome.Err = errors.Wrapf(err, code, "failed to rename %q", entry.Path).
				WithDetail("path", entry.Path).
				WithDetail("target", newPath)
			return outcome
		}
	}

	outcome.NewPath = newPath
	return outcome
}

func logOutcome(logger zerolog.Logger, o types.Outcome) {
	if o.Err != nil {
		logger.Warn().
			Str("path", o.Path).
			Stringer("kind", o.Kind).
			Str("code", string(errors.GetErrorCode(o.Err))).
			Err(o.Err).
			Msg("Rename failed")
		return
	}
	logger.Info().
		Str("path", o.Path).
		Str("newPath", o.NewPath).
		Stringer("kind", o.Kind).
		Bool("dryRun", o.DryRun).
		Msg("Renamed entry")
}
