package shortcut

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/redate/pkg/datecodec"
	"github.com/arthur-debert/redate/pkg/errors"
	"github.com/arthur-debert/redate/pkg/logging"
	"github.com/arthur-debert/redate/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CommitMode selects how a shortcut is replaced
type CommitMode string

const (
	// CommitReplace removes the old shortcut, then creates the new one
	CommitReplace CommitMode = "replace"
	// CommitSafe creates and verifies the new shortcut before removing the old one
	CommitSafe CommitMode = "safe"
)

// ParseCommitMode validates a commit mode name
func ParseCommitMode(s string) (CommitMode, error) {
	switch CommitMode(strings.ToLower(strings.TrimSpace(s))) {
	case CommitReplace, "":
		return CommitReplace, nil
	case CommitSafe:
		return CommitSafe, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown commit mode %q (want replace or safe)", s)
	}
}

// Options controls a relink batch
type Options struct {
	Mode   CommitMode
	DryRun bool
	// Planned lists directories a preceding dry-run rename would have
	// created. In dry-run mode they satisfy the target parent check.
	Planned []string
}

// Relinker points shortcuts at the renamed location of their targets
type Relinker struct {
	fs     types.FS
	store  Store
	logger zerolog.Logger
	opts    Options
	planned map[string]bool
}

// New creates a relinker. The filesystem is used to validate new targets and,
// in safe mode, to move the temporary shortcut into place.
func New(filesystem types.FS, store Store, logger zerolog.Logger, opts Options) *Relinker {
	if opts.Mode == "" {
		opts.Mode = CommitReplace
	}
	planned := make(map[string]bool, len(opts.Planned))
	for _, dir := range opts.Planned {
		planned[filepath.Clean(dir)] = true
	}
	return &Relinker{
		fs:      filesystem,
		store:   store,
		logger:  logging.Component(logger, "relinker"),
		opts:    opts,
		planned: planned,
	}
}

// RelinkAll relinks every shortcut and returns one outcome per entry
func (r *Relinker) RelinkAll(entries []types.Entry) *types.Batch {
	batch := &types.Batch{
		ID:        uuid.New().String(),
		Operation: types.OperationRelink,
		DryRun:    r.opts.DryRun,
		Outcomes:  make([]types.Outcome, 0, len(entries)),
	}
	logger := logging.WithBatch(r.logger, batch.ID, batch.Operation)
	done := logging.LogOperationStart(logger, "relink batch")
	defer done()

	for _, entry := range entries {
		outcome := r.relink(entry)
		batch.Add(outcome)
		logOutcome(logger, outcome)
	}

	summary := batch.Summary()
	logger.Info().
		Int("total", summary.Total).
		Int("succeeded", summary.Succeeded).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Str("mode", string(r.opts.Mode)).
		Bool("dryRun", r.opts.DryRun).
		Msg("Relink batch completed")

	return batch
}

// Relink relinks a single shortcut
func (r *Relinker) Relink(entry types.Entry) types.Outcome {
	outcome := r.relink(entry)
	logOutcome(r.logger, outcome)
	return outcome
}

func (r *Relinker) relink(entry types.Entry) types.Outcome {
	outcome := types.Outcome{Path: entry.Path, Kind: entry.Kind, DryRun: r.opts.DryRun}

	oldTarget, err := r.store.Resolve(entry.Path)
	if err != nil {
		outcome.Err = errors.Wrapf(err, errors.ErrUnresolvableShortcut, "cannot resolve shortcut %q", entry.Path).
			WithDetail("path", entry.Path)
		return outcome
	}
	record := &types.ShortcutRecord{ShortcutPath: entry.Path, OldTarget: oldTarget}
	outcome.Record = record

	newTarget, changed := datecodec.RewriteSegments(oldTarget)
	if !changed {
		outcome.Skipped = true
		return outcome
	}
	record.NewTarget = newTarget

	parent := filepath.Dir(resolveTarget(entry.Path, newTarget))
	if !r.parentExists(parent) {
		outcome.Err = errors.Newf(errors.ErrTargetParentMissing, "parent of new target %q does not exist", newTarget).
			WithDetail("path", entry.Path).
			WithDetail("parent", parent)
		return outcome
	}

	if !r.opts.DryRun {
		if err := r.commit(entry.Path, newTarget); err != nil {
			outcome.Err = err
			return outcome
		}
	}

	outcome.NewPath = entry.Path
	return outcome
}

// resolveTarget returns target as an absolute path. Relative link targets
// are relative to the directory holding the shortcut.
func resolveTarget(shortcutPath, target string) string {
	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(filepath.Dir(shortcutPath), target)
}

func (r *Relinker) parentExists(dir string) bool {
	if info, err := r.fs.Stat(dir); err == nil && info.IsDir() {
		return true
	}
	return r.opts.DryRun && r.planned[filepath.Clean(dir)]
}

func (r *Relinker) commit(path, newTarget string) error {
	if r.opts.Mode == CommitSafe {
		return r.commitSafe(path, newTarget)
	}
	return r.commitReplace(path, newTarget)
}

func (r *Relinker) commitReplace(path, newTarget string) error {
	if err := r.store.Remove(path); err != nil {
		return errors.Wrapf(err, errors.ErrShortcutCommitFailure, "failed to remove shortcut %q", path).
			WithDetail("path", path).
			WithDetail("shortcut_lost", false)
	}
	if err := r.store.Create(path, newTarget); err != nil {
		return errors.Wrapf(err, errors.ErrShortcutCommitFailure, "removed shortcut %q but could not recreate it", path).
			WithDetail("path", path).
			WithDetail("target", newTarget).
			WithDetail("shortcut_lost", true)
	}
	return nil
}

func (r *Relinker) commitSafe(path, newTarget string) error {
	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.tmp-%s", filepath.Base(path), uuid.New().String()[:8]))

	fail := func(err error, msg string) error {
		_ = r.store.Remove(tmp)
		return errors.Wrapf(err, errors.ErrShortcutCommitFailure, msg, path).
			WithDetail("path", path).
			WithDetail("target", newTarget).
			WithDetail("shortcut_lost", false)
	}

	if err := r.store.Create(tmp, newTarget); err != nil {
		return fail(err, "failed to create replacement for shortcut %q")
	}
	got, err := r.store.Resolve(tmp)
	if err != nil {
		return fail(err, "failed to verify replacement for shortcut %q")
	}
	if got != newTarget {
		return fail(fmt.Errorf("replacement resolves to %q", got), "replacement for shortcut %q is wrong")
	}
	if err := r.store.Remove(path); err != nil {
		return fail(err, "failed to remove shortcut %q")
	}
	if err := r.fs.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, errors.ErrShortcutCommitFailure, "failed to move replacement into %q", path).
			WithDetail("path", path).
			WithDetail("target", newTarget).
			WithDetail("temporary", tmp).
			WithDetail("shortcut_lost", true)
	}
	return nil
}

func logOutcome(logger zerolog.Logger, o types.Outcome) {
	event := logger.Info()
	msg := "Relinked shortcut"
	switch {
	case o.Err != nil:
		event = logger.Warn().Err(o.Err).Str("code", string(errors.GetErrorCode(o.Err)))
		msg = "Relink failed"
	case o.Skipped:
		event = logger.Debug()
		msg = "Shortcut target has no date prefix"
	}

	event = event.Str("path", o.Path).Bool("dryRun", o.DryRun)
	if o.Record != nil {
		event = event.Str("oldTarget", o.Record.OldTarget).Str("newTarget", o.Record.NewTarget)
	}
	event.Msg(msg)
}
