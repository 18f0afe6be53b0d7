package types

import (
	"path/filepath"

	"github.com/arthur-debert/redate/pkg/errors"
)

// Batch operation names
const (
	OperationRename = "rename"
	OperationRelink = "relink"
)

// ShortcutRecord tracks one shortcut through a relink pass.
type ShortcutRecord struct {
	ShortcutPath string `json:"shortcutPath"`
	OldTarget    string `json:"oldTarget"`
	NewTarget    string `json:"newTarget,omitempty"`
}

// Outcome is the result of processing a single entry. NewPath is set iff
// the entry succeeded and Err is set iff it failed. Skipped outcomes carry
// neither a change nor an error.
type Outcome struct {
	Path    string          `json:"path"`
	Kind    EntryKind       `json:"kind"`
	NewPath string          `json:"newPath,omitempty"`
	Err     error           `json:"-"`
	Record  *ShortcutRecord `json:"record,omitempty"`
	Skipped bool            `json:"skipped,omitempty"`
	DryRun  bool            `json:"dryRun,omitempty"`
}

// OK reports whether the entry was processed without error
func (o Outcome) OK() bool {
	return o.Err == nil
}

// ErrorCode returns the code of the failure, or an empty code on success
func (o Outcome) ErrorCode() errors.ErrorCode {
	if o.Err == nil {
		return ""
	}
	return errors.GetErrorCode(o.Err)
}

// Summary counts outcomes of a batch.
type Summary struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// Batch is the full result of one rename or relink pass. It holds exactly
// one outcome per input entry, in input order.
type Batch struct {
	ID        string    `json:"id"`
	Operation string    `json:"operation"`
	DryRun    bool      `json:"dryRun"`
	Outcomes  []Outcome `json:"outcomes"`
}

// Add appends an outcome to the batch
func (b *Batch) Add(o Outcome) {
	b.Outcomes = append(b.Outcomes, o)
}

// Summary aggregates the outcomes of the batch
func (b *Batch) Summary() Summary {
	s := Summary{Total: len(b.Outcomes)}
	for _, o := range b.Outcomes {
		switch {
		case o.Err != nil:
			s.Failed++
		case o.Skipped:
			s.Skipped++
		default:
			s.Succeeded++
		}
	}
	return s
}

// Failures returns the failed outcomes in input order
func (b *Batch) Failures() []Outcome {
	var failed []Outcome
	for _, o := range b.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// Renames maps every renamed path to its new path. Dry-run outcomes are
// included so previews can be chained the same way as real runs.
func (b *Batch) Renames() map[string]string {
	renames := make(map[string]string)
	for _, o := range b.Outcomes {
		if o.Err == nil && !o.Skipped && o.NewPath != "" && o.NewPath != o.Path {
			renames[o.Path] = o.NewPath
		}
	}
	return renames
}

// RunResult combines the passes of a full run: one scan, then the rename
// batch, then the relink batch.
type RunResult struct {
	Scan    *ScanResult `json:"scan"`
	Renames *Batch      `json:"renames"`
	Relinks *Batch      `json:"relinks"`
}

// RemapPath returns where path ends up after renames, a map from original
// paths to renamed paths as produced by Batch.Renames. Every renamed
// ancestor of path is taken into account.
func RemapPath(path string, renames map[string]string) string {
	parent := filepath.Dir(path)
	name := filepath.Base(path)
	if renamed, ok := renames[path]; ok {
		name = filepath.Base(renamed)
	}
	if parent == path {
		return path
	}
	return filepath.Join(RemapPath(parent, renames), name)
}
