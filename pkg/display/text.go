package display

import (
	"fmt"
	"io"

	"github.com/arthur-debert/redate/pkg/types"
)

// listRenderer writes line oriented reports. The terminal renderer reuses
// it with a styling function; plain text uses identity.
type listRenderer struct {
	w       io.Writer
	root    string
	style   func(name, s string) string
	summary func(s types.Summary) string
}

func newTextRenderer(w io.Writer, root string) *listRenderer {
	return &listRenderer{
		w:       w,
		root:    root,
		style:   func(_, s string) string { return s },
		summary: textSummary,
	}
}

func textSummary(s types.Summary) string {
	return fmt.Sprintf("%d total, %d succeeded, %d failed, %d skipped",
		s.Total, s.Succeeded, s.Failed, s.Skipped)
}

func (r *listRenderer) println(line string) error {
	_, err := fmt.Fprintln(r.w, line)
	return err
}

// RenderScan lists entries deepest first, files before shortcuts
func (r *listRenderer) RenderScan(result *types.ScanResult) error {
	if result.Total() == 0 {
		msg := fmt.Sprintf("No dated entries found under %s", result.Root)
		if result.Converted > 0 {
			msg += fmt.Sprintf(" (%s already converted)", plural(result.Converted, "entry", "entries"))
		}
		return r.println(r.style("Muted", msg))
	}

	if err := r.println(r.style("Header", "Scan of "+result.Root)); err != nil {
		return err
	}
	for _, e := range result.Files {
		if err := r.println(r.entryLine(e.Kind, relative(r.root, e.Path))); err != nil {
			return err
		}
	}
	for _, e := range result.Shortcuts {
		if err := r.println(r.entryLine(e.Kind, relative(r.root, e.Path))); err != nil {
			return err
		}
	}

	footer := fmt.Sprintf("%s to rename, %s to relink, %d already converted",
		plural(len(result.Files), "entry", "entries"), plural(len(result.Shortcuts), "shortcut", "shortcuts"), result.Converted)
	return r.println(r.style("Summary", footer))
}

// RenderBatch writes one line per outcome followed by the summary counts
func (r *listRenderer) RenderBatch(batch *types.Batch) error {
	title := r.style("Header", batchTitle(batch))
	if batch.DryRun {
		title = r.style("DryRunBanner", batchTitle(batch))
	}
	if err := r.println(title); err != nil {
		return err
	}

	if len(batch.Outcomes) == 0 {
		if err := r.println(r.style("Muted", "Nothing to do")); err != nil {
			return err
		}
	}
	for _, o := range batch.Outcomes {
		if err := r.println(r.outcomeLine(o)); err != nil {
			return err
		}
	}
	return r.println(r.summary(batch.Summary()))
}

// RenderRun reports both passes of a run
func (r *listRenderer) RenderRun(result *types.RunResult) error {
	if result.Renames != nil {
		if err := r.RenderBatch(result.Renames); err != nil {
			return err
		}
	}
	if result.Relinks != nil {
		if result.Renames != nil {
			if err := r.println(""); err != nil {
				return err
			}
		}
		if err := r.RenderBatch(result.Relinks); err != nil {
			return err
		}
	}
	return nil
}

// RenderError writes err on its own line
func (r *listRenderer) RenderError(err error) error {
	return r.println(r.style("Error", "Error: "+err.Error()))
}

// RenderMessage writes msg on its own line
func (r *listRenderer) RenderMessage(msg string) error {
	return r.println(msg)
}

func (r *listRenderer) entryLine(kind types.EntryKind, path string) string {
	switch kind {
	case types.KindDirectory:
		return r.style("Directory", Marker(kind)+" "+path)
	case types.KindShortcut:
		return r.style("Shortcut", Marker(kind)+" "+path)
	default:
		return r.style("File", Marker(kind)+" "+path)
	}
}

func (r *listRenderer) outcomeLine(o types.Outcome) string {
	path := relative(r.root, o.Path)
	arrow := r.style("Arrow", "->")

	switch {
	case o.Err != nil:
		return r.style("Error", "! "+path) + ": " + r.style("ErrorCode", o.Err.Error())
	case o.Skipped:
		reason := "unchanged"
		if o.Record != nil {
			reason = "target " + relative(r.root, o.Record.OldTarget) + " has no date prefix"
		}
		return r.style("Skipped", fmt.Sprintf("%s %s (%s)", Marker(o.Kind), path, reason))
	case o.Record != nil:
		return fmt.Sprintf("%s: %s %s %s", r.entryLine(o.Kind, path),
			relative(r.root, o.Record.OldTarget), arrow, r.style("Success", relative(r.root, o.Record.NewTarget)))
	default:
		return fmt.Sprintf("%s %s %s", r.entryLine(o.Kind, path), arrow,
			r.style("Success", relative(r.root, o.NewPath)))
	}
}

var _ Renderer = (*listRenderer)(nil)

