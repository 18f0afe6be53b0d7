package display

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/redate/pkg/types"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderScan lists the entries found by a scan
	RenderScan(result *types.ScanResult) error

	// RenderBatch reports every outcome of a rename or relink pass
	RenderBatch(batch *types.Batch) error

	// RenderRun reports a full run
	RenderRun(result *types.RunResult) error

	// RenderError renders an error that aborted a command
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. Paths under root are shown
// relative to it.
func NewRenderer(format Format, w io.Writer, root string) (Renderer, error) {
	switch Resolve(format, w) {
	case FormatTerminal:
		return newTerminalRenderer(w, root), nil
	case FormatText:
		return newTextRenderer(w, root), nil
	case FormatJSON:
		return newJSONRenderer(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// Marker returns the listing marker of an entry kind
func Marker(kind types.EntryKind) string {
	switch kind {
	case types.KindDirectory:
		return "#"
	case types.KindShortcut:
		return "@"
	default:
		return "-"
	}
}

// relative shortens path when it lives under root
func relative(root, path string) string {
	if root == "" || path == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

func batchTitle(batch *types.Batch) string {
	title := "Rename"
	if batch.Operation == types.OperationRelink {
		title = "Relink"
	}
	if batch.DryRun {
		title += " (dry run)"
	}
	return title
}
