package display

import (
	"io"
	"strconv"

	"github.com/arthur-debert/redate/pkg/types"
	"github.com/arthur-debert/redate/pkg/ui/styles"
	"github.com/pterm/pterm"
)

func newTerminalRenderer(w io.Writer, root string) *listRenderer {
	reg := styles.Default()
	return &listRenderer{
		w:       w,
		root:    root,
		style:   reg.Render,
		summary: tableSummary,
	}
}

// tableSummary renders the counts as a pterm table
func tableSummary(s types.Summary) string {
	data := pterm.TableData{
		{"Total", "Succeeded", "Failed", "Skipped"},
		{strconv.Itoa(s.Total), strconv.Itoa(s.Succeeded), strconv.Itoa(s.Failed), strconv.Itoa(s.Skipped)},
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return textSummary(s)
	}
	return "\n" + out
}
