package display

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/redate/pkg/errors"
	"github.com/arthur-debert/redate/pkg/types"
)

// jsonRenderer provides JSON output for machine consumption
type jsonRenderer struct {
	encoder *json.Encoder
}

func newJSONRenderer(w io.Writer) *jsonRenderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &jsonRenderer{encoder: encoder}
}

type errorView struct {
	Code    errors.ErrorCode       `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type outcomeView struct {
	types.Outcome
	Error *errorView `json:"error,omitempty"`
}

type batchView struct {
	ID        string        `json:"id"`
	Operation string        `json:"operation"`
	DryRun    bool          `json:"dryRun"`
	Summary   types.Summary `json:"summary"`
	Outcomes  []outcomeView `json:"outcomes"`
}

type runView struct {
	Scan    *types.ScanResult `json:"scan,omitempty"`
	Renames *batchView        `json:"renames,omitempty"`
	Relinks *batchView        `json:"relinks,omitempty"`
}

func newErrorView(err error) *errorView {
	if err == nil {
		return nil
	}
	return &errorView{
		Code:    errors.GetErrorCode(err),
		Message: err.Error(),
		Details: errors.GetErrorDetails(err),
	}
}

func newBatchView(batch *types.Batch) *batchView {
	if batch == nil {
		return nil
	}
	view := &batchView{
		ID:        batch.ID,
		Operation: batch.Operation,
		DryRun:    batch.DryRun,
		Summary:   batch.Summary(),
		Outcomes:  make([]outcomeView, len(batch.Outcomes)),
	}
	for i, o := range batch.Outcomes {
		view.Outcomes[i] = outcomeView{Outcome: o, Error: newErrorView(o.Err)}
	}
	return view
}

func (r *jsonRenderer) RenderScan(result *types.ScanResult) error {
	return r.encoder.Encode(result)
}

func (r *jsonRenderer) RenderBatch(batch *types.Batch) error {
	return r.encoder.Encode(newBatchView(batch))
}

func (r *jsonRenderer) RenderRun(result *types.RunResult) error {
	return r.encoder.Encode(runView{
		Scan:    result.Scan,
		Renames: newBatchView(result.Renames),
		Relinks: newBatchView(result.Relinks),
	})
}

func (r *jsonRenderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]*errorView{"error": newErrorView(err)})
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}

var _ Renderer = (*jsonRenderer)(nil)
