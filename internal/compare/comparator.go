package compare

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"nbt/internal/domain"
	"nbt/internal/notebook"
)

// Comparator checks captured outputs against the expected outputs stored in
// the notebook file. Execution success is established before comparison, so
// implementations only judge output content.
type Comparator interface {
	Compare(path string, expected, actual *notebook.Document) error
}

// ForMode returns the comparator for the requested mode.
func ForMode(relaxed bool) Comparator {
	if relaxed {
		return &Relaxed{}
	}
	return &Strict{}
}

// Strict requires every code cell's normalized outputs to match exactly.
type Strict struct{}

// Compare returns a domain.OutputMismatchError naming the first differing
// cell, or nil when all outputs match.
func (s *Strict) Compare(path string, expected, actual *notebook.Document) error {
	expIdx := expected.CodeCellIndexes()
	actIdx := actual.CodeCellIndexes()

	n := len(expIdx)
	if len(actIdx) < n {
		n = len(actIdx)
	}
	for i := 0; i < n; i++ {
		want := normalizeOutputs(expected.Cells[expIdx[i]].Outputs)
		got := normalizeOutputs(actual.Cells[actIdx[i]].Outputs)
		if want != got {
			return &domain.OutputMismatchError{
				Path:      path,
				CellIndex: expIdx[i],
				Expected:  want,
				Actual:    got,
			}
		}
	}
	if len(expIdx) != len(actIdx) {
		return &domain.OutputMismatchError{
			Path:      path,
			CellIndex: n,
			Expected:  fmt.Sprintf("%d code cells", len(expIdx)),
			Actual:    fmt.Sprintf("%d code cells", len(actIdx)),
		}
	}
	return nil
}

// Relaxed ignores output content entirely: execution success alone counts.
type Relaxed struct{}

func (r *Relaxed) Compare(path string, expected, actual *notebook.Document) error {
	return nil
}

// normalizeOutputs renders a cell's outputs in a stable textual form:
// text lists joined, execution counts dropped, mime bundles keyed and
// sorted. Two output sets compare equal iff their normal forms match.
func normalizeOutputs(outputs []notebook.Output) string {
	var b strings.Builder
	for _, out := range outputs {
		switch out.Type {
		case "stream":
			fmt.Fprintf(&b, "stream/%s:%s\n", out.Name, out.Text.String())
		case "execute_result", "display_data":
			fmt.Fprintf(&b, "%s:%s\n", out.Type, normalizeData(out.Data))
		case "error":
			fmt.Fprintf(&b, "error:%s:%s\n", out.Ename, out.Evalue)
		default:
			fmt.Fprintf(&b, "%s:%s%s\n", out.Type, out.Text.String(), normalizeData(out.Data))
		}
	}
	return b.String()
}

func normalizeData(data map[string]json.RawMessage) string {
	if len(data) == 0 {
		return ""
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		var text notebook.MultilineText
		if err := json.Unmarshal(data[k], &text); err == nil {
			fmt.Fprintf(&b, "%s=%s;", k, text.String())
			continue
		}
		fmt.Fprintf(&b, "%s=%s;", k, string(data[k]))
	}
	return b.String()
}

// UpdateExpected overwrites the notebook's stored outputs with the freshly
// captured ones. This is the explicit, human-triggered golden update path;
// it is never invoked automatically.
func UpdateExpected(path string, expected, actual *notebook.Document) error {
	expIdx := expected.CodeCellIndexes()
	actIdx := actual.CodeCellIndexes()
	for i := 0; i < len(expIdx) && i < len(actIdx); i++ {
		src := actual.Cells[actIdx[i]]
		expected.Cells[expIdx[i]].Outputs = src.Outputs
		expected.Cells[expIdx[i]].ExecutionCount = src.ExecutionCount
	}
	return notebook.Write(path, expected)
}
