package notebook

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Document is a parsed .ipynb file: an ordered list of markdown/code cells.
// Stored cell outputs double as the expected-output store for comparison.
type Document struct {
	Cells         []Cell                 `json:"cells"`
	Metadata      map[string]interface{} `json:"metadata"`
	NBFormat      int                    `json:"nbformat"`
	NBFormatMinor int                    `json:"nbformat_minor"`
}

// Cell is a single notebook cell.
type Cell struct {
	Type           string                 `json:"cell_type"`
	Source         MultilineText          `json:"source"`
	Metadata       map[string]interface{} `json:"metadata"`
	ExecutionCount *int                   `json:"execution_count,omitempty"`
	Outputs        []Output               `json:"outputs,omitempty"`
}

// Output is one captured output of a code cell.
type Output struct {
	Type           string                     `json:"output_type"`
	Name           string                     `json:"name,omitempty"` // stream name: stdout/stderr
	Text           MultilineText              `json:"text,omitempty"`
	Data           map[string]json.RawMessage `json:"data,omitempty"` // mime bundle for rich outputs
	ExecutionCount *int                       `json:"execution_count,omitempty"`
	Ename          string                     `json:"ename,omitempty"`
	Evalue         string                     `json:"evalue,omitempty"`
	Traceback      []string                   `json:"traceback,omitempty"`
}

// MultilineText handles the ipynb convention of storing text either as a
// single string or as a list of line strings.
type MultilineText []string

func (m *MultilineText) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*m = MultilineText{single}
		return nil
	}
	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return fmt.Errorf("source is neither string nor string list: %w", err)
	}
	*m = MultilineText(lines)
	return nil
}

func (m MultilineText) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(m))
}

// String joins the stored lines into a single block of text.
func (m MultilineText) String() string {
	return strings.Join([]string(m), "")
}

// Read parses a notebook file.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read notebook %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse notebook %s: %w", path, err)
	}
	return &doc, nil
}

// Write serializes a notebook back to disk.
func Write(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", " ")
	if err != nil {
		return fmt.Errorf("marshal notebook: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write notebook %s: %w", path, err)
	}
	return nil
}

// CodeCellIndexes returns the document indexes of all code cells, in order.
func (d *Document) CodeCellIndexes() []int {
	var idx []int
	for i, c := range d.Cells {
		if c.Type == "code" {
			idx = append(idx, i)
		}
	}
	return idx
}

// FirstError returns the index and error output of the first cell that
// raised, or (-1, nil) if no cell has an error output.
func (d *Document) FirstError() (int, *Output) {
	for i, c := range d.Cells {
		if c.Type != "code" {
			continue
		}
		for j := range c.Outputs {
			if c.Outputs[j].Type == "error" {
				return i, &c.Outputs[j]
			}
		}
	}
	return -1, nil
}

// SkipRequested reports whether the notebook metadata opts it out of
// automated runs ({"metadata": {"nbt": {"skip": true}}}). Workshop notebooks
// needing manual cluster setup carry this marker.
func (d *Document) SkipRequested() bool {
	raw, ok := d.Metadata["nbt"]
	if !ok {
		return false
	}
	section, ok := raw.(map[string]interface{})
	if !ok {
		return false
	}
	skip, ok := section["skip"].(bool)
	return ok && skip
}
