package domain

// CellFailure represents a failed notebook cell.
type CellFailure struct {
	NotebookPath string   `json:"notebook_path"`
	Category     string   `json:"category"`
	CellIndex    int      `json:"cell_index"`
	Ename        string   `json:"ename"`
	Evalue       string   `json:"evalue"`
	Traceback    []string `json:"traceback"`
	Resolved     bool     `json:"resolved,omitempty"` // Toggled from the failures viewer
}
