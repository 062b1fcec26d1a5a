package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nbt/internal/domain"
)

func TestWriteHTML(t *testing.T) {
	report := &domain.RunReport{
		Cases: []domain.CaseResult{
			{Path: "labs/NxD/a.ipynb", Category: "NxD", Status: domain.StatusPassed, Duration: 12 * time.Second},
			{Path: "labs/vLLM/b.ipynb", Category: "vLLM", Status: domain.StatusFailed, Duration: 3 * time.Second},
		},
		Failures: []domain.CellFailure{
			{
				NotebookPath: "labs/vLLM/b.ipynb",
				Category:     "vLLM",
				CellIndex:    2,
				Ename:        "RuntimeError",
				Evalue:       "server <died>",
				Traceback:    []string{"Traceback (most recent call last):", "RuntimeError: server <died>"},
			},
		},
	}
	report.Summarize(15*time.Second, false, false)

	path := filepath.Join(t.TempDir(), "out", "report.html")
	if err := WriteHTML(report, path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	html := string(data)

	for _, want := range []string{
		"labs/NxD/a.ipynb",
		"labs/vLLM/b.ipynb",
		"cell 2",
		"RuntimeError",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// Output content is escaped, not injected
	if strings.Contains(html, "server <died>") {
		t.Error("expected error value to be HTML-escaped")
	}
	if !strings.Contains(html, "server &lt;died&gt;") {
		t.Error("expected escaped error value in report")
	}
}
