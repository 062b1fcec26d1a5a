package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"nbt/internal/domain"
)

// htmlTemplate renders the same aggregate the console shows. The HTML
// report is a pure rendering step and is not authoritative.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Notebook Test Report</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #ccc; padding: 0.4em 0.8em; text-align: left; }
th { background: #f0f0f0; }
.passed { color: #1a7f37; }
.failed { color: #cf222e; }
.skipped { color: #9a6700; }
pre { background: #f6f8fa; padding: 0.8em; overflow-x: auto; }
</style>
</head>
<body>
<h1>Notebook Test Report</h1>
<p>{{.Meta.Timestamp}} &mdash; {{.Meta.Duration}} &mdash; mode: {{if .Meta.Relaxed}}relaxed{{else}}strict{{end}}</p>
<table>
<tr><th>Total</th><th>Passed</th><th>Failed</th><th>Skipped</th></tr>
<tr>
<td>{{.Meta.TotalNotebooks}}</td>
<td class="passed">{{.Meta.Passed}}</td>
<td class="failed">{{.Meta.Failed}}</td>
<td class="skipped">{{.Meta.Skipped}}</td>
</tr>
</table>
<table>
<tr><th>Notebook</th><th>Category</th><th>Status</th><th>Duration</th></tr>
{{range .Cases}}
<tr>
<td>{{.Path}}</td>
<td>{{.Category}}</td>
<td class="{{.Status}}">{{.Status}}</td>
<td>{{printf "%.1fs" .Duration.Seconds}}</td>
</tr>
{{end}}
</table>
{{if .Failures}}
<h2>Failures</h2>
{{range .Failures}}
<h3>{{.NotebookPath}}{{if ge .CellIndex 0}} &mdash; cell {{.CellIndex}}{{end}}</h3>
<p class="failed">{{.Ename}}: {{.Evalue}}</p>
{{if .Traceback}}<pre>{{range .Traceback}}{{.}}
{{end}}</pre>{{end}}
{{end}}
{{end}}
</body>
</html>
`

// WriteHTML renders the report to the given path.
func WriteHTML(report *domain.RunReport, path string) error {
	tmpl, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, report); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
