package report

import (
	"fmt"

	"github.com/fatih/color"

	"nbt/internal/config"
	"nbt/internal/domain"
)

// tracebackLimit is the number of traceback lines shown without --verbose.
const tracebackLimit = 10

// Formatter renders run reports to the console
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintCases prints one line per case in run order.
func (f *Formatter) PrintCases(report *domain.RunReport) {
	for _, c := range report.Cases {
		label := fmt.Sprintf("%s (%s, %.1fs)", c.Path, c.Category, c.Duration.Seconds())
		switch c.Status {
		case domain.StatusPassed:
			color.Green("PASS  %s", label)
		case domain.StatusFailed:
			color.Red("FAIL  %s", label)
		case domain.StatusSkipped:
			color.Yellow("SKIP  %s", c.Path)
		default:
			color.White("%-5s %s", c.Status, label)
		}
	}
}

// PrintSummary prints the summary table and failure details.
func (f *Formatter) PrintSummary(report *domain.RunReport) {
	meta := report.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                  Notebook Execution Statistics                ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Notebooks")
	color.White("%-27d │\n", meta.TotalNotebooks)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed")
	color.Green("%-27d │\n", meta.Passed)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed")
	color.Red("%-27d │\n", meta.Failed)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Skipped")
	color.Yellow("%-27d │\n", meta.Skipped)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", fmt.Sprintf("%.2fs", meta.DurationSeconds))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	mode := "strict"
	if meta.Relaxed {
		mode = "relaxed"
	}
	fmt.Printf("│ %-31s │ ", "Comparison Mode")
	color.White("%-27s │\n", mode)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.Failed == 0 {
		color.Green("✓ All notebooks passed!")
	} else {
		color.Red("✗ %d notebook(s) failed", meta.Failed)
		fmt.Println()
		f.printFailures(report.Failures)
	}
}

// printFailures shows the offending cell and a truncated traceback per
// failure; the full raw output is available with --verbose.
func (f *Formatter) printFailures(failures []domain.CellFailure) {
	for _, failure := range failures {
		if failure.CellIndex >= 0 {
			color.Yellow("%s :: cell %d", failure.NotebookPath, failure.CellIndex)
		} else {
			color.Yellow("%s", failure.NotebookPath)
		}
		color.Red("  %s: %s", failure.Ename, failure.Evalue)

		limit := tracebackLimit
		if f.config.Flags.Verbose {
			limit = len(failure.Traceback)
		}
		for i, line := range failure.Traceback {
			if i >= limit {
				fmt.Printf("  ... and %d more lines\n", len(failure.Traceback)-limit)
				break
			}
			fmt.Printf("  %s\n", line)
		}
		fmt.Println()
	}
}

// PrintVerboseOutput dumps the raw engine output of every failed case.
func (f *Formatter) PrintVerboseOutput(report *domain.RunReport) {
	for _, c := range report.Cases {
		if c.Status != domain.StatusFailed || c.Output == "" {
			continue
		}
		color.Cyan("──── %s ────", c.Path)
		fmt.Println(c.Output)
	}
}
