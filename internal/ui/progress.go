package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// Progress renders the run progress with live pass/fail/skip counts
type Progress struct {
	bar *progressbar.ProgressBar
}

// NewProgress creates a progress bar sized to the number of cases
func NewProgress(count int) *Progress {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &Progress{bar: bar}
}

// Update advances the bar with the latest counts
func (p *Progress) Update(passed, failed, skipped int) {
	p.bar.Set(passed + failed + skipped)
	p.bar.Describe(describe(passed, failed, skipped))
}

// Finish completes the bar
func (p *Progress) Finish() {
	p.bar.Finish()
}

func describe(passed, failed, skipped int) string {
	return color.CyanString("Running notebooks: ") +
		color.GreenString("[passed: %d", passed) +
		" | " +
		color.RedString("failed: %d", failed) +
		" | " +
		color.YellowString("skipped: %d]", skipped)
}
