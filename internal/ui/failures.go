package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"nbt/internal/domain"
	"nbt/internal/storage"
)

// Viewer displays run failures in an interactive TUI
type Viewer interface {
	View(report *domain.RunReport) error
}

// FailureViewer is a two-pane tview browser over the last run's cell
// failures: list on the left, traceback details on the right. Failures can
// be marked resolved; the flag is persisted back to the results file.
type FailureViewer struct {
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(st storage.Storage) *FailureViewer {
	return &FailureViewer{storage: st}
}

// View runs the TUI until the user exits.
func (v *FailureViewer) View(report *domain.RunReport) error {
	if len(report.Failures) == 0 {
		color.Green("✓ No notebook failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	itemText := func(i int) string {
		f := report.Failures[i]
		label := fmt.Sprintf("%s :: cell %d", f.NotebookPath, f.CellIndex)
		if f.CellIndex < 0 {
			label = f.NotebookPath
		}
		if f.Resolved {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", i+1, label)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", i+1, label)
	}
	for i := range report.Failures {
		list.AddItem(itemText(i), "", 0, nil)
	}

	details := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	header := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	unresolved := func() int {
		n := 0
		for _, f := range report.Failures {
			if !f.Resolved {
				n++
			}
		}
		return n
	}
	updateHeader := func() {
		header.SetText(fmt.Sprintf(
			" Notebook Failures (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] resolve, → details, ← back, Ctrl+C exit ",
			len(report.Failures), unresolved()))
	}
	updateDetails := func() {
		i := list.GetCurrentItem()
		if i >= 0 && i < len(report.Failures) {
			details.SetText(formatFailure(report.Failures[i]))
		}
	}
	updateHeader()
	updateDetails()

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(details)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				i := list.GetCurrentItem()
				if i >= 0 && i < len(report.Failures) {
					report.Failures[i].Resolved = !report.Failures[i].Resolved
					list.SetItemText(i, itemText(i), "")
					updateHeader()
					// Persist the resolved flag; a write error here
					// should not tear down the viewer.
					_ = v.storage.Save(report)
				}
				return nil
			}
		}
		return event
	})
	details.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})
	list.SetChangedFunc(func(i int, mainText, secondaryText string, shortcut rune) {
		updateDetails()
	})

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(tview.NewFlex().
			SetDirection(tview.FlexColumn).
			AddItem(list, 0, 1, true).
			AddItem(details, 0, 2, false),
			0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatFailure renders one failure with tview color tags.
func formatFailure(f domain.CellFailure) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ %s: %s[white]\n\n", f.Ename, f.Evalue)
	fmt.Fprintf(&b, "[cyan]Notebook: %s[white]\n", f.NotebookPath)
	fmt.Fprintf(&b, "[cyan]Category: %s[white]\n", f.Category)
	if f.CellIndex >= 0 {
		fmt.Fprintf(&b, "[yellow]Cell: %d[white]\n", f.CellIndex)
	}
	b.WriteString("\n")

	if len(f.Traceback) > 0 {
		b.WriteString("[yellow]Traceback:[white]\n")
		for i, line := range f.Traceback {
			if i >= 30 {
				fmt.Fprintf(&b, "[gray]... and %d more lines[white]\n", len(f.Traceback)-30)
				break
			}
			fmt.Fprintf(&b, "  %s\n", tview.Escape(line))
		}
	}
	return b.String()
}
