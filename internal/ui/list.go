package ui

import (
	"fmt"

	"github.com/fatih/color"

	"nbt/internal/domain"
	"nbt/internal/notebook"
)

// PrintNotebookList prints discovered notebooks with their category and
// timeout. With cells enabled it also opens each notebook and shows its
// code cell count, like the original discovery debug listing.
func PrintNotebookList(cases []*domain.Case, cells bool) {
	color.Green("Discovered %d notebook(s):\n", len(cases))

	for i, c := range cases {
		connector := "├── "
		if i == len(cases)-1 {
			connector = "└── "
		}
		color.Cyan("%s%s", connector, c.Path)
		fmt.Printf("    %s, timeout %s\n", color.YellowString(c.Category), c.Timeout)

		if !cells {
			continue
		}
		doc, err := notebook.Read(c.Path)
		if err != nil {
			color.Red("    unreadable: %v", err)
			continue
		}
		fmt.Printf("    %d code cell(s)", len(doc.CodeCellIndexes()))
		if doc.SkipRequested() {
			fmt.Printf(" %s", color.YellowString("[skip]"))
		}
		fmt.Println()
	}
}
