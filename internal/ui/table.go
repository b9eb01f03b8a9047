package ui

import (
	"os"

	"github.com/olekukonko/tablewriter"
)

// Table is a wrapper around tablewriter for consistent table formatting.
type Table struct {
	writer *tablewriter.Table
}

// NewTable creates a new table with headers.
func NewTable(headers []string) *Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("  ")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	headerColors := make([]tablewriter.Colors, len(headers))
	for i := range headerColors {
		headerColors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor}
	}
	table.SetHeaderColor(headerColors...)

	return &Table{writer: table}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(row []string) {
	t.writer.Append(row)
}

// Render prints the table.
func (t *Table) Render() {
	t.writer.Render()
}
