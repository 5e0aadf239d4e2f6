package main

import (
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// render writes an aligned table to terminals and tab-separated rows elsewhere.
func render(w io.Writer, header []string, data [][]string) {
	if f, ok := w.(*os.File); !ok || !isTerminal(f) {
		io.WriteString(w, strings.Join(header, "\t")+"\n") //nolint:errcheck
		for _, row := range data {
			io.WriteString(w, strings.Join(row, "\t")+"\n") //nolint:errcheck
		}
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.SetAutoFormatHeaders(false)
	table.AppendBulk(data)
	table.Render()
}
