package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	goczml "github.com/reoring/goczml"
)

// renderIssueTable lays out validation issues one row per issue. The entry
// column stays blank for document-level problems, which carry no index.
func renderIssueTable(iss goczml.Issues) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ENTRY", "CODE", "MESSAGE", "HINT"})

	for _, it := range iss {
		entry := ""
		if it.Index >= 0 {
			entry = strconv.Itoa(it.Index)
		}
		tw.AppendRow(table.Row{entry, it.Code, it.Message, it.Hint})
	}

	return tw.Render()
}
