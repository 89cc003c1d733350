package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/adscope/adkit/textproc"
)

// renderFeatureTable formats the feature mapping as a two-column table in
// the stable key order. Counts print as integers; caps_ratio keeps four
// decimal places.
func renderFeatureTable(features map[string]float64) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Feature", "Value"})

	for _, key := range textproc.FeatureKeys {
		v := features[key]
		var formatted string
		if key == textproc.FeatureCapsRatio {
			formatted = strconv.FormatFloat(v, 'f', 4, 64)
		} else {
			formatted = strconv.FormatFloat(v, 'f', 0, 64)
		}
		tw.AppendRow(table.Row{key, formatted})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
