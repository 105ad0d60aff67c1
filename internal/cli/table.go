package cli

import (
	"strconv"

	"github.com/Veraticus/reviewprep/internal/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Alignment selects how a table column is justified.
type Alignment int

// Column alignments.
const (
	AlignLeft Alignment = iota
	AlignRight
)

// RenderTable draws rows under headers with rounded borders. Short rows are
// padded with empty cells.
func RenderTable(headers []string, rows [][]string, aligns []Alignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == AlignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// LabelTable renders one count column per named distribution, one row per label.
// Labels missing from a distribution show as 0.
func LabelTable(names []string, distributions ...[]model.LabelCount) string {
	seen := make(map[string]bool)
	var labels []string
	counts := make([]map[string]int, len(distributions))
	for i, dist := range distributions {
		counts[i] = make(map[string]int, len(dist))
		for _, lc := range dist {
			counts[i][lc.Label] = lc.Count
			if !seen[lc.Label] {
				seen[lc.Label] = true
				labels = append(labels, lc.Label)
			}
		}
	}
	model.SortLabels(labels)

	headers := append([]string{"Label"}, names...)
	aligns := []Alignment{AlignLeft}
	for range names {
		aligns = append(aligns, AlignRight)
	}

	rows := make([][]string, 0, len(labels))
	for _, label := range labels {
		row := []string{label}
		for i := range distributions {
			row = append(row, strconv.Itoa(counts[i][label]))
		}
		rows = append(rows, row)
	}

	return RenderTable(headers, rows, aligns)
}
