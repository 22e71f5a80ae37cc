package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/andareed/pokeplot/dataset"
)

// renderRow lays out the drawer columns of r on one line.
func renderRow(r *dataset.Row, style lipgloss.Style, colsMeta []ColumnMeta) string {
	var rendered []string
	for _, meta := range colsMeta {
		if !meta.Visible || meta.Width <= 0 {
			continue
		}
		rendered = append(rendered, renderCell(r.Get(meta.Name), style, meta.Width))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderHeader(colsMeta []ColumnMeta) string {
	var cells []string
	for _, meta := range colsMeta {
		if !meta.Visible || meta.Width <= 0 {
			continue
		}
		cells = append(cells, renderCell(meta.Name, cellStyle, meta.Width))
	}
	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

// renderCell keeps every row one line high by truncating instead of
// letting lipgloss wrap.
func renderCell(text string, style lipgloss.Style, width int) string {
	inner := width - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	return style.Width(width).Render(truncate.StringWithTail(text, uint(inner), "…"))
}
