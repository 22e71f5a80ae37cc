package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"github.com/andareed/pokeplot/logging"
	"github.com/andareed/pokeplot/plot"
)

// Fixed rows and columns around the canvas.
const (
	controlsHeight = 1
	footerHeight   = 2
	legendColWidth = 14
)

// footerView renders the 2-line footer.
// width is the content width, matching the bordered canvas plus legend.
func (m *model) footerView(width int) string {
	st := FooterState{
		Mode:        m.modeLabel(),
		FileName:    shortPath(m.dataPath),
		FilterLabel: m.data.criteria.String(),
		HoverLabel:  m.hoveredRowLabel(),
		Shown:       len(m.data.filtered),
		Legend:      m.modeHints(),
	}
	if m.data.ds != nil {
		st.Total = m.data.ds.Len()
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}

	if logging.IsDebugMode() {
		markers := 0
		if m.data.markers != nil {
			markers = m.data.markers.Len()
		}
		debug := fmt.Sprintf(" dbg term=%dx%d plot=%dx%d markers=%d hover=%d",
			m.terminalWidth, m.terminalHeight, m.ui.canvasCols, m.ui.canvasRows, markers, m.ui.hoverKey)
		st.Legend = st.Legend + " |" + debug
	}

	return RenderFooter(width, st, DefaultFooterStyles())
}

// legendView lists every color-map entry beside the canvas, cut to height
// rows.
func (m *model) legendView(height int) string {
	entries := plot.LegendLayout(m.data.colors, 0, m.cfg.LegendPitch, m.cfg.MarkerRadius)
	lines := []string{legendTitleStyle.Render("Type 1")}
	for i, e := range entries {
		if len(lines) == height-1 && i < len(entries)-1 {
			lines = append(lines, legendLabel.Render(fmt.Sprintf("+%d more", len(entries)-i)))
			break
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color.Hex())).Render("●")
		lines = append(lines, swatch+" "+legendLabel.Render(truncate.StringWithTail(e.Type, legendColWidth-3, "…")))
	}
	return lipgloss.NewStyle().Width(legendColWidth).PaddingLeft(1).Render(strings.Join(lines, "\n"))
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.data.loadErr != nil {
		msg := fmt.Sprintf("Could not load %s\n\n%v\n\npress any key to quit", m.dataPath, m.data.loadErr)
		return appstyle.Render(errorBox.Width(max(m.terminalWidth-10, 20)).Render(msg))
	}
	if !m.data.loaded {
		return appstyle.Render(fmt.Sprintf("Loading %s...", m.dataPath))
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		w, h := m.terminalWidth, m.terminalHeight
		return lipgloss.Place(
			w, h,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	c := m.renderCanvas(m.ui.canvasCols, m.ui.canvasRows, m.now())
	bordered := tableStyle.Render(c.String())
	plotRow := lipgloss.JoinHorizontal(lipgloss.Top, bordered, m.legendView(lipgloss.Height(bordered)))
	contentW := lipgloss.Width(plotRow)

	parts := []string{m.controls.View(), plotRow}
	if m.ui.drawerOpen {
		parts = append(parts, m.drawerView())
	}
	parts = append(parts, m.footerView(contentW)) // always
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func fgSeq(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func bgSeq(c lipgloss.Color) string {
	return colorSeq(c, true)
}

func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	profile := lipgloss.ColorProfile()
	tc := profile.Color(value)
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(bg) + "m"
}
