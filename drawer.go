package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/andareed/pokeplot/logging"
)

const drawerRows = 8

// refreshDrawerContent re-renders the filtered rows into the drawer
// viewport and keeps the hovered row in view.
func (m *model) refreshDrawerContent() {
	if !m.ui.drawerOpen || !m.data.loaded {
		return
	}
	width := m.drawerPort.Width
	m.columns = layoutColumns(m.columns, width)

	lines := make([]string, 0, len(m.data.filtered))
	hoverLine := m.data.filteredPos(m.ui.hoverKey)
	for i, r := range m.data.filtered {
		st := rowStyle
		if i == hoverLine {
			st = rowSelectedStyle
		}
		lines = append(lines, st.Render(renderRow(r, cellStyle, m.columns)))
	}
	if len(lines) == 0 {
		lines = append(lines, rowStyle.Render(emptyFilterText))
	}
	m.drawerPort.SetContent(strings.Join(lines, "\n"))

	if hoverLine >= 0 {
		top := m.drawerPort.YOffset
		bottom := top + m.drawerPort.Height - 1
		if hoverLine < top || hoverLine > bottom {
			m.drawerPort.SetYOffset(max(0, hoverLine-m.drawerPort.Height/2))
		}
	}
	logging.Debugf("drawer: %d rows, hover line %d, offset %d", len(lines), hoverLine, m.drawerPort.YOffset)
}

func (m *model) toggleDrawer() {
	m.ui.drawerOpen = !m.ui.drawerOpen
	m.layout()
	m.refreshDrawerContent()
}

func newDrawerPort() viewport.Model {
	return viewport.New(0, drawerRows)
}

func (m *model) drawerView() string {
	return drawerArea.Render(renderHeader(m.columns) + "\n" + m.drawerPort.View())
}
