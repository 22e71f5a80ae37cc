package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/pokeplot/logging"
)

func (m *model) handleHoverStart(msg hoverStartMsg) tea.Cmd {
	mk, ok := m.data.markers.Get(msg.key)
	if !ok || !mk.Visible() {
		logging.Debugf("hover start for %d ignored: no visible marker", msg.key)
		return nil
	}
	m.ui.hoverKey = msg.key
	m.tooltip.Show(mk.Row, m.data.filtered, msg.px, msg.py, m.now())
	logging.Debugf("hover start %d (%s) at %.0f,%.0f", msg.key, mk.Row.Name(), msg.px, msg.py)
	m.refreshDrawerContent()
	return m.startFrames()
}

// handleHoverEnd only acts on the marker currently hovered; a stale end for
// a marker already left is dropped.
func (m *model) handleHoverEnd(msg hoverEndMsg) tea.Cmd {
	if msg.key != m.ui.hoverKey {
		return nil
	}
	m.ui.hoverKey = -1
	m.tooltip.Hide(m.now())
	logging.Debugf("hover end %d", msg.key)
	m.refreshDrawerContent()
	return m.startFrames()
}

// hoverTo moves the hover to key, ending the previous one first.
func (m *model) hoverTo(key int, px, py float64) tea.Cmd {
	if key == m.ui.hoverKey {
		return nil
	}
	var msgs []tea.Msg
	if m.ui.hoverKey >= 0 {
		msgs = append(msgs, hoverEndMsg{key: m.ui.hoverKey})
	}
	if key >= 0 {
		msgs = append(msgs, hoverStartMsg{key: key, px: px, py: py})
	}
	return m.dispatch(msgs...)
}

// cycleHover steps the hover through the visible markers in draw order,
// anchoring the tooltip at the marker itself.
func (m *model) cycleHover(delta int) tea.Cmd {
	var keys []int
	for _, mk := range m.data.markers.Markers() {
		if mk.Visible() {
			keys = append(keys, mk.Key)
		}
	}
	if len(keys) == 0 {
		return m.startNotice(emptyFilterText, noticeWarn, noticeDuration)
	}
	pos := -1
	for i, k := range keys {
		if k == m.ui.hoverKey {
			pos = i
			break
		}
	}
	n := len(keys)
	switch {
	case pos < 0 && delta < 0:
		pos = n - 1
	case pos < 0:
		pos = 0
	default:
		pos = ((pos+delta)%n + n) % n
	}
	mk, _ := m.data.markers.Get(keys[pos])
	p := mk.At(m.now())
	return m.hoverTo(mk.Key, p.X, p.Y)
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.data.loaded || m.ui.mode == modeDialog {
		return nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == m.ui.controlsY {
		return m.clickControls(msg.X - m.ui.controlsX)
	}

	col, row := msg.X-m.ui.canvasX, msg.Y-m.ui.canvasY
	if col < 0 || row < 0 || col >= m.ui.canvasCols || row >= m.ui.canvasRows {
		if m.ui.hoverKey >= 0 && msg.Action == tea.MouseActionMotion {
			return m.hoverTo(-1, 0, 0)
		}
		return nil
	}
	mk, px, py, ok := m.hitTest(col, row, m.now())
	if !ok {
		return m.hoverTo(-1, 0, 0)
	}
	return m.hoverTo(mk.Key, px, py)
}

func (m *model) clickControls(x int) tea.Cmd {
	z, ok := m.controls.zoneAt(x)
	if !ok {
		return nil
	}
	if z.option < 0 {
		if z.dropdown.IsOpen() {
			z.dropdown.Cancel()
			m.ui.mode = modeView
			return nil
		}
		m.openDropdown(z.dropdown)
		return nil
	}
	m.ui.mode = modeView
	if z.dropdown.choose(z.option) {
		return m.dispatch(filterChangedMsg{source: z.dropdown.Name})
	}
	return nil
}
