package main

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/pokeplot/dataset"
	"github.com/andareed/pokeplot/logging"
	"github.com/andareed/pokeplot/plot"
)

func (m *model) openDropdown(d *Dropdown) {
	m.controls.open(d)
	m.ui.mode = modeDropdown
	logging.Debugf("dropdown %s open at %q", d.Name, d.Value())
}

func (m *model) handleDropdownKey(msg tea.KeyMsg) tea.Cmd {
	d := m.controls.active()
	if d == nil {
		m.ui.mode = modeView
		return nil
	}
	switch {
	case msg.String() == "ctrl+c":
		return tea.Quit
	case key.Matches(msg, Keys.OptionNext):
		d.Move(1)
	case key.Matches(msg, Keys.OptionPrev):
		d.Move(-1)
	case key.Matches(msg, Keys.Apply):
		m.ui.mode = modeView
		if d.Commit() {
			return m.dispatch(filterChangedMsg{source: d.Name})
		}
	case key.Matches(msg, Keys.Cancel):
		d.Cancel()
		m.ui.mode = modeView
	case key.Matches(msg, Keys.Generation):
		m.openDropdown(m.controls.generation)
	case key.Matches(msg, Keys.Legendary):
		m.openDropdown(m.controls.legendary)
	}
	return nil
}

// handleFilterChanged re-reads both controls and re-filters from the full
// dataset. Markers whose rows survive transition to their new positions;
// a hovered marker that leaves ends the hover first.
func (m *model) handleFilterChanged(msg filterChangedMsg) tea.Cmd {
	c := m.controls.Criteria()
	if err := c.Validate(); err != nil {
		logging.Errorf("filter from %s: %v", msg.source, err)
		return m.startNotice(err.Error(), noticeError, noticeDuration)
	}
	logging.Infof("filter changed by %s: %s", msg.source, c)

	now := m.now()
	m.data.criteria = c
	m.data.filtered = dataset.Filter(m.data.ds, c)

	var diff plot.Diff
	m.data.markers, diff = plot.Reconcile(m.data.markers, m.data.filtered, m.data.scales, m.data.colors, now, m.cfg.Transition)

	var cmds []tea.Cmd
	if m.ui.hoverKey >= 0 && slices.Contains(diff.Exit, m.ui.hoverKey) {
		cmds = append(cmds, m.dispatch(hoverEndMsg{key: m.ui.hoverKey}))
	} else if m.ui.hoverKey >= 0 && m.tooltip.State() == plot.TooltipVisible {
		// Same-value neighbours may have come or gone.
		if r, ok := m.data.row(m.ui.hoverKey); ok {
			x, y := m.tooltip.Anchor()
			m.tooltip.Show(r, m.data.filtered, x, y+m.cfg.TooltipOffset, now)
		}
	}
	m.refreshDrawerContent()

	if len(m.data.filtered) == 0 {
		cmds = append(cmds, m.startNotice(emptyFilterText, noticeWarn, noticeDuration))
	} else {
		cmds = append(cmds, m.startNotice(fmt.Sprintf("Showing %s of %s",
			numberWithCommas(len(m.data.filtered)), numberWithCommas(m.data.ds.Len())), noticeInfo, noticeDuration))
	}
	cmds = append(cmds, m.startFrames())
	return tea.Batch(cmds...)
}
