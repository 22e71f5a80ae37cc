package main

import "strings"

type mode int

const (
	modeView mode = iota
	modeDropdown
	modeDialog
)

// modeLabel is the footer pill text.
func (m *model) modeLabel() string {
	switch m.ui.mode {
	case modeDropdown:
		if d := m.controls.active(); d != nil {
			return strings.ToUpper(d.Label)
		}
	case modeDialog:
		return "DIALOG"
	}
	if m.ui.hoverKey >= 0 {
		return "HOVER"
	}
	return "NORMAL"
}

func (m *model) modeHints() string {
	switch m.ui.mode {
	case modeDropdown:
		return "←/→ ↑/↓ choose · enter apply · esc cancel"
	case modeDialog:
		return "enter confirm · esc cancel"
	}
	return "(? help · g generation · l legendary · tab hover · t table · s snapshot · e export)"
}
