package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit           key.Binding
	Generation     key.Binding
	Legendary      key.Binding
	OptionNext     key.Binding
	OptionPrev     key.Binding
	Apply          key.Binding
	Cancel         key.Binding
	HoverNext      key.Binding
	HoverPrev      key.Binding
	ToggleTable    key.Binding
	TablePageUp    key.Binding
	TablePageDown  key.Binding
	CopyTooltip    key.Binding
	ExportToFile   key.Binding
	SnapshotToFile key.Binding
	OpenHelp       key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Generation: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "choose generation"),
	),
	Legendary: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "choose legendary"),
	),
	OptionNext: key.NewBinding(
		key.WithKeys("down", "right", "j"),
		key.WithHelp("↓/→", "next option"),
	),
	OptionPrev: key.NewBinding(
		key.WithKeys("up", "left", "k"),
		key.WithHelp("↑/←", "previous option"),
	),
	Apply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply option"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel / end hover"),
	),
	HoverNext: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "hover next Pokémon"),
	),
	HoverPrev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "hover previous Pokémon"),
	),
	ToggleTable: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle data table"),
	),
	TablePageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "table page up"),
	),
	TablePageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "table page down"),
	),
	CopyTooltip: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy tooltip to clipboard"),
	),
	ExportToFile: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export filtered rows to CSV"),
	),
	SnapshotToFile: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "snapshot plot (.svg or .png)"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.Generation,
		k.Legendary,
		k.OptionNext,
		k.OptionPrev,
		k.Apply,
		k.Cancel,
		k.HoverNext,
		k.HoverPrev,
		k.ToggleTable,
		k.TablePageUp,
		k.TablePageDown,
		k.CopyTooltip,
		k.ExportToFile,
		k.SnapshotToFile,
	}
}
