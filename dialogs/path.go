package dialogs

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/pokeplot/logging"
)

// --- Messages ---------------------------------------------------------------

type (
	PathConfirmedMsg struct {
		Kind string
		Path string
	}
	PathCanceledMsg struct{ Kind string }
)

// Path asks for a file name. Kind is echoed back in its messages so one
// dialog type serves every export.
type Path struct {
	Kind    string
	title   string
	input   textinput.Model
	visible bool
	// optional: remember the last directory
	lastDir string
}

func (d Path) Init() tea.Cmd { return d.input.Focus() }

func NewPathDialog(kind, title, prompt, defaultName, lastDir string) *Path {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = prompt
	ti.CharLimit = 256
	// Wide enough for typical paths
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	ti.Focus()
	return &Path{Kind: kind, title: title, input: ti, visible: true, lastDir: lastDir}
}

func (d *Path) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			val := d.input.Value()
			if val == "" {
				// fall back to placeholder if user left it blank
				val = d.input.Placeholder
			}
			if val == "" {
				return d, nil
			}
			path := val
			// Expand "." to lastDir if provided
			if d.lastDir != "" && !filepath.IsAbs(path) && filepath.Dir(path) == "." {
				path = filepath.Join(d.lastDir, filepath.Base(path))
			}
			logging.Debugf("PathDialog[%s]: confirmed %s", d.Kind, path)
			kind := d.Kind
			return d, func() tea.Msg { return PathConfirmedMsg{Kind: kind, Path: path} }
		case "esc":
			logging.Debugf("PathDialog[%s]: canceled", d.Kind)
			kind := d.Kind
			return d, func() tea.Msg { return PathCanceledMsg{Kind: kind} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// Value is the text currently typed.
func (d *Path) Value() string { return d.input.Value() }

func (d Path) View() string {
	if !d.visible {
		return ""
	}
	content := fmt.Sprintf("%s\n\n%s\n\n%s",
		center(d.title, boxWidth-6),
		d.input.View(),
		hint.Render("enter to write • esc to cancel"))
	return box.Render(content)
}

func (d *Path) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Path) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Path) Focus() tea.Cmd { return d.input.Focus() }
func (d *Path) Blur()          { d.input.Blur() }
func (d Path) IsVisible() bool { return d.visible }
