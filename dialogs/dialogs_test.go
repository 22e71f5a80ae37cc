package dialogs

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestPathConfirm(t *testing.T) {
	d := NewPathDialog("snapshot", "Snapshot plot", "File: ", "pokemon-plot.svg", "")
	if !d.IsVisible() || d.Value() != "pokemon-plot.svg" {
		t.Fatalf("dialog should open with the default name")
	}
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	msg, ok := cmd().(PathConfirmedMsg)
	if !ok || msg.Kind != "snapshot" || msg.Path != "pokemon-plot.svg" {
		t.Fatalf("got %#v", msg)
	}
}

func TestPathLastDir(t *testing.T) {
	d := NewPathDialog("csv", "Export", "File: ", "out.csv", "/tmp/exports")
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if msg := cmd().(PathConfirmedMsg); msg.Path != "/tmp/exports/out.csv" {
		t.Fatalf("path %q", msg.Path)
	}
}

func TestPathTypingAndCancel(t *testing.T) {
	d := NewPathDialog("csv", "Export", "File: ", "", "")
	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a.csv")})
	if d.Value() != "a.csv" {
		t.Fatalf("value %q", d.Value())
	}
	if !strings.Contains(d.View(), "Export") {
		t.Fatalf("view missing title")
	}
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(PathCanceledMsg); !ok {
		t.Fatalf("esc should cancel")
	}
	d.Hide()
	if d.View() != "" {
		t.Fatalf("hidden dialog should render nothing")
	}
}

func TestHelpCloses(t *testing.T) {
	b := key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generation"))
	d := NewHelpDialog([]key.Binding{b})
	if !strings.Contains(d.View(), "generation") || !strings.Contains(d.View(), "mouse") {
		t.Fatalf("help view:\n%s", d.View())
	}
	d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if d.IsVisible() {
		t.Fatalf("esc should close help")
	}
}
