package main

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/pokeplot/dataset"
	"github.com/andareed/pokeplot/dialogs"
	"github.com/andareed/pokeplot/plot"
)

const exampleCSV = `Name,Type 1,Type 2,Generation,Legendary,Sp. Def,Total
A,Fire,,1,False,50,300
B,Water,,1,True,80,500
C,Fire,,2,False,50,300
`

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokemon.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

// newTestModel returns a sized model with its load already applied.
func newTestModel(t *testing.T) *model {
	t.Helper()
	m, err := newModel(defaultConfig(), writeCSV(t, exampleCSV), dataset.AllRows)
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	m.now = func() time.Time { return testNow }
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(m.Init()())
	if !m.data.loaded {
		t.Fatalf("model not loaded: %v", m.data.loadErr)
	}
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestLoadBuildsMarkers(t *testing.T) {
	m := newTestModel(t)
	if got := m.data.markers.Keys(); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Fatalf("markers %v", got)
	}
	if m.data.markers.Animating(testNow) {
		t.Fatalf("initial markers should be at rest")
	}
	if m.ui.hoverKey != -1 || m.tooltip.State() != plot.TooltipHidden {
		t.Fatalf("nothing should be hovered after load")
	}
}

func TestSecondLoadIgnored(t *testing.T) {
	m := newTestModel(t)
	first := m.data.ds

	other, err := dataset.Parse(strings.NewReader(exampleCSV + "D,Grass,,3,False,65,405\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m.Update(datasetLoadedMsg{seq: m.loadSeq, ds: other})
	m.Update(loadFailedMsg{seq: m.loadSeq, err: os.ErrNotExist})

	if m.data.ds != first || m.data.loadErr != nil {
		t.Fatalf("a second load result must not replace the first")
	}
}

func TestLoadFailure(t *testing.T) {
	m, err := newModel(defaultConfig(), filepath.Join(t.TempDir(), "missing.csv"), dataset.AllRows)
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(m.Init()())

	if m.data.loadErr == nil || m.data.loaded {
		t.Fatalf("expected load failure")
	}
	if !strings.Contains(m.View(), "Could not load") {
		t.Fatalf("failure not shown:\n%s", m.View())
	}
	// Hover and filter events are inert without data.
	m.Update(hoverStartMsg{key: 0})
	if m.ui.hoverKey != -1 {
		t.Fatalf("hover applied without data")
	}
	_, cmd := m.Update(keyRunes("x"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("any key should quit after a load failure")
	}
}

func TestGenerationDropdownFilters(t *testing.T) {
	m := newTestModel(t)

	press(m, keyRunes("g"))
	if m.ui.mode != modeDropdown || m.controls.active() != m.controls.generation {
		t.Fatalf("generation dropdown not open")
	}
	press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	if m.ui.mode != modeView {
		t.Fatalf("dropdown should close on apply")
	}
	if m.data.criteria.Generation != "1" {
		t.Fatalf("criteria %v", m.data.criteria)
	}
	if got := m.data.markers.Keys(); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Fatalf("markers %v", got)
	}
	// Scales are global; A keeps its position.
	a, _ := m.data.markers.Get(0)
	if p := a.Target(); p.X != 50 || p.Y != 550 {
		t.Fatalf("A moved to %v", p)
	}
	if !m.ui.frameRunning {
		t.Fatalf("filter change should start the frame ticker")
	}
}

func TestDropdownCancelKeepsFilter(t *testing.T) {
	m := newTestModel(t)
	press(m, keyRunes("l"), tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEsc})
	if m.controls.legendary.Value() != dataset.All || m.data.markers.Len() != 3 {
		t.Fatalf("cancel changed the filter")
	}
}

func TestHoverTooltip(t *testing.T) {
	m := newTestModel(t)

	m.Update(hoverStartMsg{key: 0, px: 50, py: 550})
	want := []string{plot.MultipleHeader, "A: Fire", "C: Fire"}
	if got := m.tooltip.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("A: %q want %q", got, want)
	}
	if x, y := m.tooltip.Anchor(); x != 50 || y != 550-plot.TooltipOffset {
		t.Fatalf("anchor %v,%v", x, y)
	}

	m.Update(hoverEndMsg{key: 0})
	m.Update(hoverStartMsg{key: 1, px: 950, py: 50})
	if got := m.tooltip.Lines(); !reflect.DeepEqual(got, []string{"B: Water"}) {
		t.Fatalf("B: %q", got)
	}

	// A stale end for a marker no longer hovered is dropped.
	m.Update(hoverEndMsg{key: 0})
	if m.ui.hoverKey != 1 || m.tooltip.State() != plot.TooltipVisible {
		t.Fatalf("stale hover end applied")
	}
}

func TestEmptyFilterEndsHover(t *testing.T) {
	m := newTestModel(t)
	m.Update(hoverStartMsg{key: 0, px: 50, py: 550})

	// up from "all" wraps to generation 6
	press(m, keyRunes("g"), tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})

	if m.data.criteria.Generation != "6" {
		t.Fatalf("criteria %v", m.data.criteria)
	}
	if m.data.markers.Len() != 0 {
		t.Fatalf("markers left: %v", m.data.markers.Keys())
	}
	if m.ui.hoverKey != -1 || m.tooltip.State() != plot.TooltipHidden {
		t.Fatalf("hover should end when its marker exits")
	}
	if m.ui.noticeMsg != emptyFilterText {
		t.Fatalf("notice %q", m.ui.noticeMsg)
	}
	c := m.renderCanvas(m.ui.canvasCols, m.ui.canvasRows, testNow)
	if !strings.Contains(c.Plain(), emptyFilterText) {
		t.Fatalf("empty message not drawn")
	}
}

func TestMouseHover(t *testing.T) {
	m := newTestModel(t)
	if m.ui.canvasCols != 100 || m.ui.canvasRows != 33 {
		t.Fatalf("canvas %dx%d", m.ui.canvasCols, m.ui.canvasRows)
	}

	// A and C share (50, 550); the cell over it is col 5, row 30. C is
	// drawn last and wins.
	m.Update(tea.MouseMsg{X: m.ui.canvasX + 5, Y: m.ui.canvasY + 30, Action: tea.MouseActionMotion})
	if m.ui.hoverKey != 2 {
		t.Fatalf("hover %d", m.ui.hoverKey)
	}
	want := []string{plot.MultipleHeader, "C: Fire", "A: Fire"}
	if got := m.tooltip.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("C: %q", got)
	}

	m.Update(tea.MouseMsg{X: m.ui.canvasX + 95, Y: m.ui.canvasY + 2, Action: tea.MouseActionMotion})
	if m.ui.hoverKey != 1 {
		t.Fatalf("hover %d, want B", m.ui.hoverKey)
	}

	m.Update(tea.MouseMsg{X: m.ui.canvasX + 50, Y: m.ui.canvasY + 15, Action: tea.MouseActionMotion})
	if m.ui.hoverKey != -1 || m.tooltip.State() != plot.TooltipHidden {
		t.Fatalf("moving off a marker should end the hover")
	}
}

func TestClickControls(t *testing.T) {
	m := newTestModel(t)
	m.View()

	m.Update(tea.MouseMsg{X: m.ui.controlsX, Y: m.ui.controlsY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.controls.active() != m.controls.generation {
		t.Fatalf("clicking the label should open the dropdown")
	}

	m.View()
	var opt controlZone
	for _, z := range m.controls.zones {
		if z.dropdown == m.controls.generation && z.option == 2 {
			opt = z
		}
	}
	if opt.dropdown == nil {
		t.Fatalf("no zone for generation 2: %+v", m.controls.zones)
	}
	m.Update(tea.MouseMsg{X: m.ui.controlsX + opt.x0, Y: m.ui.controlsY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if m.data.criteria.Generation != "2" {
		t.Fatalf("criteria %v", m.data.criteria)
	}
	if got := m.data.markers.Keys(); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("markers %v", got)
	}
}

func TestCycleHover(t *testing.T) {
	m := newTestModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ui.hoverKey != 0 {
		t.Fatalf("tab should hover the first marker, got %d", m.ui.hoverKey)
	}
	press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.ui.hoverKey != 1 {
		t.Fatalf("shift+tab twice from A should land on B, got %d", m.ui.hoverKey)
	}
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.ui.hoverKey != -1 {
		t.Fatalf("esc should end the hover")
	}
}

func TestFramesStopWhenSettled(t *testing.T) {
	m := newTestModel(t)
	m.Update(hoverStartMsg{key: 1, px: 950, py: 50})
	if !m.ui.frameRunning {
		t.Fatalf("hover should start frames")
	}
	seq := m.ui.frameSeq

	// Mid-fade the ticker keeps going.
	m.now = func() time.Time { return testNow.Add(plot.TooltipFadeIn / 2) }
	if _, cmd := m.Update(frameMsg{seq: seq}); cmd == nil {
		t.Fatalf("frame should reschedule while fading")
	}
	m.now = func() time.Time { return testNow.Add(time.Second) }
	if _, cmd := m.Update(frameMsg{seq: seq}); cmd != nil || m.ui.frameRunning {
		t.Fatalf("frame should stop once settled")
	}
	// Stale tickers are ignored.
	if _, cmd := m.Update(frameMsg{seq: seq - 1}); cmd != nil {
		t.Fatalf("stale frame rescheduled")
	}
}

func TestViewShowsPlot(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	for _, want := range []string{"Generation", "Legendary", "●", "Sp. Def", "Total", "Fire", "NORMAL"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestDrawerToggle(t *testing.T) {
	m := newTestModel(t)
	rows := m.ui.canvasRows
	press(m, keyRunes("t"))
	if !m.ui.drawerOpen || m.ui.canvasRows >= rows {
		t.Fatalf("drawer should take rows from the canvas")
	}
	if !strings.Contains(m.drawerPort.View(), "Water") {
		t.Fatalf("drawer content: %q", m.drawerPort.View())
	}
	press(m, keyRunes("t"))
	if m.ui.drawerOpen || m.ui.canvasRows != rows {
		t.Fatalf("drawer should close")
	}
}

func TestSnapshotDialog(t *testing.T) {
	m := newTestModel(t)
	out := filepath.Join(t.TempDir(), "snap.svg")

	press(m, keyRunes("s"))
	if m.ui.mode != modeDialog || m.activeDialog == nil {
		t.Fatalf("snapshot dialog not open")
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m.Update(cmd())
	if m.ui.mode != modeView || m.activeDialog != nil {
		t.Fatalf("dialog should close on cancel")
	}

	press(m, keyRunes("s"))
	_, cmd = m.Update(dialogs.PathConfirmedMsg{Kind: exportKindSnapshot, Path: out})
	if m.activeDialog != nil {
		t.Fatalf("dialog should close on confirm")
	}
	done, ok := cmd().(exportDoneMsg)
	if !ok || done.err != nil || done.path != out {
		t.Fatalf("export: %#v", done)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	if got := strings.Count(string(data), "<circle"); got < 3 {
		t.Fatalf("snapshot has %d circles", got)
	}
	m.Update(done)
	if m.ui.noticeType != noticeSuccess {
		t.Fatalf("notice %q %q", m.ui.noticeType, m.ui.noticeMsg)
	}
}

func TestCopyWithoutHover(t *testing.T) {
	m := newTestModel(t)
	press(m, keyRunes("y"))
	if m.ui.noticeType != noticeWarn {
		t.Fatalf("copy with nothing hovered should warn, got %q", m.ui.noticeMsg)
	}
}
