package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/pokeplot/clipboard"
	"github.com/andareed/pokeplot/dataset"
	"github.com/andareed/pokeplot/dialogs"
	"github.com/andareed/pokeplot/logging"
	"github.com/andareed/pokeplot/plot"
)

var timeNow = time.Now

const frameInterval = time.Second / 30

type model struct {
	cfg      Config
	dataPath string

	data dataState
	ui   uiState

	controls     *controlPanel
	tooltip      *plot.Tooltip
	columns      []ColumnMeta
	drawerPort   viewport.Model
	activeDialog dialogs.Dialog

	// loadSeq guards against a second load result being applied.
	loadSeq int

	ready          bool
	terminalWidth  int
	terminalHeight int

	now func() time.Time
}

func newModel(cfg Config, dataPath string, c dataset.Criteria) (*model, error) {
	controls, err := newControlPanel(c)
	if err != nil {
		return nil, err
	}
	cm, err := cfg.ColorMap()
	if err != nil {
		return nil, err
	}
	return &model{
		cfg:        cfg,
		dataPath:   dataPath,
		data:       dataState{colors: cm, criteria: c},
		ui:         uiState{hoverKey: -1},
		controls:   controls,
		tooltip:    plot.NewTooltip(cfg.tooltip()),
		columns:    newColumns(drawerColumns),
		drawerPort: newDrawerPort(),
		now:        timeNow,
	}, nil
}

func (m *model) Init() tea.Cmd {
	logging.Infof("pokeplot: loading %s", m.dataPath)
	return m.loadCmd()
}

// loadCmd reads the dataset off the dispatcher. It reports exactly once.
func (m *model) loadCmd() tea.Cmd {
	m.loadSeq++
	seq, path := m.loadSeq, m.dataPath
	return func() tea.Msg {
		ds, err := dataset.Load(path)
		if err != nil {
			return loadFailedMsg{seq: seq, err: err}
		}
		return datasetLoadedMsg{seq: seq, ds: ds}
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth, m.terminalHeight = msg.Width, msg.Height
		m.ready = true
		m.layout()
		m.refreshDrawerContent()
		return m, nil
	case datasetLoadedMsg:
		return m, m.handleLoaded(msg)
	case loadFailedMsg:
		m.handleLoadFailed(msg)
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case clearNoticeMsg:
		m.clearNotice(msg)
		return m, nil
	case frameMsg:
		return m, m.handleFrame(msg)
	case exportDoneMsg:
		return m, m.handleExportDone(msg)
	case copyDoneMsg:
		return m, m.handleCopyDone(msg)
	case dialogs.PathConfirmedMsg:
		m.closeDialog()
		return m, m.exportCmd(msg.Kind, msg.Path)
	case dialogs.PathCanceledMsg:
		m.closeDialog()
		return m, nil
	}

	// Control and hover events mean nothing until the data is wired up.
	if !m.data.loaded {
		logging.Debugf("dropping %T before load", msg)
		return m, nil
	}
	switch msg := msg.(type) {
	case filterChangedMsg:
		return m, m.handleFilterChanged(msg)
	case hoverStartMsg:
		return m, m.handleHoverStart(msg)
	case hoverEndMsg:
		return m, m.handleHoverEnd(msg)
	}

	if m.activeDialog != nil {
		// cursor blink and the like
		d, cmd := m.activeDialog.Update(msg)
		m.activeDialog = d
		return m, cmd
	}
	return m, nil
}

// dispatch feeds msgs through Update in order, as if they had arrived back
// to back.
func (m *model) dispatch(msgs ...tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(msgs))
	for _, msg := range msgs {
		_, cmd := m.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *model) handleLoaded(msg datasetLoadedMsg) tea.Cmd {
	if m.data.loaded || m.data.loadErr != nil || msg.seq != m.loadSeq {
		logging.Warnf("ignoring extra load result (seq %d)", msg.seq)
		return nil
	}
	ds := msg.ds
	now := m.now()
	m.data.ds = ds
	m.data.scales = plot.BuildScales(ds, m.cfg.XField, m.cfg.YField, m.cfg.surface())
	m.data.criteria = m.controls.Criteria()
	m.data.filtered = dataset.Filter(ds, m.data.criteria)
	m.data.markers, _ = plot.Reconcile(nil, m.data.filtered, m.data.scales, m.data.colors, now, m.cfg.Transition)
	m.data.loaded = true

	xMin, xMax, yMin, yMax := m.data.scales.Bounds()
	logging.Infof("loaded %d rows; %s [%g, %g], %s [%g, %g]", ds.Len(), m.cfg.XField, xMin, xMax, m.cfg.YField, yMin, yMax)
	if m.data.scales.X.Degenerate() || m.data.scales.Y.Degenerate() {
		logging.Warnf("degenerate scale: every value maps to the middle of the axis")
	}

	m.refreshDrawerContent()
	return m.startNotice(fmt.Sprintf("Loaded %s Pokémon", numberWithCommas(ds.Len())), noticeSuccess, noticeDuration)
}

func (m *model) handleLoadFailed(msg loadFailedMsg) {
	if m.data.loaded || m.data.loadErr != nil || msg.seq != m.loadSeq {
		logging.Warnf("ignoring extra load result (seq %d): %v", msg.seq, msg.err)
		return
	}
	m.data.loadErr = msg.err
	logging.Errorf("load failed: %v", msg.err)
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.data.loadErr != nil {
		return m, tea.Quit
	}
	if !m.data.loaded {
		if key.Matches(msg, Keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.ui.mode {
	case modeDialog:
		return m, m.handleDialogKey(msg)
	case modeDropdown:
		return m, m.handleDropdownKey(msg)
	}
	return m, m.handleViewModeKey(msg)
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, Keys.Quit):
		return tea.Quit
	case key.Matches(msg, Keys.Generation):
		m.openDropdown(m.controls.generation)
	case key.Matches(msg, Keys.Legendary):
		m.openDropdown(m.controls.legendary)
	case key.Matches(msg, Keys.HoverNext):
		return m.cycleHover(1)
	case key.Matches(msg, Keys.HoverPrev):
		return m.cycleHover(-1)
	case key.Matches(msg, Keys.Cancel):
		if m.ui.hoverKey >= 0 {
			return m.dispatch(hoverEndMsg{key: m.ui.hoverKey})
		}
	case key.Matches(msg, Keys.ToggleTable):
		m.toggleDrawer()
	case key.Matches(msg, Keys.TablePageUp):
		m.drawerPort.SetYOffset(m.drawerPort.YOffset - m.drawerPort.Height)
	case key.Matches(msg, Keys.TablePageDown):
		m.drawerPort.SetYOffset(m.drawerPort.YOffset + m.drawerPort.Height)
	case key.Matches(msg, Keys.CopyTooltip):
		return m.copyTooltip()
	case key.Matches(msg, Keys.ExportToFile):
		return m.openDialog(dialogs.NewPathDialog(exportKindCSV, "Export filtered rows", "CSV file: ",
			defaultExportName(m.dataPath, exportKindCSV), ""))
	case key.Matches(msg, Keys.SnapshotToFile):
		return m.openDialog(dialogs.NewPathDialog(exportKindSnapshot, "Snapshot plot", "SVG/PNG file: ",
			defaultExportName(m.dataPath, exportKindSnapshot), ""))
	case key.Matches(msg, Keys.OpenHelp):
		return m.openDialog(dialogs.NewHelpDialog(Keys.Legend()))
	}
	return nil
}

func (m *model) openDialog(d dialogs.Dialog) tea.Cmd {
	m.activeDialog = d
	m.ui.mode = modeDialog
	return d.Init()
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Hide()
	}
	m.activeDialog = nil
	m.ui.mode = modeView
}

func (m *model) handleDialogKey(msg tea.KeyMsg) tea.Cmd {
	if m.activeDialog == nil {
		m.ui.mode = modeView
		return nil
	}
	d, cmd := m.activeDialog.Update(msg)
	m.activeDialog = d
	if !d.IsVisible() {
		m.closeDialog()
	}
	return cmd
}

func (m *model) handleExportDone(msg exportDoneMsg) tea.Cmd {
	if msg.err != nil {
		logging.Errorf("%s export to %s failed: %v", msg.kind, msg.path, msg.err)
		return m.startNotice(fmt.Sprintf("%s export failed: %v", msg.kind, msg.err), noticeError, 2*noticeDuration)
	}
	logging.Infof("%s export written to %s", msg.kind, msg.path)
	return m.startNotice("Wrote "+msg.path, noticeSuccess, noticeDuration)
}

func (m *model) copyTooltip() tea.Cmd {
	if m.tooltip.State() != plot.TooltipVisible {
		return m.startNotice("Nothing hovered to copy", noticeWarn, noticeDuration)
	}
	lines := m.tooltip.Lines()
	text := strings.Join(lines, "\n")
	return func() tea.Msg {
		return copyDoneMsg{lines: len(lines), err: clipboard.Copy(text)}
	}
}

func (m *model) handleCopyDone(msg copyDoneMsg) tea.Cmd {
	if msg.err != nil {
		return m.startNotice(fmt.Sprintf("Copy failed: %v", msg.err), noticeError, noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Copied %d line(s)", msg.lines), noticeSuccess, noticeDuration)
}

func (m *model) startFrames() tea.Cmd {
	if m.ui.frameRunning {
		return nil
	}
	m.ui.frameRunning = true
	m.ui.frameSeq++
	return frameTick(m.ui.frameSeq)
}

func frameTick(seq int) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg{seq: seq, at: t} })
}

// animating reports whether any marker transition or tooltip fade is still
// running at now.
func (m *model) animating(now time.Time) bool {
	if m.data.markers != nil && m.data.markers.Animating(now) {
		return true
	}
	return !m.tooltip.Settled(now)
}

func (m *model) handleFrame(msg frameMsg) tea.Cmd {
	if msg.seq != m.ui.frameSeq {
		return nil
	}
	if m.animating(m.now()) {
		return frameTick(msg.seq)
	}
	m.ui.frameRunning = false
	return nil
}

// layout derives the canvas and drawer geometry from the terminal size.
func (m *model) layout() {
	w := m.terminalWidth - appstyle.GetHorizontalFrameSize()
	h := m.terminalHeight - appstyle.GetVerticalFrameSize()

	m.ui.controlsX = appstyle.GetMarginLeft()
	m.ui.controlsY = appstyle.GetMarginTop()
	m.ui.canvasX = m.ui.controlsX + 1
	m.ui.canvasY = m.ui.controlsY + controlsHeight + 1

	m.ui.drawerHeight = 0
	if m.ui.drawerOpen {
		m.ui.drawerHeight = drawerRows + 3
	}
	m.ui.canvasCols = max(w-2-legendColWidth, 10)
	m.ui.canvasRows = max(h-controlsHeight-2-footerHeight-m.ui.drawerHeight, 5)

	m.drawerPort.Width = max(w-2, 10)
	m.drawerPort.Height = drawerRows
	logging.Debugf("layout: term=%dx%d canvas=%dx%d at %d,%d drawer=%d",
		m.terminalWidth, m.terminalHeight, m.ui.canvasCols, m.ui.canvasRows, m.ui.canvasX, m.ui.canvasY, m.ui.drawerHeight)
}

func (m *model) hoveredRowLabel() string {
	if m.ui.hoverKey < 0 {
		return ""
	}
	if r, ok := m.data.row(m.ui.hoverKey); ok {
		return r.Name()
	}
	return ""
}

func shortPath(p string) string {
	if p == "" {
		return ""
	}
	return filepath.Base(p)
}
