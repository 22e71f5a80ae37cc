package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/pokeplot/dataset"
	"github.com/andareed/pokeplot/logging"
	"github.com/andareed/pokeplot/plot"
	"github.com/andareed/pokeplot/render"
)

const (
	exportKindCSV      = "csv"
	exportKindSnapshot = "snapshot"
)

// ExportRows writes rows to a CSV file under the original header.
func ExportRows(header []string, rows []*dataset.Row, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close export file: %w", cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		if err := w.Write(r.Cols()); err != nil {
			return fmt.Errorf("write row %d: %w", r.Index, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// scene captures the current view at rest for a snapshot.
func (m *model) scene() render.Scene {
	return render.NewScene(m.data.markers, m.data.scales, m.data.colors, m.cfg.MarkerRadius, m.cfg.LegendPitch, m.data.criteria.String())
}

// exportCmd runs the write off the dispatcher and reports back with an
// exportDoneMsg.
func (m *model) exportCmd(kind, path string) tea.Cmd {
	switch kind {
	case exportKindCSV:
		header := m.data.ds.Header()
		rows := append([]*dataset.Row(nil), m.data.filtered...)
		return func() tea.Msg {
			return exportDoneMsg{kind: kind, path: path, err: ExportRows(header, rows, path)}
		}
	case exportKindSnapshot:
		s := m.scene()
		return func() tea.Msg {
			return exportDoneMsg{kind: kind, path: path, err: render.WriteFile(path, s)}
		}
	}
	return nil
}

func defaultExportName(dataPath, kind string) string {
	base := strings.TrimSuffix(filepath.Base(dataPath), filepath.Ext(dataPath))
	if base == "" || base == "." {
		base = "pokemon"
	}
	if kind == exportKindSnapshot {
		return base + "-plot.svg"
	}
	return base + "-filtered.csv"
}

// exportHeadless loads dataPath, applies c and writes a snapshot to out
// without starting the UI.
func exportHeadless(cfg Config, dataPath string, c dataset.Criteria, out string, format render.Format) error {
	ds, err := dataset.Load(dataPath)
	if err != nil {
		return err
	}
	cm, err := cfg.ColorMap()
	if err != nil {
		return err
	}
	sc := plot.BuildScales(ds, cfg.XField, cfg.YField, cfg.surface())
	rows := dataset.Filter(ds, c)
	set, _ := plot.Reconcile(nil, rows, sc, cm, timeNow(), 0)
	s := render.NewScene(set, sc, cm, cfg.MarkerRadius, cfg.LegendPitch, c.String())
	if err := render.WriteFileAs(out, format, s); err != nil {
		return err
	}
	logging.Infof("headless snapshot of %d/%d rows written to %s", len(rows), ds.Len(), out)
	return nil
}
