package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/andareed/pokeplot/dataset"
	"github.com/andareed/pokeplot/render"
)

func TestExportRows(t *testing.T) {
	ds, err := dataset.Parse(strings.NewReader(exampleCSV))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rows := dataset.Filter(ds, dataset.Criteria{Generation: "1", Legendary: dataset.All})
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := ExportRows(ds.Header(), rows, path); err != nil {
		t.Fatalf("ExportRows: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 3 || !reflect.DeepEqual(records[0], ds.Header()) {
		t.Fatalf("records %q", records)
	}
	if records[1][0] != "A" || records[2][0] != "B" {
		t.Fatalf("rows %q", records[1:])
	}
}

func TestExportRowsBadPath(t *testing.T) {
	err := ExportRows([]string{"Name"}, nil, filepath.Join(t.TempDir(), "missing", "out.csv"))
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestDefaultExportName(t *testing.T) {
	cases := []struct {
		path, kind, want string
	}{
		{"./data/pokemon.csv", exportKindSnapshot, "pokemon-plot.svg"},
		{"./data/pokemon.csv", exportKindCSV, "pokemon-filtered.csv"},
		{"", exportKindCSV, "pokemon-filtered.csv"},
	}
	for _, c := range cases {
		if got := defaultExportName(c.path, c.kind); got != c.want {
			t.Errorf("defaultExportName(%q, %q) = %q, want %q", c.path, c.kind, got, c.want)
		}
	}
}

func TestExportHeadless(t *testing.T) {
	data := writeCSV(t, exampleCSV)
	dir := t.TempDir()

	svgPath := filepath.Join(dir, "plot.svg")
	c := dataset.Criteria{Generation: "1", Legendary: dataset.All}
	if err := exportHeadless(defaultConfig(), data, c, svgPath, render.FormatSVG); err != nil {
		t.Fatalf("svg: %v", err)
	}
	b, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	// Two markers plus one swatch per legend entry.
	if n := strings.Count(string(b), "<circle"); n != 2+len(defaultConfig().Colors) {
		t.Fatalf("svg has %d circles", n)
	}

	pngPath := filepath.Join(dir, "plot.png")
	if err := exportHeadless(defaultConfig(), data, dataset.AllRows, pngPath, render.FormatPNG); err != nil {
		t.Fatalf("png: %v", err)
	}
	b, err = os.ReadFile(pngPath)
	if err != nil || !strings.HasPrefix(string(b), "\x89PNG") {
		t.Fatalf("png output: %v", err)
	}

	if err := exportHeadless(defaultConfig(), filepath.Join(dir, "nope.csv"), dataset.AllRows, svgPath, render.FormatSVG); err == nil {
		t.Fatalf("expected load error")
	}
}
