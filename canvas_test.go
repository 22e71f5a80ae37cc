package main

import (
	"strings"
	"testing"
	"time"

	"github.com/andareed/pokeplot/dataset"
	"github.com/andareed/pokeplot/plot"
)

func TestCanvasCellMapping(t *testing.T) {
	c := newCanvasGeometry(100, 30, plot.DefaultSurface)
	if got := c.toCol(999.9); got != 99 {
		t.Fatalf("toCol = %d", got)
	}
	if got := c.toRow(0); got != 0 {
		t.Fatalf("toRow = %d", got)
	}
	// A cell's pixel is its center.
	if x, y := c.toPixel(0, 0); x != 5 || y != 10 {
		t.Fatalf("toPixel = %v,%v", x, y)
	}
	for col := 0; col < c.cols; col++ {
		x, _ := c.toPixel(col, 0)
		if c.toCol(x) != col {
			t.Fatalf("col %d round-trips to %d", col, c.toCol(x))
		}
	}
}

func TestCanvasTextWideRunes(t *testing.T) {
	c := newCanvas(10, 1, plot.DefaultSurface)
	end := c.text(0, 0, "ポケ", "")
	if end != 4 {
		t.Fatalf("end = %d", end)
	}
	if got := c.Plain(); !strings.HasPrefix(got, "ポケ") || len([]rune(got)) != 8 {
		t.Fatalf("plain %q", got)
	}
	// Writing off the canvas is clipped.
	c.text(9, 0, "xyz", "")
	if got := c.Plain(); !strings.HasSuffix(got, "x") {
		t.Fatalf("plain %q", got)
	}
}

func TestCanvasTooltipClamped(t *testing.T) {
	ds, err := dataset.Parse(strings.NewReader(exampleCSV))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	now := time.Now()
	tt := plot.NewTooltip(plot.DefaultTooltipConfig)
	// B sits in the top-right corner; the box must stay on the canvas.
	tt.Show(ds.Rows[1], ds.Rows, 990, 10, now)

	c := newCanvas(40, 10, plot.DefaultSurface)
	c.drawTooltip(tt, now.Add(time.Second))
	lines := strings.Split(c.Plain(), "\n")
	if !strings.HasSuffix(lines[0], "B: Water ") {
		t.Fatalf("tooltip not clamped: %q", lines[0])
	}
}

func TestCanvasMarkersAndAxes(t *testing.T) {
	ds, err := dataset.Parse(strings.NewReader(exampleCSV))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sc := plot.BuildScales(ds, dataset.FieldSpDef, dataset.FieldTotal, plot.DefaultSurface)
	set, _ := plot.Reconcile(nil, ds.Rows, sc, plot.DefaultColorMap(), time.Now(), 0)

	c := newCanvas(100, 30, plot.DefaultSurface)
	x, y := sc.Axes()
	c.drawAxes(x, y)
	c.drawMarkers(set, time.Now(), 1)
	out := c.Plain()

	// A and C share a cell.
	if n := strings.Count(out, string(markerGlyph)); n != 1 {
		t.Fatalf("expected 1 plain marker, got %d", n)
	}
	if n := strings.Count(out, string(hoveredGlyph)); n != 1 {
		t.Fatalf("expected the hovered marker, got %d", n)
	}
	for _, want := range []string{"─", "│", dataset.FieldSpDef, dataset.FieldTotal} {
		if !strings.Contains(out, want) {
			t.Fatalf("axes missing %q:\n%s", want, out)
		}
	}
}
