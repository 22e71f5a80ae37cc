package main

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"github.com/andareed/pokeplot/plot"
)

const (
	markerGlyph  = '●'
	hoveredGlyph = '◉'
)

type cell struct {
	r    rune // 0 marks the right half of a wide rune
	fg   string
	bg   string
	bold bool
}

// canvas is the terminal projection of the pixel surface: cell (col, row)
// covers the pixels [col*W/cols, (col+1)*W/cols) and likewise for rows.
type canvas struct {
	cols, rows int
	surface    plot.Surface
	cells      [][]cell
}

func newCanvas(cols, rows int, s plot.Surface) *canvas {
	c := &canvas{cols: cols, rows: rows, surface: s}
	c.cells = make([][]cell, rows)
	for y := range c.cells {
		c.cells[y] = make([]cell, cols)
		for x := range c.cells[y] {
			c.cells[y][x] = cell{r: ' ', bg: canvasBGColor}
		}
	}
	return c
}

func (c *canvas) cellSize() (w, h float64) {
	return c.surface.Width / float64(c.cols), c.surface.Height / float64(c.rows)
}

func (c *canvas) toCol(px float64) int { return int(math.Floor(px / c.surface.Width * float64(c.cols))) }
func (c *canvas) toRow(py float64) int { return int(math.Floor(py / c.surface.Height * float64(c.rows))) }

// toPixel returns the pixel at the center of a cell.
func (c *canvas) toPixel(col, row int) (float64, float64) {
	w, h := c.cellSize()
	return (float64(col) + 0.5) * w, (float64(row) + 0.5) * h
}

func (c *canvas) inside(col, row int) bool {
	return col >= 0 && col < c.cols && row >= 0 && row < c.rows
}

func (c *canvas) set(col, row int, r rune, fg string) {
	if !c.inside(col, row) {
		return
	}
	cl := &c.cells[row][col]
	cl.r, cl.fg, cl.bold = r, fg, false
}

// text writes s from (col, row) and returns the column after it.
func (c *canvas) text(col, row int, s, fg string) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.set(col, row, r, fg)
		if w == 2 {
			c.set(col+1, row, 0, fg)
		}
		col += w
	}
	return col
}

func (c *canvas) String() string {
	var b strings.Builder
	reset := termenv.CSI + "0m"
	for y, line := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		var prev cell
		first := true
		for _, cl := range line {
			if cl.r == 0 {
				continue
			}
			if first || cl.fg != prev.fg || cl.bg != prev.bg || cl.bold != prev.bold {
				b.WriteString(reset)
				b.WriteString(bgSeq(lipgloss.Color(cl.bg)))
				b.WriteString(fgSeq(lipgloss.Color(cl.fg)))
				if cl.bold {
					b.WriteString(termenv.CSI + termenv.BoldSeq + "m")
				}
				prev, first = cl, false
			}
			b.WriteRune(cl.r)
		}
		b.WriteString(reset)
	}
	return b.String()
}

// Plain returns the canvas text without color, one line per row.
func (c *canvas) Plain() string {
	lines := make([]string, c.rows)
	for y, line := range c.cells {
		var b strings.Builder
		for _, cl := range line {
			if cl.r != 0 {
				b.WriteRune(cl.r)
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (c *canvas) drawAxes(x, y plot.Axis) {
	x1, axisY, x2, _ := x.Line()
	axisX, y1, _, _ := y.Line()
	row := c.toRow(axisY)
	col := c.toCol(axisX)

	for cx := c.toCol(x1); cx <= c.toCol(x2) && cx < c.cols; cx++ {
		c.set(cx, row, '─', axisColor)
	}
	for cy := c.toRow(y1); cy <= row; cy++ {
		c.set(col, cy, '│', axisColor)
	}
	c.set(col, row, '└', axisColor)

	lastEnd := -1
	for _, t := range x.Ticks(plot.MaxTicks) {
		tc := c.toCol(t.Pixel)
		if tc != col {
			c.set(tc, row, '┬', axisColor)
		}
		start := tc - runewidth.StringWidth(t.Label)/2
		if start <= lastEnd {
			continue
		}
		lastEnd = c.text(start, row+1, t.Label, tickColor)
	}
	for _, t := range y.Ticks(plot.MaxTicks) {
		tr := c.toRow(t.Pixel)
		if tr != row {
			c.set(col, tr, '┤', axisColor)
		}
		c.text(col-runewidth.StringWidth(t.Label), tr, t.Label, tickColor)
	}

	c.text(c.toCol(c.surface.Width/2)-runewidth.StringWidth(x.Title)/2, c.rows-1, x.Title, titleColor)
	c.text(0, max(0, c.toRow(y1)-1), y.Title, titleColor)
}

func (c *canvas) drawMarkers(set *plot.MarkerSet, now time.Time, hovered int) {
	var top *plot.Marker
	for _, m := range set.Markers() {
		if !m.Visible() {
			continue
		}
		if m.Key == hovered {
			top = m
			continue
		}
		p := m.At(now)
		c.set(c.toCol(p.X), c.toRow(p.Y), markerGlyph, p.Color.Hex())
	}
	// The hovered marker is drawn last so it stays on top.
	if top != nil {
		p := top.At(now)
		col, row := c.toCol(p.X), c.toRow(p.Y)
		c.set(col, row, hoveredGlyph, p.Color.Hex())
		if c.inside(col, row) {
			c.cells[row][col].bold = true
		}
	}
}

func (c *canvas) drawCentered(s, fg string) {
	c.text(c.cols/2-runewidth.StringWidth(s)/2, c.rows/2, s, fg)
}

// drawTooltip paints the tooltip box with its top-left corner at the
// anchor, blended toward the canvas background by its opacity.
func (c *canvas) drawTooltip(t *plot.Tooltip, now time.Time) {
	if !t.Drawn(now) {
		return
	}
	alpha := t.Opacity(now)
	bg := blendHex(canvasBGColor, tooltipBGColor, alpha)
	fg := blendHex(canvasBGColor, tooltipFGColor, alpha)

	lines := t.Lines()
	width := 0
	for i, l := range lines {
		lines[i] = truncate.StringWithTail(l, uint(max(1, c.cols-2)), "…")
		width = max(width, runewidth.StringWidth(lines[i]))
	}
	width += 2

	ax, ay := t.Anchor()
	col, row := c.toCol(ax), c.toRow(ay)
	if col+width > c.cols {
		col = c.cols - width
	}
	if row+len(lines) > c.rows {
		row = c.rows - len(lines)
	}
	col, row = max(col, 0), max(row, 0)

	for i, l := range lines {
		r := row + i
		for x := col; x < col+width; x++ {
			c.set(x, r, ' ', fg)
			if c.inside(x, r) {
				c.cells[r][x].bg = bg
			}
		}
		c.text(col+1, r, l, fg)
		if i == 0 && len(lines) > 1 {
			for x := col; x < col+width; x++ {
				if c.inside(x, r) {
					c.cells[r][x].bold = true
				}
			}
		}
	}
}

func blendHex(from, to string, t float64) string {
	a, err1 := colorful.Hex(from)
	b, err2 := colorful.Hex(to)
	if err1 != nil || err2 != nil {
		return to
	}
	return a.BlendRgb(b, t).Clamped().Hex()
}

// renderCanvas draws the plot at now into a cols×rows grid.
func (m *model) renderCanvas(cols, rows int, now time.Time) *canvas {
	c := newCanvas(cols, rows, m.data.scales.Surface)
	x, y := m.data.scales.Axes()
	c.drawAxes(x, y)
	c.drawMarkers(m.data.markers, now, m.ui.hoverKey)
	if len(m.data.filtered) == 0 {
		c.drawCentered(emptyFilterText, dimTextColor)
	}
	c.drawTooltip(m.tooltip, now)
	return c
}

// hitTest finds the marker under a canvas cell. The reach is the marker
// radius plus half a cell, so every marker can be reached by some cell.
func (m *model) hitTest(col, row int, now time.Time) (*plot.Marker, float64, float64, bool) {
	c := newCanvasGeometry(m.ui.canvasCols, m.ui.canvasRows, m.data.scales.Surface)
	px, py := c.toPixel(col, row)
	cw, ch := c.cellSize()
	mk, ok := m.data.markers.HitTest(px, py, m.cfg.MarkerRadius+math.Max(cw, ch)/2, now)
	return mk, px, py, ok
}

// newCanvasGeometry is a canvas without cells, for coordinate mapping only.
func newCanvasGeometry(cols, rows int, s plot.Surface) *canvas {
	return &canvas{cols: max(cols, 1), rows: max(rows, 1), surface: s}
}
