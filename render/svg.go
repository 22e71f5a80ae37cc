package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/andareed/pokeplot/plot"
)

const (
	legendWidth = 160
	tickLength  = 6
)

// SVG writes s as a standalone SVG document. The plot occupies the surface
// and the legend sits in a group to its right.
func SVG(w io.Writer, s Scene) error {
	ew := &errWriter{w: w}
	surf := s.Scales.Surface
	width := int(surf.Width) + legendWidth
	height := int(surf.Height)
	legend := plot.LegendLayout(s.Colors, 20, s.LegendPitch, s.Radius)
	if n := len(legend); n > 0 {
		if bottom := int(legend[n-1].SwatchY) + 20; bottom > height {
			height = bottom
		}
	}

	canvas := svg.New(ew)
	canvas.Start(width, height, `font-family="Helvetica,Arial,sans-serif" font-size="12px"`)
	canvas.Rect(0, 0, width, height, `fill="white"`)
	if s.Caption != "" {
		canvas.Text(int(surf.Margin), int(surf.Margin/2), s.Caption, `fill="#666"`)
	}

	x, y := s.Scales.Axes()
	canvas.Gid("axes")
	svgAxis(canvas, x)
	svgAxis(canvas, y)
	canvas.Text(int(surf.Width/2-25), int(surf.Height-10), x.Title)
	canvas.TranslateRotate(10, int(surf.Height/2), -90)
	canvas.Text(0, 0, y.Title, `text-anchor="middle"`)
	canvas.Gend()
	canvas.Gend()

	canvas.Gid("markers")
	r := int(math.Round(s.Radius))
	for _, d := range s.Dots {
		canvas.Circle(px(d.X), px(d.Y), r, fmt.Sprintf(`fill="%s"`, d.Color.Hex()), `fill-opacity="0.8"`)
	}
	canvas.Gend()
	if len(s.Dots) == 0 {
		canvas.Text(int(surf.Width/2), int(surf.Height/2), "No Pokémon match", `text-anchor="middle" fill="#999"`)
	}

	canvas.Gtransform(fmt.Sprintf("translate(%d,0)", int(surf.Width)))
	canvas.Gid("legend")
	for _, e := range legend {
		canvas.Circle(px(e.SwatchX), px(e.SwatchY), int(math.Round(e.SwatchRadius)), fmt.Sprintf(`fill="%s"`, e.Color.Hex()))
		canvas.Text(px(e.LabelX), px(e.LabelY), e.Type, `dominant-baseline="middle"`)
	}
	canvas.Gend()
	canvas.Gend()

	canvas.End()
	return ew.err
}

func svgAxis(canvas *svg.SVG, a plot.Axis) {
	const stroke = `stroke="#333"`
	x1, y1, x2, y2 := a.Line()
	canvas.Line(px(x1), px(y1), px(x2), px(y2), stroke)
	for _, t := range a.Ticks(plot.MaxTicks) {
		if a.Horizontal {
			canvas.Line(px(t.Pixel), px(a.Offset), px(t.Pixel), px(a.Offset)+tickLength, stroke)
			canvas.Text(px(t.Pixel), px(a.Offset)+tickLength, t.Label, `text-anchor="middle" dy="1em"`)
		} else {
			canvas.Line(px(a.Offset)-tickLength, px(t.Pixel), px(a.Offset), px(t.Pixel), stroke)
			canvas.Text(px(a.Offset)-tickLength-2, px(t.Pixel), t.Label, `text-anchor="end" dy=".3em"`)
		}
	}
}

func px(v float64) int { return int(math.Round(v)) }

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
