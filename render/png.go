package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/andareed/pokeplot/plot"
)

// PNG draws s with go-chart, one point-only series per primary type so the
// chart legend doubles as the type legend. go-chart lays out its own axes;
// only the tick positions come from the plot scales.
func PNG(w io.Writer, s Scene) error {
	series := typeSeries(s)
	if len(series) == 0 {
		return ErrNothingToPlot
	}

	xa, ya := s.Scales.Axes()
	xMin, xMax, yMin, yMax := s.Scales.Bounds()
	ch := chart.Chart{
		Title:      s.Caption,
		Width:      int(s.Scales.Surface.Width),
		Height:     int(s.Scales.Surface.Height),
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:  xa.Title,
			Range: chartRange(xMin, xMax),
			Ticks: chartTicks(xa),
		},
		YAxis: chart.YAxis{
			Name:  ya.Title,
			Range: chartRange(yMin, yMax),
			Ticks: chartTicks(ya),
		},
		Series: series,
	}
	// The legend reads stroke styles, which point series leave disabled.
	key := ch
	key.Series = legendSeries(series)
	ch.Elements = []chart.Renderable{chart.Legend(&key)}
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return nil
}

func typeSeries(s Scene) []chart.Series {
	type group struct {
		xs, ys []float64
		color  colorful.Color
	}
	groups := map[string]*group{}
	for _, d := range s.Dots {
		typ := d.Row.Type1()
		g, ok := groups[typ]
		if !ok {
			g = &group{color: d.Color}
			groups[typ] = g
		}
		g.xs = append(g.xs, d.Row.Float(s.Scales.XField))
		g.ys = append(g.ys, d.Row.Float(s.Scales.YField))
	}

	// Mapped types follow color-map order; unmapped ones come last, sorted.
	var names []string
	for _, k := range s.Colors.Keys() {
		if _, ok := groups[k]; ok {
			names = append(names, k)
		}
	}
	var extra []string
	for k := range groups {
		if _, ok := s.Colors.Lookup(k); !ok {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	names = append(names, extra...)

	out := make([]chart.Series, 0, len(names))
	for _, name := range names {
		g := groups[name]
		out = append(out, chart.ContinuousSeries{
			Name:    name,
			XValues: g.xs,
			YValues: g.ys,
			Style:   pointStyle(g.color, s.Radius),
		})
	}
	return out
}

// pointStyle draws dots only. DotWidth is the dot radius.
func pointStyle(c colorful.Color, radius float64) chart.Style {
	r, g, b := c.RGB255()
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    radius,
		DotColor:    drawing.Color{R: r, G: g, B: b, A: 255},
	}
}

const legendStrokeWidth = 4

// legendSeries copies series with a visible stroke in each dot color, for
// the legend only.
func legendSeries(series []chart.Series) []chart.Series {
	out := make([]chart.Series, len(series))
	for i, s := range series {
		st := s.GetStyle()
		out[i] = chart.ContinuousSeries{
			Name:  s.GetName(),
			Style: chart.Style{StrokeColor: st.DotColor, StrokeWidth: legendStrokeWidth},
		}
	}
	return out
}

// chartRange pads a degenerate extent, which go-chart refuses to draw.
func chartRange(lo, hi float64) *chart.ContinuousRange {
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

func chartTicks(a plot.Axis) []chart.Tick {
	if a.Scale.Degenerate() {
		return nil
	}
	ticks := a.Ticks(plot.MaxTicks)
	out := make([]chart.Tick, len(ticks))
	for i, t := range ticks {
		out[i] = chart.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}
