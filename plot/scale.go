package plot

import (
	"math"

	"github.com/andareed/pokeplot/dataset"
)

// Surface is the fixed drawing area in pixels.
type Surface struct {
	Width, Height, Margin float64
}

// DefaultSurface is 1000×600 with a 50px margin on every side.
var DefaultSurface = Surface{Width: 1000, Height: 600, Margin: 50}

// XRange is the horizontal pixel range inside the margins.
func (s Surface) XRange() (float64, float64) { return s.Margin, s.Width - s.Margin }

// YRange is the vertical pixel range inside the margins.
func (s Surface) YRange() (float64, float64) { return s.Margin, s.Height - s.Margin }

// Linear is an affine map from a value domain onto a pixel range.
//
// When the domain is degenerate (Min == Max) or empty (no finite values)
// every value maps to the midpoint of the range. NaN always maps to NaN.
type Linear struct {
	DomainMin, DomainMax float64
	RangeMin, RangeMax   float64
}

// NewLinear returns the map taking d0 to r0 and d1 to r1. Passing d0 > d1
// inverts the direction.
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{DomainMin: d0, DomainMax: d1, RangeMin: r0, RangeMax: r1}
}

// Degenerate reports whether the domain has no usable extent.
func (l Linear) Degenerate() bool {
	return l.DomainMin == l.DomainMax || math.IsNaN(l.DomainMin) || math.IsNaN(l.DomainMax)
}

// Map converts a value to a pixel coordinate.
func (l Linear) Map(v float64) float64 {
	if math.IsNaN(v) {
		return math.NaN()
	}
	if l.Degenerate() {
		return (l.RangeMin + l.RangeMax) / 2
	}
	return l.RangeMin + (v-l.DomainMin)/(l.DomainMax-l.DomainMin)*(l.RangeMax-l.RangeMin)
}

// Extent returns the minimum and maximum of field over rows, skipping NaN
// and infinite values. ok is false if no finite value exists.
func Extent(rows []*dataset.Row, field string) (min, max float64, ok bool) {
	min, max = math.NaN(), math.NaN()
	for _, r := range rows {
		v := r.Float(field)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < min || math.IsNaN(min) {
			min = v
		}
		if v > max || math.IsNaN(max) {
			max = v
		}
	}
	return min, max, !math.IsNaN(min)
}

// Scales are the two axis maps. They are built once from the unfiltered
// dataset and never change with the filter.
type Scales struct {
	XField, YField string
	X, Y           Linear
	Surface        Surface
}

// BuildScales computes the global extents of xField and yField and builds
// the axis maps. The y map is inverted so larger values render higher.
func BuildScales(ds *dataset.Dataset, xField, yField string, s Surface) Scales {
	xMin, xMax, _ := Extent(ds.Rows, xField)
	yMin, yMax, _ := Extent(ds.Rows, yField)
	x0, x1 := s.XRange()
	y0, y1 := s.YRange()
	return Scales{
		XField:  xField,
		YField:  yField,
		X:       NewLinear(xMin, xMax, x0, x1),
		Y:       NewLinear(yMax, yMin, y0, y1),
		Surface: s,
	}
}

// XRow maps a row's x field to a pixel column.
func (sc Scales) XRow(r *dataset.Row) float64 { return sc.X.Map(r.Float(sc.XField)) }

// YRow maps a row's y field to a pixel row.
func (sc Scales) YRow(r *dataset.Row) float64 { return sc.Y.Map(r.Float(sc.YField)) }

// Bounds returns the data extremes the scales were built from.
func (sc Scales) Bounds() (xMin, xMax, yMin, yMax float64) {
	return sc.X.DomainMin, sc.X.DomainMax, sc.Y.DomainMax, sc.Y.DomainMin
}
