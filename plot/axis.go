package plot

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
)

// MaxTicks bounds the number of major ticks per axis.
const MaxTicks = 10

// Tick is one labelled axis tick.
type Tick struct {
	Value float64
	Pixel float64
	Label string
}

// Axis describes one rendered axis: the line, its ticks and its title.
type Axis struct {
	Title string
	Scale Linear
	// Horizontal axes run along x; vertical ones along y.
	Horizontal bool
	// Offset is the fixed pixel coordinate of the axis line on the other
	// dimension (the y of the x axis, the x of the y axis).
	Offset float64
}

// Axes returns the bottom and left axes for sc.
func (sc Scales) Axes() (x, y Axis) {
	_, yBottom := sc.Surface.YRange()
	xLeft, _ := sc.Surface.XRange()
	x = Axis{Title: sc.XField, Scale: sc.X, Horizontal: true, Offset: yBottom}
	y = Axis{Title: sc.YField, Scale: sc.Y, Horizontal: false, Offset: xLeft}
	return x, y
}

// Ticks returns at most max major ticks in increasing value order. A
// degenerate axis gets a single tick at the middle of its range.
func (a Axis) Ticks(max int) []Tick {
	lo, hi := a.Scale.DomainMin, a.Scale.DomainMax
	if lo > hi {
		lo, hi = hi, lo
	}
	if a.Scale.Degenerate() {
		if math.IsNaN(lo) {
			return nil
		}
		return []Tick{{Value: lo, Pixel: a.Scale.Map(lo), Label: formatTick(lo)}}
	}

	ls := scale.Linear{Min: lo, Max: hi, Base: 10}
	major, _ := ls.Ticks(scale.TickOptions{Max: max})
	ticks := make([]Tick, 0, len(major))
	for _, v := range major {
		if v < lo || v > hi {
			continue
		}
		ticks = append(ticks, Tick{Value: v, Pixel: a.Scale.Map(v), Label: formatTick(v)})
	}
	return ticks
}

// Line returns the end points of the axis line in pixel space.
func (a Axis) Line() (x1, y1, x2, y2 float64) {
	r0, r1 := a.Scale.RangeMin, a.Scale.RangeMax
	if a.Horizontal {
		return r0, a.Offset, r1, a.Offset
	}
	return a.Offset, r0, a.Offset, r1
}

func formatTick(v float64) string {
	return fmt.Sprintf("%g", v)
}
