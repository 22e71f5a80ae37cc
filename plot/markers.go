package plot

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/andareed/pokeplot/dataset"
	"github.com/andareed/pokeplot/logging"
)

// MarkerRadius is the marker size in pixels.
const MarkerRadius = 7.0

// TransitionDuration is how long surviving markers take to move to a new
// position or color after a filter change.
const TransitionDuration = 500 * time.Millisecond

// Point is a marker position and color.
type Point struct {
	X, Y  float64
	Color colorful.Color
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Marker is the visual element for one row.
type Marker struct {
	Key int
	Row *dataset.Row

	from, to Point
	start    time.Time
	duration time.Duration
}

// Target is the position and color the marker is heading to.
func (m *Marker) Target() Point { return m.to }

// Visible reports whether the marker has an on-screen position. Rows with
// an unparseable x or y stay in the set but are never drawn or hit.
func (m *Marker) Visible() bool { return m.to.finite() }

// At returns the interpolated state at now.
func (m *Marker) At(now time.Time) Point {
	if m.duration <= 0 || !m.from.finite() || !m.to.finite() {
		return m.to
	}
	t := float64(now.Sub(m.start)) / float64(m.duration)
	if t >= 1 {
		return m.to
	}
	if t <= 0 {
		return m.from
	}
	e := easeCubicInOut(t)
	return Point{
		X:     m.from.X + (m.to.X-m.from.X)*e,
		Y:     m.from.Y + (m.to.Y-m.from.Y)*e,
		Color: m.from.Color.BlendRgb(m.to.Color, e).Clamped(),
	}
}

// Animating reports whether the marker is still in transition at now.
func (m *Marker) Animating(now time.Time) bool {
	return m.duration > 0 && now.Before(m.start.Add(m.duration))
}

func easeCubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

// MarkerSet is the rendered projection of the filtered dataset, keyed by
// row index. Iteration follows the filtered order.
type MarkerSet struct {
	byKey map[int]*Marker
	order []int
}

// NewMarkerSet returns an empty set.
func NewMarkerSet() *MarkerSet {
	return &MarkerSet{byKey: map[int]*Marker{}}
}

func (s *MarkerSet) Len() int { return len(s.order) }

// Keys returns the row indexes in draw order.
func (s *MarkerSet) Keys() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

// Get returns the marker for key.
func (s *MarkerSet) Get(key int) (*Marker, bool) {
	m, ok := s.byKey[key]
	return m, ok
}

// Markers returns the markers in draw order.
func (s *MarkerSet) Markers() []*Marker {
	out := make([]*Marker, len(s.order))
	for i, k := range s.order {
		out[i] = s.byKey[k]
	}
	return out
}

// Animating reports whether any marker is mid-transition.
func (s *MarkerSet) Animating(now time.Time) bool {
	for _, m := range s.byKey {
		if m.Animating(now) {
			return true
		}
	}
	return false
}

// Diff lists the keys created, transitioned and removed by a Reconcile. The
// three lists are disjoint.
type Diff struct {
	Enter  []int
	Update []int
	Exit   []int
}

// Reconcile joins rows against prev by row identity.
//
// Rows without a marker get one at their final position. Markers whose rows
// are gone are dropped. Surviving markers transition from wherever they are
// at now to their new target over duration, replacing any transition still
// in flight. prev is not modified; a nil prev is an empty set.
func Reconcile(prev *MarkerSet, rows []*dataset.Row, sc Scales, cm *ColorMap, now time.Time, duration time.Duration) (*MarkerSet, Diff) {
	if prev == nil {
		prev = NewMarkerSet()
	}
	next := &MarkerSet{byKey: make(map[int]*Marker, len(rows)), order: make([]int, 0, len(rows))}
	var diff Diff

	for _, r := range rows {
		if _, dup := next.byKey[r.Index]; dup {
			continue
		}
		target := Point{X: sc.XRow(r), Y: sc.YRow(r), Color: resolveColor(cm, r.Type1())}
		m := &Marker{Key: r.Index, Row: r, to: target}
		if old, ok := prev.byKey[r.Index]; ok {
			m.from = old.At(now)
			m.start = now
			m.duration = duration
			diff.Update = append(diff.Update, r.Index)
		} else {
			m.from = target
			diff.Enter = append(diff.Enter, r.Index)
		}
		next.byKey[r.Index] = m
		next.order = append(next.order, r.Index)
	}
	for _, k := range prev.order {
		if _, ok := next.byKey[k]; !ok {
			diff.Exit = append(diff.Exit, k)
		}
	}
	logging.Debugf("reconcile: enter=%d update=%d exit=%d", len(diff.Enter), len(diff.Update), len(diff.Exit))
	return next, diff
}

func resolveColor(cm *ColorMap, typ string) colorful.Color {
	if cm.firstMiss(typ) {
		logging.Debugf("color map: no entry for type %q, using fallback", typ)
	}
	return cm.Resolve(typ)
}

// HitTest returns the visible marker nearest to (x, y) within radius pixels.
// Later markers win ties, matching draw order where they sit on top.
func (s *MarkerSet) HitTest(x, y, radius float64, now time.Time) (*Marker, bool) {
	var best *Marker
	bestD := math.Inf(1)
	for _, k := range s.order {
		m := s.byKey[k]
		if !m.Visible() {
			continue
		}
		p := m.At(now)
		d := math.Hypot(p.X-x, p.Y-y)
		if d <= radius && d <= bestD {
			best, bestD = m, d
		}
	}
	return best, best != nil
}
