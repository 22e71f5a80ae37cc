package plot

import (
	"math"
	"time"

	"github.com/andareed/pokeplot/dataset"
)

// Tooltip timings and geometry.
const (
	TooltipFadeIn  = 200 * time.Millisecond
	TooltipFadeOut = 500 * time.Millisecond
	TooltipOffset  = 28.0
	TooltipOpacity = 0.9
)

// MultipleHeader heads a merged tooltip.
const MultipleHeader = "Multiple Pokémon"

// TooltipState is hidden or visible.
type TooltipState int

const (
	TooltipHidden TooltipState = iota
	TooltipVisible
)

func (s TooltipState) String() string {
	if s == TooltipVisible {
		return "visible"
	}
	return "hidden"
}

// TooltipLines builds the tooltip text for hovered.
//
// Rows of filtered with the same xField and yField values as hovered but a
// different name share its position and are merged: the result is the header
// followed by hovered and then each match in dataset order. Without matches
// the result is the single line for hovered.
func TooltipLines(hovered *dataset.Row, filtered []*dataset.Row, xField, yField string) []string {
	hx := hovered.Float(xField)
	hy := hovered.Float(yField)

	lines := []string{hovered.Label()}
	for _, r := range filtered {
		if r.Name() == hovered.Name() {
			continue
		}
		if sameValue(r.Float(xField), hx) && sameValue(r.Float(yField), hy) {
			lines = append(lines, r.Label())
		}
	}
	if len(lines) == 1 {
		return lines
	}
	return append([]string{MultipleHeader}, lines...)
}

func sameValue(a, b float64) bool {
	return !math.IsNaN(a) && a == b
}

// Tooltip is the hover label. Only one exists, so every Show replaces what
// was displayed before.
type Tooltip struct {
	Config TooltipConfig

	state   TooltipState
	key     int
	lines   []string
	anchorX float64
	anchorY float64

	// Opacity fade: from fadeFrom to fadeTo starting at fadeStart.
	fadeFrom, fadeTo float64
	fadeStart        time.Time
	fadeDur          time.Duration
}

// TooltipConfig carries the tunable timings and the plotted fields that
// decide which rows share a position.
type TooltipConfig struct {
	FadeIn  time.Duration
	FadeOut time.Duration
	Offset  float64

	XField, YField string
}

// DefaultTooltipConfig uses the 200ms/500ms fades, 28px offset and the
// Sp. Def/Total axes.
var DefaultTooltipConfig = TooltipConfig{
	FadeIn:  TooltipFadeIn,
	FadeOut: TooltipFadeOut,
	Offset:  TooltipOffset,
	XField:  dataset.FieldSpDef,
	YField:  dataset.FieldTotal,
}

// NewTooltip returns a hidden tooltip. Empty fields fall back to the
// default axes.
func NewTooltip(cfg TooltipConfig) *Tooltip {
	if cfg.XField == "" {
		cfg.XField = DefaultTooltipConfig.XField
	}
	if cfg.YField == "" {
		cfg.YField = DefaultTooltipConfig.YField
	}
	return &Tooltip{Config: cfg, key: -1}
}

// Show transitions to visible for row, anchored above the pointer.
func (t *Tooltip) Show(row *dataset.Row, filtered []*dataset.Row, pointerX, pointerY float64, now time.Time) {
	cur := t.Opacity(now)
	t.state = TooltipVisible
	t.key = row.Index
	t.lines = TooltipLines(row, filtered, t.Config.XField, t.Config.YField)
	t.anchorX = pointerX
	t.anchorY = pointerY - t.Config.Offset
	t.fade(cur, TooltipOpacity, t.Config.FadeIn, now)
}

// Hide transitions to hidden and starts the fade-out. The content stays
// until it has faded.
func (t *Tooltip) Hide(now time.Time) {
	if t.state == TooltipHidden {
		return
	}
	cur := t.Opacity(now)
	t.state = TooltipHidden
	t.fade(cur, 0, t.Config.FadeOut, now)
}

func (t *Tooltip) fade(from, to float64, d time.Duration, now time.Time) {
	t.fadeFrom, t.fadeTo = from, to
	t.fadeStart = now
	t.fadeDur = d
}

// State returns the current state.
func (t *Tooltip) State() TooltipState { return t.state }

// Key returns the row index of the hovered row, or -1.
func (t *Tooltip) Key() int {
	if t.state == TooltipHidden {
		return -1
	}
	return t.key
}

// Lines returns the displayed content.
func (t *Tooltip) Lines() []string { return append([]string(nil), t.lines...) }

// Anchor is the pixel position of the tooltip's top-left corner.
func (t *Tooltip) Anchor() (x, y float64) { return t.anchorX, t.anchorY }

// Opacity is the linear fade value at now.
func (t *Tooltip) Opacity(now time.Time) float64 {
	if t.fadeDur <= 0 {
		return t.fadeTo
	}
	p := float64(now.Sub(t.fadeStart)) / float64(t.fadeDur)
	switch {
	case p >= 1:
		return t.fadeTo
	case p <= 0:
		return t.fadeFrom
	}
	return t.fadeFrom + (t.fadeTo-t.fadeFrom)*p
}

// Settled reports whether the fade has finished at now.
func (t *Tooltip) Settled(now time.Time) bool {
	return t.fadeDur <= 0 || !now.Before(t.fadeStart.Add(t.fadeDur))
}

// Drawn reports whether anything should be painted at now.
func (t *Tooltip) Drawn(now time.Time) bool {
	return len(t.lines) > 0 && t.Opacity(now) > 0
}
