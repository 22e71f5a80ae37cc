// Package plot holds the pixel-space model of the scatter plot: color map,
// scales and axes, legend layout, marker reconciliation and the tooltip.
// Renderers (terminal, SVG, PNG) only project what this package computes.
package plot

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// FallbackColor is used for a primary type missing from the color map.
const FallbackColor = "#9E9E9E"

var defaultColors = map[string]string{
	"Bug":      "#4E79A7",
	"Dark":     "#A0CBE8",
	"Dragon":   "#2424b5",
	"Electric": "#F28E2B",
	"Fairy":    "#B07AA1",
	"Fighting": "#59A14F",
	"Fire":     "#8CD17D",
	"Flying":   "#a9cfd4",
	"Ghost":    "#B6992D",
	"Grass":    "#499894",
	"Ground":   "#86BCB6",
	"Ice":      "#86BCB6",
	"Normal":   "#E15759",
	"Poison":   "#FF9D9A",
	"Psychic":  "#79706E",
	"Rock":     "#453f43",
	"Steel":    "#BAB0AC",
	"Water":    "#D37295",
}

// DefaultColors returns a copy of the built-in type palette as hex strings.
func DefaultColors() map[string]string {
	out := make(map[string]string, len(defaultColors))
	for k, v := range defaultColors {
		out[k] = v
	}
	return out
}

// ColorMap maps a primary type to a display color. The mapping is
// immutable; warned only records which unmapped types were logged.
type ColorMap struct {
	colors   map[string]colorful.Color
	hex      map[string]string
	keys     []string
	fallback colorful.Color
	fbHex    string

	warned sync.Map
}

// DefaultColorMap returns the built-in type palette.
func DefaultColorMap() *ColorMap {
	cm, err := NewColorMap(defaultColors, FallbackColor)
	if err != nil {
		panic(err)
	}
	return cm
}

// NewColorMap validates every hex value and copies the mapping.
func NewColorMap(m map[string]string, fallback string) (*ColorMap, error) {
	if fallback == "" {
		fallback = FallbackColor
	}
	fb, err := colorful.Hex(fallback)
	if err != nil {
		return nil, fmt.Errorf("fallback color %q: %w", fallback, err)
	}
	cm := &ColorMap{
		colors:   make(map[string]colorful.Color, len(m)),
		hex:      make(map[string]string, len(m)),
		keys:     make([]string, 0, len(m)),
		fallback: fb,
		fbHex:    fb.Hex(),
	}
	for name, h := range m {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("color for %q: %w", name, err)
		}
		cm.colors[name] = c
		cm.hex[name] = c.Hex()
		cm.keys = append(cm.keys, name)
	}
	sort.Strings(cm.keys)
	return cm, nil
}

// Keys returns the type names in iteration order.
func (cm *ColorMap) Keys() []string {
	return append([]string(nil), cm.keys...)
}

func (cm *ColorMap) Len() int { return len(cm.keys) }

// Lookup returns the hex color for typ and whether it is mapped.
func (cm *ColorMap) Lookup(typ string) (string, bool) {
	h, ok := cm.hex[typ]
	return h, ok
}

// Resolve returns the color for typ, or the fallback when typ is unmapped.
func (cm *ColorMap) Resolve(typ string) colorful.Color {
	if c, ok := cm.colors[typ]; ok {
		return c
	}
	return cm.fallback
}

// ResolveHex is Resolve in "#rrggbb" form.
func (cm *ColorMap) ResolveHex(typ string) string {
	if h, ok := cm.hex[typ]; ok {
		return h
	}
	return cm.fbHex
}

func (cm *ColorMap) Fallback() colorful.Color { return cm.fallback }

// firstMiss reports whether typ is unmapped and has not been reported before.
func (cm *ColorMap) firstMiss(typ string) bool {
	if _, ok := cm.hex[typ]; ok {
		return false
	}
	_, seen := cm.warned.LoadOrStore(typ, true)
	return !seen
}
