package plot

import "github.com/lucasb-eyer/go-colorful"

// LegendEntry is one swatch and label, positioned in legend pixel space.
type LegendEntry struct {
	Type           string
	Color          colorful.Color
	SwatchX        float64
	SwatchY        float64
	SwatchRadius   float64
	LabelX, LabelY float64
}

// LegendLayout stacks one entry per color-map key, in key order, pitch
// pixels apart starting at origin. Swatches match the marker radius.
func LegendLayout(cm *ColorMap, origin, pitch, radius float64) []LegendEntry {
	keys := cm.Keys()
	out := make([]LegendEntry, len(keys))
	for i, k := range keys {
		y := origin + float64(i)*pitch
		out[i] = LegendEntry{
			Type:         k,
			Color:        cm.Resolve(k),
			SwatchX:      origin,
			SwatchY:      y,
			SwatchRadius: radius,
			LabelX:       origin + 20,
			LabelY:       y + 2,
		}
	}
	return out
}
