// Package render writes static snapshots of the plot: SVG through svgo and
// PNG through go-chart.
package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/andareed/pokeplot/dataset"
	"github.com/andareed/pokeplot/logging"
	"github.com/andareed/pokeplot/plot"
)

// ErrNothingToPlot is returned by renderers that cannot draw an empty scene.
var ErrNothingToPlot = errors.New("render: no visible points")

// Dot is one marker at rest.
type Dot struct {
	Row   *dataset.Row
	X, Y  float64
	Color colorful.Color
}

// Scene is everything a snapshot draws. Dots hold final marker states; a
// snapshot never captures a transition midway.
type Scene struct {
	Scales      plot.Scales
	Colors      *plot.ColorMap
	Dots        []Dot
	Radius      float64
	LegendPitch float64
	// Caption describes the active filter, e.g. "generation 1, legendary all".
	Caption string
}

// NewScene collects the visible markers of set.
func NewScene(set *plot.MarkerSet, sc plot.Scales, cm *plot.ColorMap, radius, pitch float64, caption string) Scene {
	s := Scene{Scales: sc, Colors: cm, Radius: radius, LegendPitch: pitch, Caption: caption}
	for _, m := range set.Markers() {
		if !m.Visible() {
			continue
		}
		p := m.Target()
		s.Dots = append(s.Dots, Dot{Row: m.Row, X: p.X, Y: p.Y, Color: p.Color})
	}
	return s
}

// Format is a snapshot file format.
type Format int

const (
	FormatSVG Format = iota
	FormatPNG
)

func (f Format) String() string {
	if f == FormatPNG {
		return "png"
	}
	return "svg"
}

// FormatForPath picks PNG for a .png extension and SVG for anything else.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return FormatPNG
	}
	return FormatSVG
}

// WriteFile renders s to path in the format implied by its extension.
func WriteFile(path string, s Scene) error {
	return WriteFileAs(path, FormatForPath(path), s)
}

// WriteFileAs renders s to path in the given format.
func WriteFileAs(path string, format Format, s Scene) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close snapshot: %w", cerr)
		}
	}()

	switch format {
	case FormatPNG:
		err = PNG(f, s)
	default:
		err = SVG(f, s)
	}
	if err != nil {
		return err
	}
	logging.Infof("snapshot: wrote %d points as %s to %s", len(s.Dots), format, path)
	return nil
}
