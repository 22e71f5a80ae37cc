package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/andareed/pokeplot/dataset"
	"github.com/andareed/pokeplot/plot"
)

// Config holds the tunables that may be overridden from a YAML file. Any key
// left out of the file keeps its default.
type Config struct {
	Surface struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
		Margin float64 `yaml:"margin"`
	} `yaml:"surface"`

	XField string `yaml:"x_field"`
	YField string `yaml:"y_field"`

	MarkerRadius   float64       `yaml:"marker_radius"`
	Transition     time.Duration `yaml:"transition"`
	TooltipFadeIn  time.Duration `yaml:"tooltip_fade_in"`
	TooltipFadeOut time.Duration `yaml:"tooltip_fade_out"`
	TooltipOffset  float64       `yaml:"tooltip_offset"`
	LegendPitch    float64       `yaml:"legend_pitch"`

	// Colors are merged over the built-in palette.
	Colors        map[string]string `yaml:"colors"`
	FallbackColor string            `yaml:"fallback_color"`
}

func defaultConfig() Config {
	var c Config
	c.Surface.Width = plot.DefaultSurface.Width
	c.Surface.Height = plot.DefaultSurface.Height
	c.Surface.Margin = plot.DefaultSurface.Margin
	c.XField = dataset.FieldSpDef
	c.YField = dataset.FieldTotal
	c.MarkerRadius = plot.MarkerRadius
	c.Transition = plot.TransitionDuration
	c.TooltipFadeIn = plot.TooltipFadeIn
	c.TooltipFadeOut = plot.TooltipFadeOut
	c.TooltipOffset = plot.TooltipOffset
	c.LegendPitch = 25
	c.Colors = plot.DefaultColors()
	c.FallbackColor = plot.FallbackColor
	return c
}

// loadConfig reads path over the defaults. An empty path returns the
// defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the plot cannot be drawn with.
func (c Config) Validate() error {
	s := c.Surface
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("surface size %gx%g must be positive", s.Width, s.Height)
	case s.Margin < 0:
		return fmt.Errorf("surface margin %g is negative", s.Margin)
	case 2*s.Margin >= s.Width || 2*s.Margin >= s.Height:
		return fmt.Errorf("surface margin %g leaves no room to plot in %gx%g", s.Margin, s.Width, s.Height)
	case c.XField == "" || c.YField == "":
		return errors.New("x_field and y_field are required")
	case c.MarkerRadius <= 0:
		return fmt.Errorf("marker_radius %g must be positive", c.MarkerRadius)
	case c.LegendPitch <= 0:
		return fmt.Errorf("legend_pitch %g must be positive", c.LegendPitch)
	case c.Transition < 0 || c.TooltipFadeIn < 0 || c.TooltipFadeOut < 0:
		return errors.New("durations must not be negative")
	}
	if _, err := c.ColorMap(); err != nil {
		return err
	}
	return nil
}

func (c Config) surface() plot.Surface {
	return plot.Surface{Width: c.Surface.Width, Height: c.Surface.Height, Margin: c.Surface.Margin}
}

func (c Config) tooltip() plot.TooltipConfig {
	return plot.TooltipConfig{
		FadeIn:  c.TooltipFadeIn,
		FadeOut: c.TooltipFadeOut,
		Offset:  c.TooltipOffset,
		XField:  c.XField,
		YField:  c.YField,
	}
}

// ColorMap builds the validated color map.
func (c Config) ColorMap() (*plot.ColorMap, error) {
	return plot.NewColorMap(c.Colors, c.FallbackColor)
}
