package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/andareed/pokeplot/plot"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokeplot.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.surface() != plot.DefaultSurface {
		t.Fatalf("surface %+v", cfg.surface())
	}
	if cfg.Transition != plot.TransitionDuration || cfg.MarkerRadius != plot.MarkerRadius {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
transition: 250ms
marker_radius: 4
surface:
  width: 800
colors:
  Fire: "#000000"
  Shadow: "#123456"
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Transition != 250*time.Millisecond || cfg.MarkerRadius != 4 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	// Unset keys keep their defaults.
	if cfg.Surface.Width != 800 || cfg.Surface.Height != plot.DefaultSurface.Height {
		t.Fatalf("surface %+v", cfg.Surface)
	}
	cm, err := cfg.ColorMap()
	if err != nil {
		t.Fatalf("ColorMap: %v", err)
	}
	if hex := cm.ResolveHex("Fire"); hex != "#000000" {
		t.Fatalf("Fire = %s", hex)
	}
	if _, ok := cm.Lookup("Shadow"); !ok {
		t.Fatalf("added type missing")
	}
	if _, ok := cm.Lookup("Water"); !ok {
		t.Fatalf("colors should merge over the palette")
	}
}

func TestLoadConfigRejects(t *testing.T) {
	cases := map[string]string{
		"margin":   "surface:\n  margin: 400\n",
		"radius":   "marker_radius: 0\n",
		"duration": "transition: -1s\n",
		"color":    "colors:\n  Fire: notacolor\n",
		"yaml":     "surface: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, body)); err == nil {
				t.Fatalf("expected error for %q", body)
			}
		})
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil || !strings.Contains(err.Error(), "reading config") {
		t.Fatalf("missing file: %v", err)
	}
}
