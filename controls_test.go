package main

import (
	"testing"

	"github.com/andareed/pokeplot/dataset"
)

func TestDropdownMoveAndCommit(t *testing.T) {
	d, err := newDropdown("legendary", "Legendary", dataset.LegendaryOptions, dataset.All)
	if err != nil {
		t.Fatalf("newDropdown: %v", err)
	}
	d.Open()
	d.Move(-1)
	if d.Value() != dataset.All {
		t.Fatalf("moving must not change the value before commit")
	}
	if !d.Commit() || d.Value() != "False" || d.IsOpen() {
		t.Fatalf("commit: value %q open %v", d.Value(), d.IsOpen())
	}

	d.Open()
	d.Move(3)
	if d.Commit() {
		t.Fatalf("a full cycle should not change the value")
	}

	d.Open()
	d.Move(1)
	d.Cancel()
	if d.Value() != "False" || d.IsOpen() {
		t.Fatalf("cancel changed the value")
	}
}

func TestDropdownRejectsUnknownInitial(t *testing.T) {
	if _, err := newDropdown("generation", "Generation", dataset.GenerationOptions, "7"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestControlPanelOpenIsExclusive(t *testing.T) {
	p, err := newControlPanel(dataset.Criteria{Generation: "3", Legendary: "True"})
	if err != nil {
		t.Fatalf("newControlPanel: %v", err)
	}
	if c := p.Criteria(); c.Generation != "3" || c.Legendary != "True" {
		t.Fatalf("criteria %v", c)
	}
	p.open(p.generation)
	p.open(p.legendary)
	if p.generation.IsOpen() || p.active() != p.legendary {
		t.Fatalf("only one dropdown may be open")
	}
}

func TestControlPanelZones(t *testing.T) {
	p, err := newControlPanel(dataset.AllRows)
	if err != nil {
		t.Fatalf("newControlPanel: %v", err)
	}
	p.View()
	if len(p.zones) != 2 {
		t.Fatalf("closed panel zones: %+v", p.zones)
	}
	z, ok := p.zoneAt(0)
	if !ok || z.dropdown != p.generation || z.option != -1 {
		t.Fatalf("zoneAt(0) = %+v %v", z, ok)
	}

	p.open(p.legendary)
	p.View()
	options := 0
	for _, z := range p.zones {
		if z.dropdown == p.legendary && z.option >= 0 {
			options++
		}
	}
	if options != len(dataset.LegendaryOptions) {
		t.Fatalf("open dropdown should expose every option, got %d", options)
	}
	last := p.zones[len(p.zones)-1]
	if got, ok := p.zoneAt(last.x1 - 1); !ok || got.option != len(dataset.LegendaryOptions)-1 {
		t.Fatalf("last option zone %+v", got)
	}
	if _, ok := p.zoneAt(last.x1 + 5); ok {
		t.Fatalf("no zone expected past the panel")
	}
}
