package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/pokeplot/dataset"
)

// Dropdown is a single-choice control. While open, the highlight moves
// freely; only Commit changes the value.
type Dropdown struct {
	Name    string
	Label   string
	Options []string

	selected  int
	highlight int
	open      bool
}

func newDropdown(name, label string, options []string, initial string) (*Dropdown, error) {
	d := &Dropdown{Name: name, Label: label, Options: options}
	idx := d.indexOf(initial)
	if idx < 0 {
		return nil, fmt.Errorf("%s: %q is not one of %s", name, initial, strings.Join(options, ","))
	}
	d.selected, d.highlight = idx, idx
	return d, nil
}

func (d *Dropdown) indexOf(v string) int {
	for i, o := range d.Options {
		if o == v {
			return i
		}
	}
	return -1
}

func (d *Dropdown) Value() string { return d.Options[d.selected] }
func (d *Dropdown) IsOpen() bool  { return d.open }

func (d *Dropdown) Open() {
	d.open = true
	d.highlight = d.selected
}

// Cancel closes without changing the value.
func (d *Dropdown) Cancel() {
	d.open = false
	d.highlight = d.selected
}

func (d *Dropdown) Move(delta int) {
	n := len(d.Options)
	d.highlight = ((d.highlight+delta)%n + n) % n
}

// Commit closes the dropdown and takes the highlighted option. It reports
// whether the value changed.
func (d *Dropdown) Commit() bool {
	d.open = false
	changed := d.highlight != d.selected
	d.selected = d.highlight
	return changed
}

// choose highlights option i and commits it.
func (d *Dropdown) choose(i int) bool {
	if i < 0 || i >= len(d.Options) {
		return false
	}
	d.highlight = i
	return d.Commit()
}

// controlZone is a clickable span of the control bar, in cells from its
// left edge. option is -1 for a dropdown's label.
type controlZone struct {
	x0, x1   int
	dropdown *Dropdown
	option   int
}

type controlPanel struct {
	generation *Dropdown
	legendary  *Dropdown
	zones      []controlZone
}

func newControlPanel(c dataset.Criteria) (*controlPanel, error) {
	gen, err := newDropdown("generation", "Generation", dataset.GenerationOptions, c.Generation)
	if err != nil {
		return nil, err
	}
	leg, err := newDropdown("legendary", "Legendary", dataset.LegendaryOptions, c.Legendary)
	if err != nil {
		return nil, err
	}
	return &controlPanel{generation: gen, legendary: leg}, nil
}

// Criteria reads the current value of both dropdowns.
func (p *controlPanel) Criteria() dataset.Criteria {
	return dataset.Criteria{Generation: p.generation.Value(), Legendary: p.legendary.Value()}
}

func (p *controlPanel) dropdowns() []*Dropdown {
	return []*Dropdown{p.generation, p.legendary}
}

// active returns the open dropdown, if any.
func (p *controlPanel) active() *Dropdown {
	for _, d := range p.dropdowns() {
		if d.IsOpen() {
			return d
		}
	}
	return nil
}

func (p *controlPanel) open(d *Dropdown) {
	for _, o := range p.dropdowns() {
		if o != d {
			o.Cancel()
		}
	}
	d.Open()
}

// zoneAt returns the zone under cell x.
func (p *controlPanel) zoneAt(x int) (controlZone, bool) {
	for _, z := range p.zones {
		if x >= z.x0 && x < z.x1 {
			return z, true
		}
	}
	return controlZone{}, false
}

// View renders the control bar and records its click zones.
func (p *controlPanel) View() string {
	p.zones = p.zones[:0]
	var b strings.Builder
	x := 0
	put := func(s string, d *Dropdown, option int) {
		w := lipgloss.Width(s)
		if d != nil {
			p.zones = append(p.zones, controlZone{x0: x, x1: x + w, dropdown: d, option: option})
		}
		b.WriteString(s)
		x += w
	}

	for i, d := range p.dropdowns() {
		if i > 0 {
			put("   ", nil, 0)
		}
		if !d.IsOpen() {
			put(controlLabelStyle.Render(d.Label+" ▾ ")+controlValueStyle.Render(d.Value()), d, -1)
			continue
		}
		put(controlLabelStyle.Render(d.Label+" ▴ "), d, -1)
		for j, o := range d.Options {
			st := controlOptionStyle
			switch {
			case j == d.highlight:
				st = controlHighlightStyle
			case j == d.selected:
				st = controlValueStyle
			}
			put(st.Render(" "+o+" "), d, j)
		}
	}
	return b.String()
}
