package main

import (
	"github.com/andareed/pokeplot/dataset"
	"github.com/andareed/pokeplot/plot"
)

// dataState is everything derived from the loaded table. It is empty until
// the load completes.
type dataState struct {
	loaded   bool
	loadErr  error
	ds       *dataset.Dataset
	scales   plot.Scales
	colors   *plot.ColorMap
	criteria dataset.Criteria
	filtered []*dataset.Row
	markers  *plot.MarkerSet
}

// row returns the dataset row with index key.
func (d *dataState) row(key int) (*dataset.Row, bool) {
	if d.ds == nil || key < 0 || key >= len(d.ds.Rows) {
		return nil, false
	}
	return d.ds.Rows[key], true
}

// filteredPos returns the position of key in the filtered rows, or -1.
func (d *dataState) filteredPos(key int) int {
	for i, r := range d.filtered {
		if r.Index == key {
			return i
		}
	}
	return -1
}
