// Package dataset loads the Pokémon table and filters it by generation and
// legendary status.
package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Column names the plot depends on.
const (
	FieldName       = "Name"
	FieldType1      = "Type 1"
	FieldType2      = "Type 2"
	FieldGeneration = "Generation"
	FieldLegendary  = "Legendary"
	FieldSpDef      = "Sp. Def"
	FieldTotal      = "Total"
)

// RequiredFields must all be present in the header.
var RequiredFields = []string{
	FieldName, FieldType1, FieldType2, FieldGeneration, FieldLegendary, FieldSpDef, FieldTotal,
}

// Row is one record of the table. Rows are never mutated after load; the
// Index is the row's position in the unfiltered dataset and serves as its
// identity.
type Row struct {
	Index  int
	header *header
	cols   []string
}

type header struct {
	names []string
	index map[string]int
}

func newHeader(names []string) *header {
	h := &header{names: names, index: make(map[string]int, len(names))}
	for i, n := range names {
		if _, dup := h.index[n]; !dup {
			h.index[n] = i
		}
	}
	return h
}

// Get returns the raw value of field, or "" if the column does not exist.
func (r *Row) Get(field string) string {
	if r == nil || r.header == nil {
		return ""
	}
	i, ok := r.header.index[field]
	if !ok || i >= len(r.cols) {
		return ""
	}
	return r.cols[i]
}

func (r *Row) Name() string       { return r.Get(FieldName) }
func (r *Row) Type1() string      { return r.Get(FieldType1) }
func (r *Row) Type2() string      { return r.Get(FieldType2) }
func (r *Row) Generation() string { return r.Get(FieldGeneration) }
func (r *Row) Legendary() string  { return r.Get(FieldLegendary) }

// Float parses field on demand. Unparseable or missing values are NaN.
func (r *Row) Float(field string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(r.Get(field)), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Cols returns a copy of the raw values in header order.
func (r *Row) Cols() []string {
	return append([]string(nil), r.cols...)
}

// Label is the tooltip form "Name: Type1 Type2".
func (r *Row) Label() string {
	return strings.TrimSpace(r.Name() + ": " + r.Type1() + " " + r.Type2())
}

// String implements fmt.Stringer.
func (r *Row) String() string {
	return strings.Join(r.cols, "\t")
}
