package dataset

import (
	"fmt"
	"strconv"
)

// All is the criterion value that matches every row.
const All = "all"

// GenerationOptions are the generation dropdown values. The generation domain
// is fixed rather than derived from the data.
var GenerationOptions = func() []string {
	opts := []string{All}
	for g := 1; g <= 6; g++ {
		opts = append(opts, strconv.Itoa(g))
	}
	return opts
}()

// LegendaryOptions are the legendary dropdown values, matching the field's
// "True"/"False" encoding.
var LegendaryOptions = []string{All, "True", "False"}

// Criteria selects rows by generation and legendary flag.
type Criteria struct {
	Generation string
	Legendary  string
}

// AllRows is the initial criteria.
var AllRows = Criteria{Generation: All, Legendary: All}

func (c Criteria) String() string {
	return fmt.Sprintf("generation=%s legendary=%s", c.Generation, c.Legendary)
}

// Validate checks both values against the dropdown domains.
func (c Criteria) Validate() error {
	if !contains(GenerationOptions, c.Generation) {
		return fmt.Errorf("unknown generation %q", c.Generation)
	}
	if !contains(LegendaryOptions, c.Legendary) {
		return fmt.Errorf("unknown legendary value %q", c.Legendary)
	}
	return nil
}

// Match reports whether r satisfies c.
func (c Criteria) Match(r *Row) bool {
	if c.Generation != All && r.Generation() != c.Generation {
		return false
	}
	if c.Legendary != All && r.Legendary() != c.Legendary {
		return false
	}
	return true
}

// Filter returns the rows of ds matching c in their original order. It never
// returns nil, so an empty result is distinguishable from "not computed".
func Filter(ds *Dataset, c Criteria) []*Row {
	out := make([]*Row, 0, len(ds.Rows))
	for _, r := range ds.Rows {
		if c.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

func contains(opts []string, v string) bool {
	for _, o := range opts {
		if o == v {
			return true
		}
	}
	return false
}
