package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andareed/pokeplot/logging"
)

// LoadError is returned for any failure to read or parse the input table.
// It is fatal: nothing is drawn when loading fails.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return "load dataset: " + e.Err.Error()
	}
	return fmt.Sprintf("load dataset %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

var (
	ErrEmpty         = errors.New("no header row")
	ErrMissingColumn = errors.New("missing required column")
)

// Dataset is the unfiltered table. It is immutable once loaded.
type Dataset struct {
	header *header
	Rows   []*Row
}

// Header returns the column names in file order.
func (d *Dataset) Header() []string {
	return append([]string(nil), d.header.names...)
}

func (d *Dataset) Len() int { return len(d.Rows) }

// Load reads the CSV file at path. There is exactly one attempt.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	ds, err := Parse(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	logging.Infof("dataset: loaded %d rows from %s", ds.Len(), path)
	return ds, nil
}

// Parse reads a CSV table whose first row names the fields.
func Parse(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, &LoadError{Err: fmt.Errorf("error reading CSV: %w", err)}
	}
	if len(records) == 0 {
		return nil, &LoadError{Err: ErrEmpty}
	}

	names := make([]string, len(records[0]))
	for i, n := range records[0] {
		if i == 0 {
			n = strings.TrimPrefix(n, "\ufeff")
		}
		names[i] = strings.TrimSpace(n)
	}
	h := newHeader(names)
	for _, req := range RequiredFields {
		if _, ok := h.index[req]; !ok {
			return nil, &LoadError{Err: fmt.Errorf("%w %q", ErrMissingColumn, req)}
		}
	}

	ds := &Dataset{header: h, Rows: make([]*Row, 0, len(records)-1)}
	for i, rec := range records[1:] {
		ds.Rows = append(ds.Rows, &Row{Index: i, header: h, cols: rec})
	}
	return ds, nil
}
