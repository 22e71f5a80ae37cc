package main

import (
	"time"

	"github.com/andareed/pokeplot/dataset"
)

// Everything the dispatcher reacts to arrives as one of these, or as a
// bubbletea key, mouse or window message.
type (
	datasetLoadedMsg struct {
		seq int
		ds  *dataset.Dataset
	}
	loadFailedMsg struct {
		seq int
		err error
	}

	// filterChangedMsg carries no values; the handler reads both dropdowns.
	filterChangedMsg struct{ source string }

	hoverStartMsg struct {
		key    int
		px, py float64
	}
	hoverEndMsg struct{ key int }

	frameMsg struct {
		seq int
		at  time.Time
	}

	exportDoneMsg struct {
		kind string
		path string
		err  error
	}

	copyDoneMsg struct {
		lines int
		err   error
	}
)
