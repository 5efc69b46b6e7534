package collection

import (
	"github.com/ncobase/nasadmin/paging"
)

// Status is the request state of a collection
type Status int

const (
	// Unfetched means no fetch has completed or been started.
	Unfetched Status = iota
	// Fetching means the latest navigation has a request in flight.
	Fetching
	// Loaded means the latest navigation was applied.
	Loaded
	// Failed means the latest navigation's fetch failed.
	Failed
)

func (s Status) String() string {
	switch s {
	case Unfetched:
		return "unfetched"
	case Fetching:
		return "fetching"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Window is a copy of the paging state of a collection, without its items
type Window struct {
	PageNumber int
	PageSize   int
	TotalCount int
	Fetched    bool
	Status     Status
}

// Info computes page metadata for the window
func (w Window) Info() paging.Info {
	return paging.NewInfo(w.TotalCount, w.PageNumber, w.PageSize)
}

// Snapshot is delivered to subscribers after every applied fetch
type Snapshot[T any] struct {
	Window
	Items []T
}
