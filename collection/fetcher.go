package collection

import (
	"context"

	"github.com/ncobase/nasadmin/paging"
)

// Request describes one page fetch issued by a collection
type Request struct {
	URL      string
	Page     int
	PageSize int
	Seq      uint64
}

// Fetcher transfers one page of records. Implementations live outside this
// package; the HTTP one is client.Fetcher.
type Fetcher[T any] interface {
	Fetch(ctx context.Context, req Request) (paging.Result[T], error)
}

// FetcherFunc adapts a function to the Fetcher interface
type FetcherFunc[T any] func(ctx context.Context, req Request) (paging.Result[T], error)

// Fetch implements Fetcher.
func (f FetcherFunc[T]) Fetch(ctx context.Context, req Request) (paging.Result[T], error) {
	return f(ctx, req)
}
