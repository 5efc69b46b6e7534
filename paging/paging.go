package paging

import (
	"fmt"
)

const (
	// DefaultPageSize is used when a caller does not configure a page size.
	DefaultPageSize = 10
	// MaxPageSize caps server-side page sizes.
	MaxPageSize = 1000
)

// Params holds the offset pagination parameters of a list request
type Params struct {
	Page     int `json:"page" form:"page" url:"page"`
	PageSize int `json:"page_size" form:"page_size" url:"page_size"`
}

// Result is the list envelope exchanged with list endpoints
type Result[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

// NormalizeParams ensures Page and PageSize are within an acceptable range
func NormalizeParams(params Params) Params {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.PageSize <= 0 {
		params.PageSize = DefaultPageSize
	}
	if params.PageSize > MaxPageSize {
		params.PageSize = MaxPageSize
	}
	return params
}

// Offset returns the zero-based index of the first record on page.
func Offset(page, size int) int {
	if page < 1 || size < 1 {
		return 0
	}
	return (page - 1) * size
}

// PageCount returns ceil(total / size), or 0 when total is zero or unknown.
func PageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// PagingFunc loads one window of records and the total they are drawn from
type PagingFunc[T any] func(offset, limit int) (items []T, total int, err error)

// Paginate applies pagination using the provided PagingFunc
func Paginate[T any](params Params, paginateFunc PagingFunc[T]) (*Result[T], error) {
	params = NormalizeParams(params)
	items, total, err := paginateFunc(Offset(params.Page, params.PageSize), params.PageSize)
	if err != nil {
		return nil, fmt.Errorf("pagination error: %w", err)
	}

	if len(items) > params.PageSize {
		items = items[:params.PageSize]
	}

	if items == nil {
		items = make([]T, 0)
	}

	return &Result[T]{
		Count:   total,
		Results: items,
	}, nil
}

// NoopPagingFunc is a noop paging function
func NoopPagingFunc[T any](offset, limit int) ([]T, int, error) {
	return nil, 0, nil
}
