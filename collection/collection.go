package collection

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/google/go-querystring/query"
	"github.com/ncobase/nasadmin/logging/logger"
	"github.com/ncobase/nasadmin/paging"
)

// DefaultPageSize is used when Options.PageSize is zero.
const DefaultPageSize = paging.DefaultPageSize

// Options configures a Collection
type Options struct {
	// PageSize is the initial page size; zero means DefaultPageSize.
	PageSize int
	// BaseURL resolves the list endpoint. Required before the first fetch.
	BaseURL URLResolver
	// EchoCount sends the last known total back as the count parameter.
	EchoCount bool
	// Logger defaults to logger.StdLogger().
	Logger *logger.Logger
}

// queryParams is the query sent with every fetch
type queryParams struct {
	Page     int    `url:"page"`
	Format   string `url:"format"`
	PageSize int    `url:"page_size"`
	Count    *int   `url:"count,omitempty"`
}

// Collection holds one page of a server-backed list and turns page
// navigation into fetches. It is safe for concurrent use; only the response
// to the most recent navigation is ever applied.
type Collection[T any] struct {
	fetcher   Fetcher[T]
	baseURL   URLResolver
	echoCount bool
	logger    *logger.Logger

	mu         sync.Mutex
	items      []T
	totalCount int
	pageNumber int
	pageSize   int
	fetched    bool
	status     Status
	seq        uint64
	lastErr    error

	subsMu sync.Mutex
	subs   map[uint64]func(Snapshot[T])
	subID  uint64

	// notifyMu serializes subscriber calls; notified is the seq of the
	// last delivered snapshot.
	notifyMu sync.Mutex
	notified uint64
}

// New creates a collection positioned on page 1. No request is made.
func New[T any](fetcher Fetcher[T], opts *Options) (*Collection[T], error) {
	if fetcher == nil {
		return nil, fmt.Errorf("%w: nil fetcher", ErrInvalidArgument)
	}
	if opts == nil {
		opts = &Options{}
	}

	size := opts.PageSize
	if size == 0 {
		size = DefaultPageSize
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: page size %d", ErrInvalidArgument, size)
	}

	l := opts.Logger
	if l == nil {
		l = logger.StdLogger()
	}

	return &Collection[T]{
		fetcher:    fetcher,
		baseURL:    opts.BaseURL,
		echoCount:  opts.EchoCount,
		logger:     l,
		items:      make([]T, 0),
		totalCount: paging.UnknownCount,
		pageNumber: 1,
		pageSize:   size,
		status:     Unfetched,
		subs:       make(map[uint64]func(Snapshot[T])),
	}, nil
}

// SetPageSize changes the page size used by subsequent fetches. It does
// not fetch; call Fetch to apply it.
func (c *Collection[T]) SetPageSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: page size %d", ErrInvalidArgument, n)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pageSize = n
	return nil
}

// ExtraParams returns the query parameters for the current state.
func (c *Collection[T]) ExtraParams() url.Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paramsLocked(c.windowLocked())
}

// ResolveURL returns the fetch target for the current state.
func (c *Collection[T]) ResolveURL() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolveLocked(c.windowLocked())
}

// ParseResponse records the server's total, marks the collection as
// fetched and makes the page's records the new Items, truncated to the page
// size. It returns the applied records. Subscribers are not notified.
func (c *Collection[T]) ParseResponse(res paging.Result[T]) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.applyLocked(context.Background(), res)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(items))
	copy(out, items)
	return out, nil
}

// PageInfo returns page metadata for the current state. Before the first
// fetch the entry count is unknown and there is no next page.
func (c *Collection[T]) PageInfo() paging.Info {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.windowLocked().Info()
}

// NextPage moves to the following page. A nil Operation with a nil error
// means there is no next page; nothing was changed or fetched.
func (c *Collection[T]) NextPage(ctx context.Context) (*Operation, error) {
	return c.step(ctx, func(info paging.Info) int { return info.Next })
}

// PrevPage moves to the preceding page, symmetric with NextPage.
func (c *Collection[T]) PrevPage(ctx context.Context) (*Operation, error) {
	return c.step(ctx, func(info paging.Info) int { return info.Prev })
}

func (c *Collection[T]) step(ctx context.Context, target func(paging.Info) int) (*Operation, error) {
	c.mu.Lock()
	page := target(c.windowLocked().Info())
	if page == 0 {
		c.mu.Unlock()
		return nil, nil
	}
	// a page size change can leave the current page past the end
	if c.fetched {
		page = min(page, c.lastPageLocked())
	}
	op, req, err := c.beginLocked(page)
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	go c.run(ctx, op, req)
	return op, nil
}

// GoToPage moves to page n and fetches it. n must be at least 1 and, once
// the total is known, no greater than max(1, PageCount).
func (c *Collection[T]) GoToPage(ctx context.Context, n int) (*Operation, error) {
	c.mu.Lock()
	if err := c.checkPageLocked(n); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	op, req, err := c.beginLocked(n)
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	go c.run(ctx, op, req)
	return op, nil
}

// Fetch (re)loads the current page.
func (c *Collection[T]) Fetch(ctx context.Context) (*Operation, error) {
	c.mu.Lock()
	op, req, err := c.beginLocked(c.pageNumber)
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	go c.run(ctx, op, req)
	return op, nil
}

// Items returns a copy of the loaded page.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Window returns the current paging state.
func (c *Collection[T]) Window() Window {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.windowLocked()
}

// Status returns the request state.
func (c *Collection[T]) Status() Status { return c.Window().Status }

// Fetched reports whether a fetch has ever succeeded.
func (c *Collection[T]) Fetched() bool { return c.Window().Fetched }

// Err returns the error of the latest navigation when Status is Failed.
func (c *Collection[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Subscribe registers fn to be called after every applied fetch. Calls are
// never concurrent and arrive in navigation order; a snapshot superseded by
// one already delivered is skipped. The returned function removes the
// subscription.
func (c *Collection[T]) Subscribe(fn func(Snapshot[T])) func() {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	c.subID++
	id := c.subID
	c.subs[id] = fn
	return func() {
		c.subsMu.Lock()
		defer c.subsMu.Unlock()
		delete(c.subs, id)
	}
}

func (c *Collection[T]) windowLocked() Window {
	return Window{
		PageNumber: c.pageNumber,
		PageSize:   c.pageSize,
		TotalCount: c.totalCount,
		Fetched:    c.fetched,
		Status:     c.status,
	}
}

func (c *Collection[T]) paramsLocked(w Window) url.Values {
	p := queryParams{Page: w.PageNumber, Format: "json", PageSize: w.PageSize}
	if c.echoCount && w.Fetched {
		count := w.TotalCount
		p.Count = &count
	}
	// query.Values only fails for non-struct input
	values, _ := query.Values(p)
	return values
}

func (c *Collection[T]) resolveLocked(w Window) (string, error) {
	if c.baseURL == nil {
		return "", fmt.Errorf("%w: no base url", ErrInvalidArgument)
	}
	base, err := c.baseURL.Resolve(w)
	if err != nil {
		return "", fmt.Errorf("%w: resolve url: %w", ErrInvalidArgument, err)
	}
	return mergeQuery(base, c.paramsLocked(w))
}

func (c *Collection[T]) checkPageLocked(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: page %d", ErrInvalidArgument, n)
	}
	if c.fetched {
		if last := c.lastPageLocked(); n > last {
			return fmt.Errorf("%w: page %d of %d", ErrInvalidArgument, n, last)
		}
	}
	return nil
}

func (c *Collection[T]) lastPageLocked() int {
	return max(1, paging.PageCount(c.totalCount, c.pageSize))
}

// beginLocked resolves the request for page and only then commits the
// navigation, so a resolution error leaves the state untouched.
func (c *Collection[T]) beginLocked(page int) (*Operation, Request, error) {
	w := c.windowLocked()
	w.PageNumber = page
	target, err := c.resolveLocked(w)
	if err != nil {
		return nil, Request{}, err
	}

	c.pageNumber = page
	c.seq++
	c.status = Fetching

	op := newOperation(page, c.seq)
	return op, Request{URL: target, Page: page, PageSize: c.pageSize, Seq: c.seq}, nil
}

func (c *Collection[T]) run(ctx context.Context, op *Operation, req Request) {
	res, err := c.fetcher.Fetch(ctx, req)
	snap, applied, opErr := c.finish(ctx, req, res, err)
	if applied {
		c.notify(req.Seq, snap)
	}
	op.complete(opErr)
}

func (c *Collection[T]) finish(ctx context.Context, req Request, res paging.Result[T], fetchErr error) (Snapshot[T], bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if req.Seq != c.seq {
		c.logger.Debugf(ctx, "discarding response for page %d (request %d, current %d)", req.Page, req.Seq, c.seq)
		return Snapshot[T]{}, false, fmt.Errorf("%w: page %d", ErrStaleResponse, req.Page)
	}

	if fetchErr != nil {
		return Snapshot[T]{}, false, c.failLocked(ctx, req, fetchErr)
	}

	items, err := c.applyLocked(ctx, res)
	if err != nil {
		return Snapshot[T]{}, false, c.failLocked(ctx, req, err)
	}
	c.status = Loaded
	c.lastErr = nil

	snap := Snapshot[T]{Window: c.windowLocked(), Items: make([]T, len(items))}
	copy(snap.Items, items)
	return snap, true, nil
}

func (c *Collection[T]) failLocked(ctx context.Context, req Request, err error) error {
	if !isFetchFailed(err) {
		err = fmt.Errorf("%w: page %d: %w", ErrFetchFailed, req.Page, err)
	}
	c.status = Failed
	c.lastErr = err
	c.logger.Warnf(ctx, "fetching %s: %v", req.URL, err)
	return err
}

func (c *Collection[T]) applyLocked(ctx context.Context, res paging.Result[T]) ([]T, error) {
	if res.Count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrFetchFailed, res.Count)
	}
	c.totalCount = res.Count
	c.fetched = true

	items := res.Results
	if items == nil {
		items = make([]T, 0)
	}
	if len(items) > c.pageSize {
		c.logger.Warnf(ctx, "page %d returned %d records for page size %d, truncating", c.pageNumber, len(items), c.pageSize)
		items = items[:c.pageSize]
	}
	c.items = items
	return items, nil
}

// notify delivers snap to subscribers one at a time. A snapshot older than
// the last delivered one is dropped.
func (c *Collection[T]) notify(seq uint64, snap Snapshot[T]) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	if seq <= c.notified {
		return
	}
	c.notified = seq

	c.subsMu.Lock()
	fns := make([]func(Snapshot[T]), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subsMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
