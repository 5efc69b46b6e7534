package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ncobase/nasadmin/cache"
	"github.com/ncobase/nasadmin/collection"
	"github.com/ncobase/nasadmin/config"
	"github.com/ncobase/nasadmin/ctxutil"
	"github.com/ncobase/nasadmin/logging/logger"
	"github.com/ncobase/nasadmin/net/resp"
	"github.com/ncobase/nasadmin/observes"
	"github.com/ncobase/nasadmin/paging"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
)

// maxErrorBody caps how much of a failed response is read
const maxErrorBody = 4 << 10

// cachePrefix namespaces cached pages in redis
const cachePrefix = "nasadmin:pages"

type options struct {
	httpClient *http.Client
	redis      *redis.Client
	logger     *logger.Logger
}

// Option configures a Fetcher
type Option func(*options)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithRedis enables the page cache. It has no effect unless the client
// config sets a positive cache TTL.
func WithRedis(rc *redis.Client) Option {
	return func(o *options) { o.redis = rc }
}

// WithLogger sets the logger, logger.StdLogger() by default
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Fetcher loads list pages over HTTP
type Fetcher[T any] struct {
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	pages   *cache.Cache[paging.Result[T]]
	logger  *logger.Logger
}

var _ collection.Fetcher[struct{}] = (*Fetcher[struct{}])(nil)

// New creates a Fetcher from the client config
func New[T any](cfg *config.Client, opts ...Option) *Fetcher[T] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.StdLogger()
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	f := &Fetcher[T]{
		http:   o.httpClient,
		logger: o.logger,
	}
	if cfg.CacheTTL > 0 {
		f.pages = cache.NewCache[paging.Result[T]](o.redis, cachePrefix, cfg.CacheTTL)
	}
	if cfg.Breaker != nil && cfg.Breaker.Enabled {
		f.breaker = newBreaker(cfg.Breaker, o.logger)
	}
	return f
}

func newBreaker(cfg *config.Breaker, l *logger.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "nasadmin-client",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.MinRequests && failureRatio >= cfg.FailureRatio
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !isServerFailure(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			l.Warnf(context.Background(), "circuit breaker %s: %s -> %s", name, from, to)
		},
	})
}

// Fetch implements collection.Fetcher
func (f *Fetcher[T]) Fetch(ctx context.Context, req collection.Request) (res paging.Result[T], err error) {
	ctx, span := observes.StartSpan(ctx, "client.Fetch",
		attribute.String("http.url", req.URL),
		attribute.Int("page", req.Page),
		attribute.Int("page_size", req.PageSize),
	)
	defer func() { observes.EndSpan(span, err) }()

	if f.pages.Enabled() {
		cached, cerr := f.pages.Get(ctx, req.URL)
		if cerr != nil {
			f.logger.Warnf(ctx, "page cache lookup %s: %v", req.URL, cerr)
		} else if cached != nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return *cached, nil
		}
	}

	res, err = f.execute(ctx, req.URL)
	if err != nil {
		return res, err
	}

	if f.pages.Enabled() {
		if cerr := f.pages.Set(ctx, req.URL, &res); cerr != nil {
			f.logger.Warnf(ctx, "page cache store %s: %v", req.URL, cerr)
		}
	}
	return res, nil
}

func (f *Fetcher[T]) execute(ctx context.Context, target string) (paging.Result[T], error) {
	if f.breaker == nil {
		return f.get(ctx, target)
	}

	out, err := f.breaker.Execute(func() (any, error) {
		return f.get(ctx, target)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return paging.Result[T]{}, fmt.Errorf("%w: %s: %w", ErrCircuitOpen, target, err)
		}
		return paging.Result[T]{}, err
	}
	return out.(paging.Result[T]), nil
}

func (f *Fetcher[T]) get(ctx context.Context, target string) (paging.Result[T], error) {
	var res paging.Result[T]

	r, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return res, fmt.Errorf("build request: %w", err)
	}
	r.Header.Set("Accept", "application/json")
	ctxutil.InjectTraceID(ctx, r)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(r.Header))

	start := time.Now()
	rsp, err := f.http.Do(r)
	if err != nil {
		return res, fmt.Errorf("GET %s: %w", target, err)
	}
	defer rsp.Body.Close()
	f.logger.Debugf(ctx, "GET %s %d in %s", target, rsp.StatusCode, time.Since(start))

	if rsp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(rsp.Body, maxErrorBody))
		return res, &StatusError{URL: target, Exception: resp.Decode(rsp.StatusCode, body)}
	}

	if err := json.NewDecoder(rsp.Body).Decode(&res); err != nil {
		return res, fmt.Errorf("decode %s: %w", target, err)
	}
	return res, nil
}
