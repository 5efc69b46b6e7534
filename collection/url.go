package collection

import (
	"fmt"
	"net/url"
)

// URLResolver produces the list endpoint for the current window. Resolve
// runs with the collection locked and must not call back into it.
type URLResolver interface {
	Resolve(w Window) (string, error)
}

type fixedURL string

func (f fixedURL) Resolve(Window) (string, error) { return string(f), nil }

// Fixed resolves to the same endpoint for every page.
func Fixed(base string) URLResolver { return fixedURL(base) }

// ComputedFunc derives an endpoint from the window state
type ComputedFunc func(w Window) string

func (f ComputedFunc) Resolve(w Window) (string, error) { return f(w), nil }

// Computed resolves through fn, e.g. for endpoints scoped by a parent id.
func Computed(fn func(w Window) string) URLResolver { return ComputedFunc(fn) }

// mergeQuery appends params to base, overriding keys base already carries.
func mergeQuery(base string, params url.Values) (string, error) {
	if base == "" {
		return "", fmt.Errorf("%w: empty base url", ErrInvalidArgument)
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: base url %q: %v", ErrInvalidArgument, base, err)
	}
	q := u.Query()
	for key, values := range params {
		q[key] = values
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
