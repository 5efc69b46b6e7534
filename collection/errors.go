package collection

import "errors"

var (
	// ErrInvalidArgument reports a non-positive page size or a navigation
	// target outside the known page bounds.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrFetchFailed wraps any failure reported by the fetch collaborator.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrStaleResponse completes an operation whose response arrived after a
	// newer navigation superseded it. The response is never applied.
	ErrStaleResponse = errors.New("stale response")
)

func isFetchFailed(err error) bool {
	return errors.Is(err, ErrFetchFailed)
}
