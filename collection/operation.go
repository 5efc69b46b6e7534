package collection

import (
	"context"
)

// Operation is a navigation in flight. It completes exactly once.
type Operation struct {
	page int
	seq  uint64
	done chan struct{}
	err  error
}

func newOperation(page int, seq uint64) *Operation {
	return &Operation{page: page, seq: seq, done: make(chan struct{})}
}

func (o *Operation) complete(err error) {
	o.err = err
	close(o.done)
}

// Page returns the page number the operation was issued for.
func (o *Operation) Page() int { return o.page }

// Seq returns the request tag of the operation.
func (o *Operation) Seq() uint64 { return o.seq }

// Done is closed when the operation completes.
func (o *Operation) Done() <-chan struct{} { return o.done }

// Err returns the outcome once Done is closed, nil before that.
func (o *Operation) Err() error {
	select {
	case <-o.done:
		return o.err
	default:
		return nil
	}
}

// Wait blocks until the operation completes or ctx is done.
func (o *Operation) Wait(ctx context.Context) error {
	select {
	case <-o.done:
		return o.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
