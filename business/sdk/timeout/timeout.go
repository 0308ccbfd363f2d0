// Package timeout races an operation against a fixed timer.
package timeout

import (
	"context"
	"errors"
	"time"
)

// ErrTimeout is returned when the timer fires before the operation
// produces a result.
var ErrTimeout = errors.New("operation timed out")

type result[T any] struct {
	value T
	err   error
}

// Run executes fn and waits at most d for its result. On timeout the
// operation is abandoned, not cancelled: fn keeps running in its own
// goroutine and a late result is discarded. Callers that need transport
// level cancellation must arrange it themselves through ctx.
func Run[T any](ctx context.Context, d time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	ch := make(chan result[T], 1)

	go func() {
		v, err := fn(ctx)
		ch <- result[T]{value: v, err: err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case res := <-ch:
		return res.value, res.err

	case <-timer.C:
		var zero T
		return zero, ErrTimeout

	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
