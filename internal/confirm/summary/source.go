package summary

import (
	"context"
	"fmt"
	"iter"

	"golang.org/x/sync/errgroup"
)

// FromSlice returns a factory yielding items in order on every call.
func FromSlice[T any](items []T) func(context.Context) iter.Seq2[T, error] {
	return func(context.Context) iter.Seq2[T, error] {
		return func(yield func(T, error) bool) {
			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

// Failing returns a factory whose sequence fails immediately with err.
func Failing[T any](err error) func(context.Context) iter.Seq2[T, error] {
	return func(context.Context) iter.Seq2[T, error] {
		return func(yield func(T, error) bool) {
			var zero T
			yield(zero, err)
		}
	}
}

// Async returns a factory whose sequence is fed by produce running on its
// own goroutine.
//
// produce must hand every item to emit and stop when emit returns an error.
// Items are yielded in emission order; an error returned by produce is
// yielded after the last item. When the consumer stops early the producer's
// context is cancelled and the sequence waits for it to return.
func Async[T any](produce func(ctx context.Context, emit func(T) error) error) func(context.Context) iter.Seq2[T, error] {
	return func(ctx context.Context) iter.Seq2[T, error] {
		return func(yield func(T, error) bool) {
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			items := make(chan T)
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() (err error) {
				defer close(items)
				defer func() {
					if rvr := recover(); rvr != nil {
						err = fmt.Errorf("producer panicked: %v", rvr)
					}
				}()

				return produce(gctx, func(item T) error {
					select {
					case items <- item:
						return nil
					case <-gctx.Done():
						return gctx.Err()
					}
				})
			})

			for item := range items {
				if !yield(item, nil) {
					cancel()
					//nolint:errcheck // the consumer is gone, nobody reads the error
					g.Wait()
					return
				}
			}

			if err := g.Wait(); err != nil {
				var zero T
				yield(zero, err)
			}
		}
	}
}
