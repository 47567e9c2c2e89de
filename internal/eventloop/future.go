package eventloop

import (
	"context"
	"errors"
)

// Future is the settled result of an Async operation.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func Resolved[T any](val T, err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), val: val, err: err}
	close(f.done)

	return f
}

// Done is closed after the operation's loop callback has run.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Async runs work on its own goroutine and then settle on the loop with the
// outcome. The returned future resolves after settle has returned.
func Async[T any](l *Loop, work func() (T, error), settle func(T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	l.begin()
	go func() {
		val, err := work()
		f.val, f.err = val, err

		drop := func() {
			f.err = errors.Join(err, ErrStopped)
			close(f.done)
			l.end()
		}

		posted := l.post(task{
			run: func() {
				defer l.end()
				defer close(f.done)
				settle(val, err)
			},
			drop: drop,
		})
		if !posted {
			drop()
		}
	}()

	return f
}
