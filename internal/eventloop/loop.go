// Package eventloop runs callbacks one at a time on a single goroutine.
//
// State that is only touched from loop tasks needs no locking. Work that
// blocks (network calls) runs elsewhere through Async and hands its result
// back to the loop, so completions interleave with user events in the order
// they are posted.
package eventloop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/Chandanabr23/ZenBoard/pkg/logger/slogx"
)

var ErrStopped = errors.New("event loop stopped")

type logger interface {
	Error(ctx context.Context, msg string, attrs ...slog.Attr)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.2 -out-filename=loop_options.gen.go -from-struct=Options
type Options struct {
	queueSize int `default:"256" validate:"min=1"`

	logger logger
}

// task is a queued callback. drop, when set, runs instead of run if the loop
// stops before the task is picked up.
type task struct {
	run  func()
	drop func()
}

type Loop struct {
	opts    Options
	tasks   chan task
	stopped chan struct{}
	once    sync.Once

	// postMu orders Post against the final drain of tasks.
	postMu sync.RWMutex
	closed bool

	mu      sync.Mutex
	pending int
	waiters []chan struct{}
}

func New(opts Options) (*Loop, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate event loop options: %v", err)
	}

	if opts.logger == nil {
		opts.logger = slogx.Default()
	}

	return &Loop{
		opts:    opts,
		tasks:   make(chan task, opts.queueSize),
		stopped: make(chan struct{}),
	}, nil
}

// Run executes posted tasks until ctx is done. Tasks still queued at that
// point are dropped; Async operations among them settle with ErrStopped.
func (l *Loop) Run(ctx context.Context) error {
	defer l.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-l.tasks:
			l.exec(ctx, t.run)
		}
	}
}

func (l *Loop) stop() {
	l.once.Do(func() {
		close(l.stopped)

		// wait out posts racing the close, then refuse new ones
		l.postMu.Lock()
		l.closed = true
		l.postMu.Unlock()

		for {
			select {
			case t := <-l.tasks:
				if t.drop != nil {
					t.drop()
				}
			default:
				return
			}
		}
	})
}

func (l *Loop) exec(ctx context.Context, task func()) {
	defer func() {
		if v := recover(); v != nil {
			l.opts.logger.Error(
				ctx,
				"event loop task panicked",
				slog.Any("panic", v),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	task()
}

// Post enqueues fn. It reports false if the loop has stopped.
// Post must not be called from a loop task while the queue is full.
func (l *Loop) Post(fn func()) bool {
	return l.post(task{run: fn})
}

func (l *Loop) post(t task) bool {
	l.postMu.RLock()
	defer l.postMu.RUnlock()

	if l.closed {
		return false
	}

	select {
	case l.tasks <- t:
		return true
	case <-l.stopped:
		return false
	}
}

// Do runs fn on the loop and waits for it to return. It must not be called
// from a loop task.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	if !l.Post(func() {
		defer close(done)
		fn()
	}) {
		return ErrStopped
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.stopped:
		return ErrStopped
	}
}

// Idle waits until every Async operation started so far has completed and
// its callback has run.
func (l *Loop) Idle(ctx context.Context) error {
	l.mu.Lock()
	if l.pending == 0 {
		l.mu.Unlock()
		return nil
	}
	w := make(chan struct{})
	l.waiters = append(l.waiters, w)
	l.mu.Unlock()

	select {
	case <-w:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loop) begin() {
	l.mu.Lock()
	l.pending++
	l.mu.Unlock()
}

func (l *Loop) end() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending--
	if l.pending > 0 {
		return
	}
	for _, w := range l.waiters {
		close(w)
	}
	l.waiters = nil
}
