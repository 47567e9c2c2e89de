package eventloop_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chandanabr23/ZenBoard/internal/eventloop"
)

func startLoop(t *testing.T) *eventloop.Loop {
	t.Helper()

	l, err := eventloop.New(eventloop.NewOptions())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = l.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return l
}

func TestLoopRunsTasksInOrder(t *testing.T) {
	l := startLoop(t)

	var got []int
	for i := range 100 {
		require.True(t, l.Post(func() { got = append(got, i) }))
	}
	require.NoError(t, l.Do(context.Background(), func() {}))

	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestLoopSurvivesPanics(t *testing.T) {
	l := startLoop(t)

	l.Post(func() { panic("boom") })

	ran := false
	require.NoError(t, l.Do(context.Background(), func() { ran = true }))
	assert.True(t, ran)
}

func TestLoopStopped(t *testing.T) {
	l, err := eventloop.New(eventloop.NewOptions())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, l.Run(ctx))

	assert.False(t, l.Post(func() {}))
	assert.ErrorIs(t, l.Do(context.Background(), func() {}), eventloop.ErrStopped)
}

func TestAsyncQueuedAtStopStillSettles(t *testing.T) {
	for range 50 {
		l, err := eventloop.New(eventloop.NewOptions())
		require.NoError(t, err)

		var settled atomic.Bool
		f := eventloop.Async(l, func() (int, error) { return 1, nil }, func(int, error) { settled.Store(true) })

		// let the result land in the queue before the loop ever runs
		time.Sleep(2 * time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.NoError(t, l.Run(ctx))

		waitCtx, waitCancel := context.WithTimeout(context.Background(), time.Second)
		require.NoError(t, l.Idle(waitCtx))
		_, err = f.Wait(waitCtx)
		waitCancel()

		if settled.Load() {
			assert.NoError(t, err)
		} else {
			assert.ErrorIs(t, err, eventloop.ErrStopped)
		}
	}
}

func TestAsyncAfterStopSettles(t *testing.T) {
	l, err := eventloop.New(eventloop.NewOptions())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, l.Run(ctx))

	f := eventloop.Async(l, func() (int, error) { return 1, nil }, func(int, error) {
		t.Error("settle ran on a stopped loop")
	})

	waitCtx, waitCancel := context.WithTimeout(context.Background(), time.Second)
	defer waitCancel()
	require.NoError(t, l.Idle(waitCtx))
	_, err = f.Wait(waitCtx)
	assert.ErrorIs(t, err, eventloop.ErrStopped)
}

func TestNewValidatesQueueSize(t *testing.T) {
	_, err := eventloop.New(eventloop.NewOptions(eventloop.WithQueueSize(0)))
	assert.Error(t, err)
}

func TestTimerFiresOnLoop(t *testing.T) {
	l := startLoop(t)

	fired := make(chan time.Time, 1)
	start := time.Now()
	require.NoError(t, l.Do(context.Background(), func() {
		l.AfterFunc(20*time.Millisecond, func() { fired <- time.Now() })
	}))

	select {
	case at := <-fired:
		assert.GreaterOrEqual(t, at.Sub(start), 20*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestTimerStop(t *testing.T) {
	l := startLoop(t)

	var fired atomic.Int32
	var tm *eventloop.Timer
	require.NoError(t, l.Do(context.Background(), func() {
		tm = l.AfterFunc(10*time.Millisecond, func() { fired.Add(1) })
	}))

	var first, second bool
	require.NoError(t, l.Do(context.Background(), func() {
		first = tm.Stop()
		second = tm.Stop()
	}))
	assert.True(t, first)
	assert.False(t, second)

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestTimerStopAfterFireIsNoop(t *testing.T) {
	l := startLoop(t)

	fired := make(chan struct{})
	var tm *eventloop.Timer
	require.NoError(t, l.Do(context.Background(), func() {
		tm = l.AfterFunc(time.Millisecond, func() { close(fired) })
	}))
	<-fired

	var stopped bool
	require.NoError(t, l.Do(context.Background(), func() { stopped = tm.Stop() }))
	assert.False(t, stopped)

	var nilTimer *eventloop.Timer
	assert.False(t, nilTimer.Stop())
}

func TestTimerStoppedWhileQueued(t *testing.T) {
	l := startLoop(t)

	var fired atomic.Int32
	var stopped bool
	require.NoError(t, l.Do(context.Background(), func() {
		tm := l.AfterFunc(time.Millisecond, func() { fired.Add(1) })
		// the timer fires while this task holds the loop, so its callback is queued behind it
		time.Sleep(20 * time.Millisecond)
		stopped = tm.Stop()
	}))
	assert.True(t, stopped)

	require.NoError(t, l.Do(context.Background(), func() {}))
	assert.Zero(t, fired.Load())
}

func TestAsyncSettlesOnLoop(t *testing.T) {
	l := startLoop(t)

	var settled []string
	var f *eventloop.Future[string]
	require.NoError(t, l.Do(context.Background(), func() {
		f = eventloop.Async(l, func() (string, error) {
			return "abc", nil
		}, func(v string, err error) {
			settled = append(settled, v)
		})
	}))

	v, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	require.NoError(t, l.Do(context.Background(), func() {
		assert.Equal(t, []string{"abc"}, settled)
	}))
}

func TestAsyncError(t *testing.T) {
	l := startLoop(t)
	boom := errors.New("boom")

	f := eventloop.Async(l, func() (int, error) { return 0, boom }, func(int, error) {})
	_, err := f.Wait(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestIdleWaitsForAsync(t *testing.T) {
	l := startLoop(t)

	release := make(chan struct{})
	var settled atomic.Bool
	eventloop.Async(l, func() (struct{}, error) {
		<-release
		return struct{}{}, nil
	}, func(struct{}, error) { settled.Store(true) })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, l.Idle(ctx), context.DeadlineExceeded)

	close(release)
	require.NoError(t, l.Idle(context.Background()))
	assert.True(t, settled.Load())
}

func TestResolved(t *testing.T) {
	f := eventloop.Resolved(42, nil)

	select {
	case <-f.Done():
	default:
		t.Fatal("resolved future must be done")
	}

	v, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}
