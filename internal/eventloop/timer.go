package eventloop

import "time"

// Timer is a one-shot callback scheduled onto a loop.
type Timer struct {
	t    *time.Timer
	done bool
}

// AfterFunc runs fn on the loop once d has elapsed. Call it from a loop task.
func (l *Loop) AfterFunc(d time.Duration, fn func()) *Timer {
	tm := &Timer{}
	tm.t = time.AfterFunc(d, func() {
		l.Post(func() {
			// the timer may have been stopped after it fired but before this ran
			if tm.done {
				return
			}
			tm.done = true
			fn()
		})
	})

	return tm
}

// Stop cancels the timer. Once Stop has returned on the loop, fn will not run
// even if the underlying timer already fired. Stopping twice, or stopping a
// timer that already ran, is a no-op that reports false.
func (t *Timer) Stop() bool {
	if t == nil || t.done {
		return false
	}
	t.done = true
	t.t.Stop()

	return true
}
