package toasttest

import (
	"sort"
	"sync"
	"time"

	"github.com/toastkit/toastkit/pkg/toast"
)

// Clock is a manually driven toast.Clock. Timers scheduled through it
// fire only when Advance moves the clock past their deadline, which
// lets tests assert delayed-removal behavior without sleeping.
type Clock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

// NewClock creates a fake clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// AfterFunc schedules fn to run when the clock advances past d from
// the current fake time.
func (c *Clock) AfterFunc(d time.Duration, fn func()) toast.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{
		clock: c,
		when:  c.now + d,
		fn:    fn,
	}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d and fires every due timer in
// deadline order. Callbacks run synchronously on the calling
// goroutine, so by the time Advance returns their effects are visible.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*fakeTimer
	remaining := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped && t.when <= c.now {
			due = append(due, t)
		} else {
			remaining = append(remaining, t)
		}
	}
	c.timers = remaining
	c.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].when < due[j].when })
	for _, t := range due {
		t.fn()
	}
}

// Pending returns the number of timers that have not fired or been
// stopped yet.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

type fakeTimer struct {
	clock   *Clock
	when    time.Duration
	fn      func()
	stopped bool
}

// Stop cancels the timer if it has not fired yet.
func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped {
		return false
	}
	for _, pending := range t.clock.timers {
		if pending == t {
			t.stopped = true
			return true
		}
	}
	// Already fired and drained by Advance.
	return false
}
