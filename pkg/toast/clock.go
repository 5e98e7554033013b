package toast

import "time"

// Timer is a scheduled one-shot callback that can be stopped.
// *time.Timer satisfies it.
type Timer interface {
	// Stop cancels the timer. It reports whether the call stopped the
	// timer before it fired.
	Stop() bool
}

// Clock abstracts timer creation so tests can drive removal scheduling
// deterministically. The zero configuration uses the system clock.
type Clock interface {
	// AfterFunc schedules fn to run after d on the clock's own
	// goroutine and returns a handle to cancel it.
	AfterFunc(d time.Duration, fn func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// SystemClock is the real-time Clock used by default.
var SystemClock Clock = systemClock{}
