package toast

import (
	"sync"
	"time"
)

// timerEntry pairs a pending timer with the generation it was scheduled
// under. The generation lets a stale callback detect that its entry was
// cancelled and rescheduled while it raced with cancel.
type timerEntry struct {
	timer Timer
	gen   uint64
}

// timerRegistry tracks at most one pending removal timer per toast id.
// It is self-synchronized: the store may call it while holding its own
// lock, and fired callbacks re-enter from timer goroutines.
type timerRegistry struct {
	clock Clock

	mu      sync.Mutex
	timers  map[string]timerEntry
	nextGen uint64
}

func newTimerRegistry(clock Clock) *timerRegistry {
	return &timerRegistry{
		clock:  clock,
		timers: make(map[string]timerEntry),
	}
}

// schedule registers a one-shot timer that invokes onFire after d and
// removes its own entry. If a timer for id is already pending the call
// is a no-op: the existing timer wins.
func (r *timerRegistry) schedule(id string, d time.Duration, onFire func()) {
	r.mu.Lock()
	if _, ok := r.timers[id]; ok {
		r.mu.Unlock()
		return
	}
	r.nextGen++
	gen := r.nextGen
	t := r.clock.AfterFunc(d, func() {
		if r.claim(id, gen) {
			onFire()
		}
	})
	r.timers[id] = timerEntry{timer: t, gen: gen}
	r.mu.Unlock()
}

// claim removes the entry for id if it still belongs to gen, reporting
// whether the caller owns the firing. A false return means the timer
// was cancelled (and possibly rescheduled) after this callback was
// already in flight.
func (r *timerRegistry) claim(id string, gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.timers[id]
	if !ok || e.gen != gen {
		return false
	}
	delete(r.timers, id)
	return true
}

// cancel stops and removes the timer for id. Safe to call when absent.
func (r *timerRegistry) cancel(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.timers[id]; ok {
		e.timer.Stop()
		delete(r.timers, id)
	}
}

// cancelAll stops and removes every pending timer.
func (r *timerRegistry) cancelAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.timers {
		e.timer.Stop()
		delete(r.timers, id)
	}
}

// pending returns the exact number of timers currently registered.
func (r *timerRegistry) pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timers)
}
