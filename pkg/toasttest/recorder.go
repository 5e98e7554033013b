package toasttest

import (
	"sync"

	"github.com/toastkit/toastkit/pkg/toast"
)

// Recorder captures every state snapshot delivered to a subscriber so
// tests can assert on the full dispatch history, not just the final
// state.
type Recorder struct {
	mu     sync.Mutex
	states []toast.State
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Subscriber returns the function to pass to (*toast.Store).Subscribe.
func (r *Recorder) Subscriber() toast.Subscriber {
	return func(st toast.State) {
		r.mu.Lock()
		r.states = append(r.states, st)
		r.mu.Unlock()
	}
}

// Count returns how many snapshots were delivered.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

// Last returns the most recent snapshot and true, or a zero state and
// false if nothing was delivered yet.
func (r *Recorder) Last() (toast.State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.states) == 0 {
		return toast.State{}, false
	}
	return r.states[len(r.states)-1], true
}

// States returns a copy of all delivered snapshots in order.
func (r *Recorder) States() []toast.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]toast.State, len(r.states))
	copy(out, r.states)
	return out
}
