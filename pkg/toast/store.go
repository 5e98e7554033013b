package toast

import (
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultCapacity is the maximum number of simultaneously displayed
	// toasts unless overridden with WithCapacity.
	DefaultCapacity = 1

	// DefaultRemoveDelay is the time between a toast's dismissal and
	// its hard removal from state unless overridden with
	// WithRemoveDelay.
	DefaultRemoveDelay = 5 * time.Second
)

// Subscriber receives the full state snapshot after every dispatch.
type Subscriber func(State)

// subscription pairs a subscriber with a registration id so
// unsubscribe can remove exactly one entry.
type subscription struct {
	id uint64
	fn Subscriber
}

// Store is the toast state engine: a bounded, ordered sequence of
// toasts with update-in-place semantics and delayed, cancellable
// removal. Construct one per application at the composition root, or
// use the package-level Default store.
//
// All methods are safe for concurrent use. State transitions are
// serialized: the reducer, timer bookkeeping and state swap happen
// atomically per dispatch, and subscribers are notified outside the
// lock on an immutable snapshot, so a subscriber may itself dispatch.
type Store struct {
	mu        sync.Mutex
	state     State
	subs      []subscription
	nextSubID uint64

	timers      *timerRegistry
	capacity    int
	removeDelay time.Duration
	clock       Clock
	logger      *slog.Logger
	metrics     *Metrics
	tracer      trace.Tracer
}

// Option configures a Store.
type Option func(*Store)

// WithCapacity sets the maximum number of retained toasts.
// Values below 1 fall back to DefaultCapacity.
func WithCapacity(n int) Option {
	return func(s *Store) {
		if n >= 1 {
			s.capacity = n
		}
	}
}

// WithRemoveDelay sets the delay between dismissal and removal.
// Non-positive values fall back to DefaultRemoveDelay.
func WithRemoveDelay(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.removeDelay = d
		}
	}
}

// WithClock sets the clock used for removal timers.
// Tests inject a fake clock to drive removal deterministically.
func WithClock(c Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the logger used for subscriber failure reports.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics attaches Prometheus instrumentation to the store.
func WithMetrics(m *Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		capacity:    DefaultCapacity,
		removeDelay: DefaultRemoveDelay,
		clock:       SystemClock,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.timers = newTimerRegistry(s.clock)
	return s
}

// Dispatch applies an action to the store and notifies every
// subscriber with the resulting state. It never fails: malformed or
// unrecognized actions reduce to no-ops, and subscriber panics are
// isolated and logged so one broken observer cannot break delivery to
// the rest.
func (s *Store) Dispatch(action Action) {
	span := s.startDispatchSpan(action)

	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, action, s.capacity)

	switch action.Type {
	case ActionAdd:
		if evicted := len(prev.Toasts) + 1 - len(next.Toasts); evicted > 0 {
			s.metrics.evicted(evicted)
		}
	case ActionDismiss:
		// The reducer is pure; removal scheduling is the dispatcher's
		// side effect. One timer per dismissed toast, deduplicated by
		// the registry so re-dismissing never stacks timers.
		for _, t := range prev.Toasts {
			if action.ID == "" || t.ID == action.ID {
				s.scheduleRemove(t.ID)
			}
		}
	case ActionRemove:
		// Removal cancels any outstanding timer so a stray callback
		// never fires for an entry that is already gone.
		if action.ID == "" {
			s.timers.cancelAll()
		} else {
			s.timers.cancel(action.ID)
		}
	}

	s.state = next
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	s.metrics.dispatched(action.Type)
	s.metrics.observe(len(next.Toasts), s.timers.pending())
	s.endDispatchSpan(span, len(next.Toasts))

	for _, sub := range subs {
		s.notify(sub, next)
	}
}

// scheduleRemove registers a delayed ActionRemove for id.
func (s *Store) scheduleRemove(id string) {
	s.timers.schedule(id, s.removeDelay, func() {
		s.Dispatch(Action{Type: ActionRemove, ID: id})
	})
}

// notify invokes one subscriber, containing any panic.
func (s *Store) notify(sub subscription, st State) {
	defer func() {
		if r := recover(); r != nil {
			s.metrics.subscriberPanicked()
			s.logger.Warn("toast subscriber panicked", "error", r)
		}
	}()
	sub.fn(st)
}

// Subscribe registers fn to receive every subsequent state snapshot.
// The returned function removes the registration; calling it more than
// once is a no-op.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	n := len(s.subs)
	s.mu.Unlock()
	s.metrics.listeners(n)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.unsubscribe(id)
		})
	}
}

func (s *Store) unsubscribe(id uint64) {
	s.mu.Lock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			break
		}
	}
	n := len(s.subs)
	s.mu.Unlock()
	s.metrics.listeners(n)
}

// State returns the current state snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ListenerCount returns the exact number of registered subscribers.
func (s *Store) ListenerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// PendingTimerCount returns the exact number of pending removal timers.
func (s *Store) PendingTimerCount() int {
	return s.timers.pending()
}

// Reset clears all subscribers, cancels every pending timer and
// empties the state. Safe to call at any time; intended for tests.
func (s *Store) Reset() {
	s.mu.Lock()
	s.state = State{}
	s.subs = nil
	s.mu.Unlock()
	s.timers.cancelAll()
	s.metrics.listeners(0)
	s.metrics.observe(0, 0)
}
