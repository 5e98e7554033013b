package toast

import "sync"

// defaultStore is the lazily created process-wide store.
// Applications that need non-default capacity, clocks or
// instrumentation should construct their own Store instead.
var (
	defaultStore *Store
	defaultOnce  sync.Once
)

// Default returns the shared process-wide store, creating it with
// default configuration on first use.
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = New()
	})
	return defaultStore
}

// Show adds a toast to the default store. See (*Store).Show.
func Show(t Toast) Handle { return Default().Show(t) }

// Success shows a success toast on the default store.
func Success(title string) Handle { return Default().Success(title) }

// Error shows an error toast on the default store.
func Error(title string) Handle { return Default().Error(title) }

// Warning shows a warning toast on the default store.
func Warning(title string) Handle { return Default().Warning(title) }

// Info shows an info toast on the default store.
func Info(title string) Handle { return Default().Info(title) }

// Dismiss marks a toast on the default store closed.
func Dismiss(id string) { Default().Dismiss(id) }

// DismissAll marks every toast on the default store closed.
func DismissAll() { Default().DismissAll() }

// Subscribe registers a subscriber on the default store.
func Subscribe(fn Subscriber) func() { return Default().Subscribe(fn) }

// Reset clears the default store. Intended for tests.
func Reset() { Default().Reset() }
