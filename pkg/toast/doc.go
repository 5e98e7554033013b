// Package toast is a framework-agnostic state engine for transient
// notifications: a bounded, ordered toast list with update-in-place
// semantics, subscriber fan-out and delayed, cancellable removal.
//
// The engine models when a toast is logically present, open or
// removed. How a toast looks, animates or reaches the user is left to
// the consuming layer, which observes the store through Subscribe.
//
// # Quick Start
//
//	store := toast.New(toast.WithCapacity(3))
//
//	unsubscribe := store.Subscribe(func(st toast.State) {
//	    render(st.Toasts)
//	})
//	defer unsubscribe()
//
//	h := store.Show(toast.Toast{
//	    Title:       "Project deleted",
//	    Description: "You can undo this for 10 seconds.",
//	    Variant:     toast.VariantSuccess,
//	})
//
//	h.Update(toast.Patch{Title: toast.String("Project deleted (3 files)")})
//	h.Dismiss() // Open=false now, removed after the removal delay
//
// # Lifecycle
//
// Show assigns a fresh id, sets Open=true and prepends the toast; the
// oldest entry is evicted past the capacity bound. Dismiss flips Open
// to false and schedules hard removal after the configured delay;
// until then the toast stays in state so the UI can animate it out.
// Removal deletes the entry — absence from state is destruction.
//
// Dispatch never fails. Unknown actions, unknown ids and malformed
// patches reduce to no-ops, and a panicking subscriber is logged and
// contained without disturbing delivery to the others. The engine sits
// underneath UI rendering, where dropping a notification is cheaper
// than surfacing an error.
//
// # Determinism in Tests
//
// Removal timers go through the Clock interface. Inject a fake clock
// (see the toasttest package) to drive removal without real delays:
//
//	clk := toasttest.NewClock()
//	store := toast.New(toast.WithClock(clk), toast.WithRemoveDelay(time.Second))
//	store.Show(toast.Toast{Title: "hi"}).Dismiss()
//	clk.Advance(time.Second) // toast removed, no sleeping
package toast
