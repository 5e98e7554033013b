package toast

import "github.com/google/uuid"

// Handle is the per-toast control object returned by Show. Its
// operations are bound to the toast's id and stay safe to call after
// the toast has been removed (they reduce to no-ops).
type Handle struct {
	// ID is the unique identifier assigned to the toast at creation.
	ID string

	store *Store
}

// Dismiss marks the toast closed and schedules its delayed removal.
// Idempotent: dismissing an already-dismissed toast changes nothing
// and never stacks a second removal timer.
func (h Handle) Dismiss() {
	h.store.Dispatch(Action{Type: ActionDismiss, ID: h.ID})
}

// Update shallow-merges the patch over the toast. The target id is
// fixed to the handle's toast; patches never retarget another entry.
func (h Handle) Update(p Patch) {
	h.store.Dispatch(Action{Type: ActionUpdate, ID: h.ID, Patch: p})
}

// Show adds a toast to the store and returns its control handle.
//
// The engine assigns a fresh collision-resistant id, forces Open to
// true and wires OnOpenChange so that the consuming layer reporting
// "closed" dismisses the toast through the engine. Everything else on
// the passed value is opaque payload. Show never fails: the zero Toast
// is a legal (empty) notification.
func (s *Store) Show(t Toast) Handle {
	id := uuid.NewString()
	t.ID = id
	t.Open = true
	t.OnOpenChange = func(open bool) {
		if !open {
			s.Dismiss(id)
		}
	}
	s.Dispatch(Action{Type: ActionAdd, Toast: t})
	return Handle{ID: id, store: s}
}

// Dismiss marks the toast with the given id closed and schedules its
// removal. Unknown ids are no-ops.
func (s *Store) Dismiss(id string) {
	if id == "" {
		return
	}
	s.Dispatch(Action{Type: ActionDismiss, ID: id})
}

// DismissAll marks every toast closed and schedules each for removal.
func (s *Store) DismissAll() {
	s.Dispatch(Action{Type: ActionDismiss})
}

// Update shallow-merges a patch over the toast with the given id.
// An empty id is a no-op.
func (s *Store) Update(id string, p Patch) {
	s.Dispatch(Action{Type: ActionUpdate, ID: id, Patch: p})
}

// Remove deletes the toast with the given id immediately, cancelling
// any pending removal timer for it.
func (s *Store) Remove(id string) {
	if id == "" {
		return
	}
	s.Dispatch(Action{Type: ActionRemove, ID: id})
}

// RemoveAll deletes every toast immediately and cancels all timers.
func (s *Store) RemoveAll() {
	s.Dispatch(Action{Type: ActionRemove})
}

// Success shows a success toast.
//
//	store.Success("Changes saved!")
func (s *Store) Success(title string) Handle {
	return s.Show(Toast{Title: title, Variant: VariantSuccess})
}

// Error shows an error toast.
func (s *Store) Error(title string) Handle {
	return s.Show(Toast{Title: title, Variant: VariantError})
}

// Warning shows a warning toast.
func (s *Store) Warning(title string) Handle {
	return s.Show(Toast{Title: title, Variant: VariantWarning})
}

// Info shows an info toast.
func (s *Store) Info(title string) Handle {
	return s.Show(Toast{Title: title, Variant: VariantInfo})
}
