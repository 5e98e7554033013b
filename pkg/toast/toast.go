package toast

// Variant classifies a toast for styling purposes.
// The engine never interprets variants; they pass through to subscribers.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantSuccess     Variant = "success"
	VariantError       Variant = "error"
	VariantWarning     Variant = "warning"
	VariantInfo        Variant = "info"
	VariantDestructive Variant = "destructive"
)

// Toast is a single transient notification.
//
// Title, Description, Variant and Data are opaque display payload: the
// engine stores and forwards them without validation. ID and Open are
// managed by the engine — ID is assigned on Show and Open transitions
// to false exactly once, on dismissal.
type Toast struct {
	ID          string         `json:"id"`
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Variant     Variant        `json:"variant,omitempty"`
	Open        bool           `json:"open"`
	Data        map[string]any `json:"data,omitempty"`

	// OnOpenChange is invoked by the consuming layer when the display
	// state changes externally (e.g. the user closes the toast in the
	// UI). Show wires it to dismiss the toast when called with false.
	OnOpenChange func(open bool) `json:"-"`
}

// Patch is a partial update merged over an existing toast by ID.
// Nil fields are left untouched; Data is shallow-merged key by key.
type Patch struct {
	Title       *string
	Description *string
	Variant     *Variant
	Open        *bool
	Data        map[string]any
}

// apply merges the patch over t and returns the merged copy.
func (p Patch) apply(t Toast) Toast {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Variant != nil {
		t.Variant = *p.Variant
	}
	if p.Open != nil {
		t.Open = *p.Open
	}
	if len(p.Data) > 0 {
		merged := make(map[string]any, len(t.Data)+len(p.Data))
		for k, v := range t.Data {
			merged[k] = v
		}
		for k, v := range p.Data {
			merged[k] = v
		}
		t.Data = merged
	}
	return t
}

// State is an immutable snapshot of the store.
// Toasts are ordered most-recent-first.
type State struct {
	Toasts []Toast `json:"toasts"`
}

// Len returns the number of toasts in the snapshot.
func (s State) Len() int {
	return len(s.Toasts)
}

// Find returns the toast with the given id and true, or a zero toast
// and false if no toast matches.
func (s State) Find(id string) (Toast, bool) {
	for _, t := range s.Toasts {
		if t.ID == id {
			return t, true
		}
	}
	return Toast{}, false
}

// String is a pointer helper for building a Patch literal.
func String(s string) *string { return &s }

// Bool is a pointer helper for building a Patch literal.
func Bool(b bool) *bool { return &b }

// VariantOf is a pointer helper for building a Patch literal.
func VariantOf(v Variant) *Variant { return &v }
