package toast

// ActionType identifies a state transition understood by the reducer.
type ActionType int

const (
	// ActionAdd prepends a toast and evicts the oldest beyond capacity.
	ActionAdd ActionType = iota

	// ActionUpdate shallow-merges a patch over the toast matching ID.
	ActionUpdate

	// ActionDismiss sets Open to false on the toast matching ID, or on
	// every toast when ID is empty. Entries are not removed; the
	// dispatcher schedules delayed removal for each dismissed toast.
	ActionDismiss

	// ActionRemove deletes the toast matching ID, or every toast when
	// ID is empty.
	ActionRemove
)

// String returns a human-readable name for the action type.
func (t ActionType) String() string {
	switch t {
	case ActionAdd:
		return "add"
	case ActionUpdate:
		return "update"
	case ActionDismiss:
		return "dismiss"
	case ActionRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Action describes a single transition applied by Reduce.
//
// Toast carries the payload for ActionAdd, Patch for ActionUpdate.
// ID names the target toast for ActionUpdate, ActionDismiss and
// ActionRemove; an empty ID means "all toasts" for dismiss and remove,
// and makes an update a no-op.
type Action struct {
	Type  ActionType
	Toast Toast
	Patch Patch
	ID    string
}
