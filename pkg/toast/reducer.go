package toast

// Reduce is the pure transition function of the engine: it maps the
// current state and an action to the next state without side effects.
// The input state is never mutated; the returned state shares no toast
// slice with the input.
//
// Unrecognized action types return the state unchanged, so Dispatch is
// always safe to call with actions this version does not understand.
func Reduce(state State, action Action, capacity int) State {
	switch action.Type {
	case ActionAdd:
		return reduceAdd(state, action.Toast, capacity)
	case ActionUpdate:
		return reduceUpdate(state, action.ID, action.Patch)
	case ActionDismiss:
		return reduceDismiss(state, action.ID)
	case ActionRemove:
		return reduceRemove(state, action.ID)
	default:
		return state
	}
}

func reduceAdd(state State, t Toast, capacity int) State {
	if capacity < 1 {
		capacity = 1
	}
	toasts := make([]Toast, 0, len(state.Toasts)+1)
	toasts = append(toasts, t)
	toasts = append(toasts, state.Toasts...)
	if len(toasts) > capacity {
		toasts = toasts[:capacity]
	}
	return State{Toasts: toasts}
}

func reduceUpdate(state State, id string, p Patch) State {
	// An update without a target is malformed; drop it rather than fail.
	if id == "" {
		return state
	}
	toasts := make([]Toast, len(state.Toasts))
	for i, t := range state.Toasts {
		if t.ID == id {
			t = p.apply(t)
		}
		toasts[i] = t
	}
	return State{Toasts: toasts}
}

func reduceDismiss(state State, id string) State {
	toasts := make([]Toast, len(state.Toasts))
	for i, t := range state.Toasts {
		if id == "" || t.ID == id {
			t.Open = false
		}
		toasts[i] = t
	}
	return State{Toasts: toasts}
}

func reduceRemove(state State, id string) State {
	if id == "" {
		return State{}
	}
	toasts := make([]Toast, 0, len(state.Toasts))
	for _, t := range state.Toasts {
		if t.ID != id {
			toasts = append(toasts, t)
		}
	}
	return State{Toasts: toasts}
}
