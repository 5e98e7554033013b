package toast

import "testing"

func mkState(ids ...string) State {
	toasts := make([]Toast, len(ids))
	for i, id := range ids {
		toasts[i] = Toast{ID: id, Open: true}
	}
	return State{Toasts: toasts}
}

func TestReduceAddPrepends(t *testing.T) {
	state := mkState("a")
	next := Reduce(state, Action{Type: ActionAdd, Toast: Toast{ID: "b", Open: true}}, 3)

	if next.Len() != 2 {
		t.Fatalf("expected 2 toasts, got %d", next.Len())
	}
	if next.Toasts[0].ID != "b" {
		t.Errorf("expected newest first, got %q", next.Toasts[0].ID)
	}
	if next.Toasts[1].ID != "a" {
		t.Errorf("expected existing toast second, got %q", next.Toasts[1].ID)
	}
}

func TestReduceAddTruncatesToCapacity(t *testing.T) {
	state := mkState("b", "a")
	next := Reduce(state, Action{Type: ActionAdd, Toast: Toast{ID: "c"}}, 2)

	if next.Len() != 2 {
		t.Fatalf("expected capacity 2, got %d", next.Len())
	}
	if next.Toasts[0].ID != "c" || next.Toasts[1].ID != "b" {
		t.Errorf("expected [c b], got [%s %s]", next.Toasts[0].ID, next.Toasts[1].ID)
	}
	if _, ok := next.Find("a"); ok {
		t.Error("oldest toast should have been evicted")
	}
}

func TestReduceAddClampsInvalidCapacity(t *testing.T) {
	next := Reduce(State{}, Action{Type: ActionAdd, Toast: Toast{ID: "a"}}, 0)
	if next.Len() != 1 {
		t.Errorf("capacity below 1 should clamp to 1, got %d toasts", next.Len())
	}
}

func TestReduceUpdateMergesByID(t *testing.T) {
	state := State{Toasts: []Toast{
		{ID: "a", Title: "old", Open: true, Data: map[string]any{"k": 1}},
		{ID: "b", Title: "keep", Open: true},
	}}

	next := Reduce(state, Action{
		Type: ActionUpdate,
		ID:   "a",
		Patch: Patch{
			Title: String("new"),
			Data:  map[string]any{"extra": true},
		},
	}, 3)

	got, ok := next.Find("a")
	if !ok {
		t.Fatal("updated toast missing")
	}
	if got.Title != "new" {
		t.Errorf("expected merged title %q, got %q", "new", got.Title)
	}
	if !got.Open {
		t.Error("update must not touch fields the patch leaves nil")
	}
	if got.Data["k"] != 1 || got.Data["extra"] != true {
		t.Errorf("expected shallow-merged data, got %v", got.Data)
	}

	other, _ := next.Find("b")
	if other.Title != "keep" {
		t.Errorf("non-matching toast must pass through unchanged, got %q", other.Title)
	}
}

func TestReduceUpdateWithoutIDIsNoOp(t *testing.T) {
	state := mkState("a")
	next := Reduce(state, Action{Type: ActionUpdate, Patch: Patch{Title: String("x")}}, 3)
	if next.Toasts[0].Title != "" {
		t.Error("update without id must not modify any toast")
	}
}

func TestReduceUpdateUnknownIDIsNoOp(t *testing.T) {
	state := mkState("a")
	next := Reduce(state, Action{Type: ActionUpdate, ID: "nope", Patch: Patch{Title: String("x")}}, 3)
	if next.Toasts[0].Title != "" {
		t.Error("update with unknown id must not modify any toast")
	}
}

func TestReduceDismissSingle(t *testing.T) {
	state := mkState("a", "b")
	next := Reduce(state, Action{Type: ActionDismiss, ID: "a"}, 3)

	if next.Len() != 2 {
		t.Fatalf("dismiss must not remove entries, got %d", next.Len())
	}
	a, _ := next.Find("a")
	if a.Open {
		t.Error("dismissed toast should have Open=false")
	}
	b, _ := next.Find("b")
	if !b.Open {
		t.Error("other toast should remain open")
	}
}

func TestReduceDismissAll(t *testing.T) {
	state := mkState("a", "b", "c")
	next := Reduce(state, Action{Type: ActionDismiss}, 3)

	if next.Len() != 3 {
		t.Fatalf("global dismiss must not remove entries, got %d", next.Len())
	}
	for _, toast := range next.Toasts {
		if toast.Open {
			t.Errorf("toast %q should be closed after global dismiss", toast.ID)
		}
	}
}

func TestReduceRemoveSingle(t *testing.T) {
	state := mkState("a", "b")
	next := Reduce(state, Action{Type: ActionRemove, ID: "a"}, 3)

	if next.Len() != 1 {
		t.Fatalf("expected 1 toast after remove, got %d", next.Len())
	}
	if _, ok := next.Find("a"); ok {
		t.Error("removed toast still present")
	}
}

func TestReduceRemoveAll(t *testing.T) {
	state := mkState("a", "b", "c")
	next := Reduce(state, Action{Type: ActionRemove}, 3)
	if next.Len() != 0 {
		t.Errorf("expected empty state, got %d toasts", next.Len())
	}
}

func TestReduceRemoveUnknownIDIsNoOp(t *testing.T) {
	state := mkState("a")
	next := Reduce(state, Action{Type: ActionRemove, ID: "nope"}, 3)
	if next.Len() != 1 {
		t.Errorf("remove of absent id must not change state, got %d toasts", next.Len())
	}
}

func TestReduceUnknownActionReturnsState(t *testing.T) {
	state := mkState("a")
	next := Reduce(state, Action{Type: ActionType(99)}, 3)
	if next.Len() != 1 || next.Toasts[0].ID != "a" {
		t.Error("unknown action type must return state unchanged")
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	state := mkState("a", "b")
	Reduce(state, Action{Type: ActionDismiss}, 3)

	for _, toast := range state.Toasts {
		if !toast.Open {
			t.Fatalf("input state was mutated: toast %q closed", toast.ID)
		}
	}

	Reduce(state, Action{Type: ActionUpdate, ID: "a", Patch: Patch{Title: String("x")}}, 3)
	if state.Toasts[0].Title != "" {
		t.Fatal("input state was mutated by update")
	}
}

func TestActionTypeString(t *testing.T) {
	cases := map[ActionType]string{
		ActionAdd:      "add",
		ActionUpdate:   "update",
		ActionDismiss:  "dismiss",
		ActionRemove:   "remove",
		ActionType(42): "unknown",
	}
	for at, want := range cases {
		if got := at.String(); got != want {
			t.Errorf("ActionType(%d).String() = %q, want %q", at, got, want)
		}
	}
}
