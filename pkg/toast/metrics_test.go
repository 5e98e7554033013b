package toast_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/toastkit/toastkit/pkg/toast"
	"github.com/toastkit/toastkit/pkg/toasttest"
)

func TestMetricsRecordDispatches(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := toast.NewMetrics(toast.WithMetricsRegistry(reg))

	clk := toasttest.NewClock()
	store := toast.New(
		toast.WithClock(clk),
		toast.WithRemoveDelay(time.Second),
		toast.WithCapacity(1),
		toast.WithMetrics(m),
	)

	a := store.Show(toast.Toast{Title: "A"})
	store.Show(toast.Toast{Title: "B"}) // evicts A
	a.Dismiss()                         // no-op dismiss of evicted toast still counts as a dispatch
	store.DismissAll()
	clk.Advance(time.Second)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	byName := make(map[string]bool, len(families))
	for _, f := range families {
		byName[f.GetName()] = true
	}
	for _, name := range []string{
		"toastkit_dispatches_total",
		"toastkit_evictions_total",
		"toastkit_active_toasts",
		"toastkit_pending_removal_timers",
	} {
		if !byName[name] {
			t.Errorf("expected metric %q to be registered", name)
		}
	}

	if got := testutil.ToFloat64(m.EvictionsCounter()); got != 1 {
		t.Errorf("expected 1 eviction, got %v", got)
	}
	if got := testutil.ToFloat64(m.ActiveToastsGauge()); got != 0 {
		t.Errorf("expected 0 active toasts after expiry, got %v", got)
	}
	if got := testutil.ToFloat64(m.PendingTimersGauge()); got != 0 {
		t.Errorf("expected 0 pending timers after expiry, got %v", got)
	}
}

func TestMetricsRecordSubscriberPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := toast.NewMetrics(toast.WithMetricsRegistry(reg))

	store, _ := newTestStore(t, toast.WithMetrics(m),
		quietLogger())
	store.Subscribe(func(toast.State) { panic("boom") })
	store.Show(toast.Toast{Title: "A"})

	if got := testutil.ToFloat64(m.PanicsCounter()); got != 1 {
		t.Errorf("expected 1 recovered panic, got %v", got)
	}
}

func TestMetricsTrackListeners(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := toast.NewMetrics(toast.WithMetricsRegistry(reg))
	store, _ := newTestStore(t, toast.WithMetrics(m))

	unsub := store.Subscribe(func(toast.State) {})
	store.Subscribe(func(toast.State) {})
	if got := testutil.ToFloat64(m.ListenersGauge()); got != 2 {
		t.Errorf("expected 2 listeners, got %v", got)
	}

	unsub()
	if got := testutil.ToFloat64(m.ListenersGauge()); got != 1 {
		t.Errorf("expected 1 listener after unsubscribe, got %v", got)
	}
}
