package toast

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures Prometheus instrumentation for a Store.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "toastkit").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures Prometheus instrumentation.
type MetricsOption func(*MetricsConfig)

// WithMetricsNamespace sets the metrics namespace.
func WithMetricsNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithMetricsSubsystem sets the metrics subsystem.
func WithMetricsSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithMetricsConstLabels sets constant labels for all metrics.
func WithMetricsConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithMetricsRegistry sets the Prometheus registry.
func WithMetricsRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// Metrics holds the Prometheus collectors for one store.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	dispatchesTotal *prometheus.CounterVec
	evictionsTotal  prometheus.Counter
	panicsTotal     prometheus.Counter
	activeToasts    prometheus.Gauge
	pendingTimers   prometheus.Gauge
	activeListeners prometheus.Gauge
}

// NewMetrics registers the store's collectors and returns a Metrics
// handle for WithMetrics. Registering two Metrics with the same
// namespace on the same registry is a configuration error and panics,
// as with any duplicate Prometheus registration.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := MetricsConfig{
		Namespace: "toastkit",
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		dispatchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dispatches_total",
			Help:        "Total number of actions dispatched to the toast store",
			ConstLabels: config.ConstLabels,
		}, []string{"action"}),

		evictionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "evictions_total",
			Help:        "Total number of toasts evicted by the capacity bound",
			ConstLabels: config.ConstLabels,
		}),

		panicsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "subscriber_panics_total",
			Help:        "Total number of panics recovered from subscribers",
			ConstLabels: config.ConstLabels,
		}),

		activeToasts: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_toasts",
			Help:        "Current number of toasts in the store",
			ConstLabels: config.ConstLabels,
		}),

		pendingTimers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "pending_removal_timers",
			Help:        "Current number of pending removal timers",
			ConstLabels: config.ConstLabels,
		}),

		activeListeners: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_listeners",
			Help:        "Current number of registered subscribers",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Collector accessors, exposed so callers can assert on recorded
// values with prometheus/testutil or re-export the collectors.

// EvictionsCounter returns the capacity-eviction counter.
func (m *Metrics) EvictionsCounter() prometheus.Counter { return m.evictionsTotal }

// PanicsCounter returns the recovered-subscriber-panic counter.
func (m *Metrics) PanicsCounter() prometheus.Counter { return m.panicsTotal }

// ActiveToastsGauge returns the active-toast gauge.
func (m *Metrics) ActiveToastsGauge() prometheus.Gauge { return m.activeToasts }

// PendingTimersGauge returns the pending-removal-timer gauge.
func (m *Metrics) PendingTimersGauge() prometheus.Gauge { return m.pendingTimers }

// ListenersGauge returns the registered-subscriber gauge.
func (m *Metrics) ListenersGauge() prometheus.Gauge { return m.activeListeners }

func (m *Metrics) dispatched(t ActionType) {
	if m == nil {
		return
	}
	m.dispatchesTotal.WithLabelValues(t.String()).Inc()
}

func (m *Metrics) evicted(n int) {
	if m == nil {
		return
	}
	m.evictionsTotal.Add(float64(n))
}

func (m *Metrics) subscriberPanicked() {
	if m == nil {
		return
	}
	m.panicsTotal.Inc()
}

func (m *Metrics) observe(toasts, timers int) {
	if m == nil {
		return
	}
	m.activeToasts.Set(float64(toasts))
	m.pendingTimers.Set(float64(timers))
}

func (m *Metrics) listeners(n int) {
	if m == nil {
		return
	}
	m.activeListeners.Set(float64(n))
}
