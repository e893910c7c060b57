package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/vroute/pkg/router"
)

// MetricsConfig configures the Prometheus observer.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vroute").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for navigation duration.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus observer.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "vroute",
		// Navigations are in-process and settle in micro- to milliseconds.
		Buckets:  []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
		Registry: prometheus.DefaultRegisterer,
	}
}

// MetricsObserver records navigation events.
type MetricsObserver struct {
	navigations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

var _ router.Observer = (*MetricsObserver)(nil)

// Metrics registers the navigation metrics and returns an observer that
// records into them. Registering twice on the same registry panics, as
// with any promauto collector.
func Metrics(opts ...MetricsOption) *MetricsObserver {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &MetricsObserver{
		navigations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigations_total",
			Help:        "Total number of settled router navigations",
			ConstLabels: config.ConstLabels,
		}, []string{"source", "match"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigation_duration_seconds",
			Help:        "Time from navigation start until the router state settled",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"source"}),
	}
}

// Navigated implements router.Observer.
func (m *MetricsObserver) Navigated(ev router.NavigationEvent) {
	m.navigations.WithLabelValues(string(ev.Source), ev.Match.String()).Inc()
	m.duration.WithLabelValues(string(ev.Source)).Observe(ev.Duration().Seconds())
}
