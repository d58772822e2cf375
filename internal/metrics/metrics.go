package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics stores the Prometheus collectors used across the service.
type Metrics struct {
	PaymentsSubmitted   *prometheus.CounterVec
	ConfirmationSeconds prometheus.Histogram
	RequestsSettled     prometheus.Counter
	CacheLookups        *prometheus.CounterVec
	Errors              *prometheus.CounterVec
}

var (
	regOnce         sync.Once
	metricsInstance *Metrics
)

// Registry builds and registers the metrics singleton with optional namespace.
func Registry(namespace string) *Metrics {
	regOnce.Do(func() {
		metricsInstance = &Metrics{
			PaymentsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payments_submitted_total",
				Help:      "Total payment submissions by terminal outcome.",
			}, []string{"outcome"}),
			ConfirmationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "confirmation_duration_seconds",
				Help:      "Time from broadcast to terminal confirmation state.",
				Buckets:   []float64{1, 2, 5, 10, 20, 30, 60, 90},
			}),
			RequestsSettled: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pending_requests_settled_total",
				Help:      "Total pending payment requests marked settled.",
			}),
			CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "username_cache_lookups_total",
				Help:      "Username cache lookups by result.",
			}, []string{"result"}),
			Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total errors grouped by component.",
			}, []string{"component"}),
		}

		prometheus.MustRegister(
			metricsInstance.PaymentsSubmitted,
			metricsInstance.ConfirmationSeconds,
			metricsInstance.RequestsSettled,
			metricsInstance.CacheLookups,
			metricsInstance.Errors,
		)
	})
	return metricsInstance
}
