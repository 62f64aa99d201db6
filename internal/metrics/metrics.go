package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "horaires",
			Name:      "http_requests_total",
			Help:      "Count of API requests by endpoint.",
		},
		[]string{"endpoint"},
	)

	daysResolved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "horaires",
			Name:      "days_resolved_total",
			Help:      "Count of resolved dates by status.",
		},
		[]string{"status"},
	)

	scheduleSaved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "horaires",
			Name:      "schedule_saved_total",
			Help:      "Count of committed schedule edits.",
		},
	)

	validationFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "horaires",
			Name:      "validation_failed_total",
			Help:      "Count of rejected saves by validated document.",
		},
		[]string{"document"},
	)

	cacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "horaires",
			Name:      "cache_requests_total",
			Help:      "Availability cache lookups by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, daysResolved, scheduleSaved, validationFailed, cacheHits)
	})
}

func IncHTTP(endpoint string) {
	httpRequests.WithLabelValues(endpoint).Inc()
}

func IncDayResolved(status string) {
	daysResolved.WithLabelValues(status).Inc()
}

func IncScheduleSaved() {
	scheduleSaved.Inc()
}

func IncValidationFailed(document string) {
	validationFailed.WithLabelValues(document).Inc()
}

func IncCache(outcome string) {
	cacheHits.WithLabelValues(outcome).Inc()
}
