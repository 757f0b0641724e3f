package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Storage calls are local, so buckets stop well below a second
	StorageBuckets = []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5}

	// Business Metrics
	FormSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landing_form_submissions_total",
			Help: "Total number of form submissions",
		},
		[]string{"form", "status"},
	)

	// Storage Metrics
	StorageOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "landing_storage_operation_duration_seconds",
			Help:    "Key-value store operation duration in seconds",
			Buckets: StorageBuckets,
		},
		[]string{"operation", "status"},
	)

	StorageOperationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landing_storage_operation_total",
			Help: "Total number of key-value store operations",
		},
		[]string{"operation", "status"},
	)
)

// ObserveStorage records one store operation
func ObserveStorage(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	StorageOperationDuration.WithLabelValues(operation, status).Observe(MeasureDuration(start))
	StorageOperationTotal.WithLabelValues(operation, status).Inc()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
