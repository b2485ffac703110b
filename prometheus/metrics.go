package prometheus

import (
	"time"

	"inventory-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Entity operation metrics (create/list/get/update/delete per collection)
	EntityOperationsCounter prometheus.CounterVec

	// Duplicate-key rejections per collection
	DuplicateKeyCounter prometheus.CounterVec

	// Rows per collection
	CollectionSizeGauge prometheus.GaugeVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Entity operation metrics
	EntityOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_operations_total",
			Help: "Total number of entity operations",
		},
		[]string{"entity", "operation"},
	)

	// Duplicate-key rejections
	DuplicateKeyCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_duplicate_key_total",
			Help: "Total number of creates rejected on an existing primary key",
		},
		[]string{"entity"},
	)

	// Rows per collection
	CollectionSizeGauge = *promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_collection_rows",
			Help: "Number of rows per entity collection",
		},
		[]string{"entity"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordEntityOperation increments the counter for entity operations
func RecordEntityOperation(entity, operation string) {
	EntityOperationsCounter.WithLabelValues(entity, operation).Inc()
}

// RecordDuplicateKey increments the duplicate-key rejection counter
func RecordDuplicateKey(entity string) {
	DuplicateKeyCounter.WithLabelValues(entity).Inc()
}

// UpdateCollectionSize updates the rows gauge for a collection
func UpdateCollectionSize(entity string, count int) {
	CollectionSizeGauge.WithLabelValues(entity).Set(float64(count))
}
