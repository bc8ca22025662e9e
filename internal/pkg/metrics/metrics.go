package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const prefix = "pghive"

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Authentication metrics
	LoginAttemptsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_login_attempts_total",
			Help: "Total number of login attempts by role and outcome",
		},
		[]string{"role", "outcome"},
	)

	// Billing metrics
	PaymentsGeneratedCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_payments_generated_total",
			Help: "Total number of payment records generated",
		},
		[]string{"source"},
	)

	OutstandingDuesGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_outstanding_dues",
			Help: "Sum of unpaid payment amounts across all tenants",
		},
	)

	RemindersCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_payment_reminders_total",
			Help: "Total number of payment reminders issued",
		},
	)

	// Inventory metrics
	OccupancyRateGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_occupancy_rate",
			Help: "Fraction of rooms currently occupied",
		},
	)

	RoomOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_room_operations_total",
			Help: "Total number of room operations",
		},
		[]string{"operation"},
	)

	TenantOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_tenant_operations_total",
			Help: "Total number of tenant operations",
		},
		[]string{"operation"},
	)
)

// RecordLogin increments the login counter
func RecordLogin(role string, ok bool) {
	outcome := "failure"
	if ok {
		outcome = "success"
	}
	LoginAttemptsCounter.WithLabelValues(role, outcome).Inc()
}

// RecordPaymentsGenerated adds n generated payments
func RecordPaymentsGenerated(source string, n int) {
	PaymentsGeneratedCounter.WithLabelValues(source).Add(float64(n))
}

// RecordRoomOperation increments the counter for room operations
func RecordRoomOperation(operation string) {
	RoomOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordTenantOperation increments the counter for tenant operations
func RecordTenantOperation(operation string) {
	TenantOperationsCounter.WithLabelValues(operation).Inc()
}

// SetOccupancyRate updates the occupancy gauge
func SetOccupancyRate(rate float64) {
	OccupancyRateGauge.Set(rate)
}

// SetOutstandingDues updates the outstanding dues gauge
func SetOutstandingDues(amount float64) {
	OutstandingDuesGauge.Set(amount)
}
