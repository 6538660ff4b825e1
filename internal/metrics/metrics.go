package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shiftmaster",
			Name:      "http_requests_total",
			Help:      "Count of API requests by endpoint.",
		},
		[]string{"endpoint"},
	)

	shiftWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shiftmaster",
			Name:      "shift_writes_total",
			Help:      "Count of shift writes by action.",
		},
		[]string{"action"},
	)

	attendanceScans = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shiftmaster",
			Name:      "attendance_scans_total",
			Help:      "Count of attendance-sheet scans by outcome.",
		},
		[]string{"outcome"},
	)

	reconciliations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shiftmaster",
			Name:      "reconciliation_records_total",
			Help:      "Count of reconciled attendance records by status.",
		},
		[]string{"status"},
	)

	ruleViolations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shiftmaster",
			Name:      "rule_violations_total",
			Help:      "Count of shift saves that tripped a validation rule.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, shiftWrites, attendanceScans, reconciliations, ruleViolations)
	})
}

func IncHTTP(endpoint string) {
	httpRequests.WithLabelValues(endpoint).Inc()
}

func IncShiftWrite(action string) {
	shiftWrites.WithLabelValues(action).Inc()
}

func IncScan(outcome string) {
	attendanceScans.WithLabelValues(outcome).Inc()
}

func IncReconciliation(status string) {
	reconciliations.WithLabelValues(status).Inc()
}

func IncRuleViolation() {
	ruleViolations.Inc()
}
