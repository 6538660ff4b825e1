package model

// Reconciliation statuses, ordered by severity. The overall status of a
// record is the worst of its check-in and check-out statuses.
const (
	ReconcileMatch       = "MATCH"
	ReconcileRounded     = "ROUNDED"
	ReconcileAnomaly     = "ANOMALY"
	ReconcileMissingPlan = "MISSING_PLAN"
)

// ScannedRecord is one attendance-sheet row as extracted by the scanner.
// Unreadable fields come back empty, never as an error.
type ScannedRecord struct {
	EmployeeName string `json:"employeeName"`
	Date         string `json:"date"`     // YYYY-MM-DD
	CheckIn      string `json:"checkIn"`  // HH:MM
	CheckOut     string `json:"checkOut"` // HH:MM
}

// TimePair groups a start and end time.
type TimePair struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ReconciliationItem compares one scanned record against the matching
// planned shift. Transient; produced for review, never persisted.
type ReconciliationItem struct {
	ShiftID      string   `json:"shift_id,omitempty"`
	EmployeeName string   `json:"employee_name"`
	Date         string   `json:"date"`
	Planned      TimePair `json:"planned"`
	Scanned      TimePair `json:"scanned"`
	Final        TimePair `json:"final"`
	Status       string   `json:"status"`
}
