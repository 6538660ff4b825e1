package model

import "time"

// Reserved leave codes. Their semantics are fixed regardless of any custom
// shift definitions: OFF contributes zero hours, DOV and SICK are credited
// at the employee's daily fund.
const (
	CodeOff  = "OFF"
	CodeDov  = "DOV"
	CodeSick = "SICK"
)

// ShiftKind classifies a confirmed type code.
type ShiftKind int

const (
	KindWork ShiftKind = iota // any non-reserved code, including custom ones
	KindOff
	KindVacation
	KindSick
)

// KindOf maps a confirmed type code to its kind. Unknown and custom codes
// are work codes; only the three reserved leave codes are special.
func KindOf(code string) ShiftKind {
	switch code {
	case CodeOff:
		return KindOff
	case CodeDov:
		return KindVacation
	case CodeSick:
		return KindSick
	default:
		return KindWork
	}
}

// IsLeaveCode reports whether code is one of the reserved leave codes.
func IsLeaveCode(code string) bool {
	return KindOf(code) != KindWork
}

// Shift is a single work record for one employee on one calendar date.
// The core treats it as an immutable value; edits go through the store,
// which appends to the history trail.
type Shift struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	Date          string    `json:"date"` // YYYY-MM-DD, local calendar
	ConfirmedType string    `json:"confirmed_type"`
	StartTime     string    `json:"start_time"` // HH:MM, empty for leave codes
	EndTime       string    `json:"end_time"`
	BreakDuration int       `json:"break_duration"` // unpaid break, minutes
	Note          string    `json:"note,omitempty"`
	IsWeekend     bool      `json:"is_weekend"`
	IsOffered     bool      `json:"is_offered"` // listed on the swap market
	IsAudit       bool      `json:"is_audit"`   // belongs to the authoritative parallel plan

	// ManuallyEdited marks an audit-plan copy an admin has written directly.
	// The live mirror leaves such copies alone.
	ManuallyEdited bool `json:"manually_edited"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasTimes reports whether both clock times are set.
func (s *Shift) HasTimes() bool {
	return s.StartTime != "" && s.EndTime != ""
}

// ShiftDefinition is a named shift-type template. The effective set is the
// built-in catalogue overlaid with user-created custom definitions.
type ShiftDefinition struct {
	Code          string `json:"code"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	BreakDuration int    `json:"break_duration"`
	IsBuiltin     bool   `json:"is_builtin"`
}

// ShiftHistoryEntry is one record of the append-only edit trail.
type ShiftHistoryEntry struct {
	ID        int64     `json:"id"`
	ShiftID   string    `json:"shift_id"`
	UserID    string    `json:"user_id"`
	UserEmail string    `json:"user_email"`
	Action    string    `json:"action"` // created, updated, offered, claimed, deleted
	PrevState string    `json:"prev_state,omitempty"` // JSON snapshot before the edit
	CreatedAt time.Time `json:"created_at"`
}

// ValidationResult carries the outcome of the rule checks for one shift.
// Errors is reserved for fatal conditions; the current rule set only
// produces warnings, which also clear IsValid.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Warnings []string `json:"warnings"`
	Errors   []string `json:"errors"`
}

// Stats is a derived monthly aggregate for one employee. Never stored.
type Stats struct {
	TotalHours    float64 `json:"total_hours"`
	WorkHours     float64 `json:"work_hours"`
	VacationHours float64 `json:"vacation_hours"`
	SickHours     float64 `json:"sick_hours"`
	MealVouchers  int     `json:"meal_vouchers"`
	WorkDays      int     `json:"work_days"`
	MonthlyFund   float64 `json:"monthly_fund"`
	Diff          float64 `json:"diff"`
}
