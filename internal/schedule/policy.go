package schedule

import "time"

// DayPolicy names the business day-of-week rules that were previously
// hard-wired into the roster: which weekdays the store stays open late,
// and how that shifts the preset boundaries and closing time.
type DayPolicy struct {
	// LongDays are the weekdays with extended opening hours.
	LongDays []time.Weekday

	// OpeningTime is when the store opens, every day.
	OpeningTime string

	// StandardClose / LongClose are the closing times on normal and long
	// days respectively.
	StandardClose string
	LongClose     string

	// AfternoonStart / LongAfternoonStart are when afternoon shift codes
	// begin, and its value on long days. The same pair doubles as the end
	// of morning shift codes, since the two halves hand over.
	AfternoonStart     string
	LongAfternoonStart string
}

// DefaultDayPolicy matches the store this system was built for:
// Monday and Wednesday are long days, 09:00-19:00 instead of 09:00-18:00,
// with the morning/afternoon handover moving from 13:30 to 14:00.
func DefaultDayPolicy() DayPolicy {
	return DayPolicy{
		LongDays:           []time.Weekday{time.Monday, time.Wednesday},
		OpeningTime:        "09:00",
		StandardClose:      "18:00",
		LongClose:          "19:00",
		AfternoonStart:     "13:30",
		LongAfternoonStart: "14:00",
	}
}

// IsLongDay reports whether the date falls on one of the long weekdays.
func (p DayPolicy) IsLongDay(date time.Time) bool {
	for _, d := range p.LongDays {
		if date.Weekday() == d {
			return true
		}
	}
	return false
}

// ClosingTime returns the closing time for the date.
func (p DayPolicy) ClosingTime(date time.Time) string {
	if p.IsLongDay(date) {
		return p.LongClose
	}
	return p.StandardClose
}

// HandoverTime returns the morning/afternoon handover for the date.
func (p DayPolicy) HandoverTime(date time.Time) string {
	if p.IsLongDay(date) {
		return p.LongAfternoonStart
	}
	return p.AfternoonStart
}

// RuleConfig holds the legal-rest thresholds checked by ValidateShiftRules.
type RuleConfig struct {
	// BreakRequiredAfterMinutes is the longest stretch of work allowed
	// without a qualifying break.
	BreakRequiredAfterMinutes int

	// MinBreakMinutes is the shortest break that satisfies the break rule.
	MinBreakMinutes int

	// MinRestMinutes is the minimum rest between consecutive working days.
	MinRestMinutes int
}

// DefaultRuleConfig mirrors the Czech labour-code limits the store operates
// under: a 30 minute break after 6 hours, 11 hours of rest between shifts.
func DefaultRuleConfig() RuleConfig {
	return RuleConfig{
		BreakRequiredAfterMinutes: 360,
		MinBreakMinutes:           30,
		MinRestMinutes:            660,
	}
}
