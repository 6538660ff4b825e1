package schedule

import (
	"fmt"

	"shiftmaster/internal/model"
)

// ValidateShiftRules checks a shift against the break and rest rules.
//
// Shifts without clock times, and leave days, pass vacuously. A violation
// appends a warning and clears IsValid; with the current rule set there is
// no non-blocking warning state and Errors stays empty, reserved for fatal
// conditions. prev is the same employee's shift on the previous calendar
// day; nil skips the rest rule.
func ValidateShiftRules(shift *model.Shift, prev *model.Shift, rules RuleConfig) model.ValidationResult {
	result := model.ValidationResult{IsValid: true, Warnings: []string{}, Errors: []string{}}
	if !shift.HasTimes() || model.IsLeaveCode(shift.ConfirmedType) {
		return result
	}

	workMinutes := CalculateHours(shift, 0) * 60
	if workMinutes > float64(rules.BreakRequiredAfterMinutes) && shift.BreakDuration < rules.MinBreakMinutes {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"Missing mandatory break (%d min) after %dh of work.",
			rules.MinBreakMinutes, rules.BreakRequiredAfterMinutes/60))
		result.IsValid = false
	}

	if prev != nil && prev.EndTime != "" {
		// Today's start is a day after yesterday's end.
		restMinutes := TimeToMinutes(shift.StartTime) + 24*60 - TimeToMinutes(prev.EndTime)
		if restMinutes < rules.MinRestMinutes {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"Short rest between shifts (%.1fh). Minimum is %dh.",
				float64(restMinutes)/60, rules.MinRestMinutes/60))
			result.IsValid = false
		}
	}
	return result
}
