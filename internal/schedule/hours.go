package schedule

import "shiftmaster/internal/model"

// CalculateHours computes a shift's credited hours.
//
// With both clock times set, hours are (end - start) minus the unpaid break.
// An end before the start is read as a shift crossing midnight, so one day's
// worth of minutes is added back. The result never goes below zero.
//
// Leave days have no clock times: DOV and SICK are credited at dailyFund
// (the employee's weekly fund over five days), anything else counts zero.
func CalculateHours(shift *model.Shift, dailyFund float64) float64 {
	if shift.HasTimes() {
		diff := TimeToMinutes(shift.EndTime) - TimeToMinutes(shift.StartTime)
		if diff < 0 {
			diff += 24 * 60
		}
		diff -= shift.BreakDuration
		if diff < 0 {
			diff = 0
		}
		return float64(diff) / 60
	}
	switch model.KindOf(shift.ConfirmedType) {
	case model.KindVacation, model.KindSick:
		return dailyFund
	default:
		return 0
	}
}
