package schedule

import "shiftmaster/internal/model"

// MealVoucherMinHours is the day length from which a meal voucher is due.
const MealVoucherMinHours = 6

// CalculateStats folds one employee's month of shifts into totals.
//
// OFF days and untyped shifts are skipped. Vacation and sick days are
// credited at the daily fund (weeklyFund over five days) and count as work
// days. Worked days add to the hour total, earn a meal voucher from six
// hours, and count as work days when non-empty. Diff is the surplus or
// deficit against the monthly fund target.
func CalculateStats(shifts []*model.Shift, monthlyFund, weeklyFund float64) model.Stats {
	stats := model.Stats{MonthlyFund: monthlyFund}
	dailyFund := weeklyFund / 5

	for _, shift := range shifts {
		if shift.ConfirmedType == "" || model.KindOf(shift.ConfirmedType) == model.KindOff {
			continue
		}
		hours := CalculateHours(shift, dailyFund)
		switch model.KindOf(shift.ConfirmedType) {
		case model.KindVacation:
			stats.VacationHours += hours
			stats.WorkDays++
		case model.KindSick:
			stats.SickHours += hours
			stats.WorkDays++
		default:
			stats.WorkHours += hours
			if hours >= MealVoucherMinHours {
				stats.MealVouchers++
			}
			if hours > 0 {
				stats.WorkDays++
			}
		}
	}

	stats.TotalHours = stats.WorkHours + stats.VacationHours + stats.SickHours
	stats.Diff = stats.TotalHours - monthlyFund
	return stats
}

// MergeStats sums two partial aggregates over disjoint shift sets. The fold
// in CalculateStats is commutative, so batched aggregation followed by a
// merge gives the same result as a single pass. The monthly fund is taken
// from a and the diff recomputed.
func MergeStats(a, b model.Stats) model.Stats {
	merged := model.Stats{
		WorkHours:     a.WorkHours + b.WorkHours,
		VacationHours: a.VacationHours + b.VacationHours,
		SickHours:     a.SickHours + b.SickHours,
		MealVouchers:  a.MealVouchers + b.MealVouchers,
		WorkDays:      a.WorkDays + b.WorkDays,
		MonthlyFund:   a.MonthlyFund,
	}
	merged.TotalHours = merged.WorkHours + merged.VacationHours + merged.SickHours
	merged.Diff = merged.TotalHours - merged.MonthlyFund
	return merged
}
