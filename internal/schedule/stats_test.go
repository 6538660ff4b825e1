package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shiftmaster/internal/model"
)

func TestCalculateStats(t *testing.T) {
	shifts := []*model.Shift{
		{ConfirmedType: "C", StartTime: "09:00", EndTime: "18:00", BreakDuration: 30},  // 8.5h, voucher
		{ConfirmedType: "R", StartTime: "09:00", EndTime: "13:30"},                     // 4.5h, no voucher
		{ConfirmedType: model.CodeDov},                                                 // 8h vacation
		{ConfirmedType: model.CodeSick},                                                // 8h sick
		{ConfirmedType: model.CodeOff},                                                 // skipped
		{ConfirmedType: ""},                                                            // skipped
		{ConfirmedType: "C"},                                                           // no times, 0h, no work day
	}

	stats := CalculateStats(shifts, 160, 40)

	assert.InDelta(t, 13, stats.WorkHours, 1e-9)
	assert.InDelta(t, 8, stats.VacationHours, 1e-9)
	assert.InDelta(t, 8, stats.SickHours, 1e-9)
	assert.InDelta(t, 29, stats.TotalHours, 1e-9)
	assert.Equal(t, 1, stats.MealVouchers)
	assert.Equal(t, 4, stats.WorkDays)
	assert.InDelta(t, -131, stats.Diff, 1e-9)
}

func TestCalculateStatsFullMonthBalances(t *testing.T) {
	// Every weekday an 8h shift; the fund target equals workDays * 8.
	var shifts []*model.Shift
	for _, day := range DaysInMonth(2025, 6) {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		shifts = append(shifts, &model.Shift{
			ConfirmedType: "C",
			Date:          FormatDate(day),
			StartTime:     "09:00",
			EndTime:       "17:30",
			BreakDuration: 30,
		})
	}

	stats := CalculateStats(shifts, float64(len(shifts))*8, 40)
	assert.Equal(t, len(shifts), stats.WorkDays)
	assert.InDelta(t, 0, stats.Diff, 1e-9)
}

func TestMergeStats(t *testing.T) {
	shifts := []*model.Shift{
		{ConfirmedType: "C", StartTime: "09:00", EndTime: "18:00", BreakDuration: 30},
		{ConfirmedType: model.CodeDov},
		{ConfirmedType: "R", StartTime: "09:00", EndTime: "13:30"},
		{ConfirmedType: model.CodeSick},
	}

	whole := CalculateStats(shifts, 100, 40)
	merged := MergeStats(
		CalculateStats(shifts[:2], 100, 40),
		CalculateStats(shifts[2:], 0, 40),
	)

	assert.Equal(t, whole, merged)
}
