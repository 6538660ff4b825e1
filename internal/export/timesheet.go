// Package export renders monthly timesheets as XLSX workbooks and shift
// calendars as ICS feeds. It formats values the engine computed; no domain
// decisions are made here.
package export

import (
	"fmt"
	"io"
	"time"

	"shiftmaster/internal/model"
	"shiftmaster/internal/schedule"
)

var dayShortNames = [...]string{"Ne", "Po", "Út", "St", "Čt", "Pá", "So"}

// Timesheet writes one employee's monthly timesheet: a row per calendar day
// with times and computed hours, then a totals footer against the fund.
func Timesheet(w io.Writer, employee *model.Employee, shifts []*model.Shift, year int, month time.Month, monthlyFund float64) error {
	wb := newWorkbook()
	if err := wb.addSheet(fmt.Sprintf("%s %d-%02d", employee.Name, year, month)); err != nil {
		return err
	}
	if err := wb.writeHeader([]string{"Datum", "Den", "Typ", "Od", "Do", "Pauza (min)", "Hodiny"}); err != nil {
		return err
	}

	byDate := make(map[string]*model.Shift, len(shifts))
	for _, s := range shifts {
		byDate[s.Date] = s
	}

	for _, day := range schedule.DaysInMonth(year, month) {
		date := schedule.FormatDate(day)
		row := []interface{}{date, dayShortNames[day.Weekday()], "", "", "", 0, ""}
		if s, ok := byDate[date]; ok {
			hours := schedule.CalculateHours(s, employee.DailyFund())
			row[2] = s.ConfirmedType
			row[3] = s.StartTime
			row[4] = s.EndTime
			row[5] = s.BreakDuration
			row[6] = schedule.FormatDuration(hours)
		}
		if err := wb.writeRow(row); err != nil {
			return err
		}
	}

	stats := schedule.CalculateStats(shifts, monthlyFund, employee.WeeklyFund)
	footer := [][]interface{}{
		{},
		{"Odpracováno", "", "", "", "", "", schedule.FormatDuration(stats.WorkHours)},
		{"Dovolená", "", "", "", "", "", schedule.FormatDuration(stats.VacationHours)},
		{"Nemocenská", "", "", "", "", "", schedule.FormatDuration(stats.SickHours)},
		{"Celkem", "", "", "", "", "", schedule.FormatDuration(stats.TotalHours)},
		{"Fond", "", "", "", "", "", schedule.FormatDuration(stats.MonthlyFund)},
		{"Rozdíl", "", "", "", "", "", fmt.Sprintf("%+.1f h", stats.Diff)},
		{"Stravenky", "", "", "", "", "", stats.MealVouchers},
	}
	for _, row := range footer {
		if err := wb.writeRow(row); err != nil {
			return err
		}
	}

	return wb.save(w)
}

// TeamSummary writes the all-employees overview: one row per employee with
// their monthly totals.
func TeamSummary(w io.Writer, employees []*model.Employee, shiftsByEmployee map[string][]*model.Shift, year int, month time.Month) error {
	wb := newWorkbook()
	if err := wb.addSheet(fmt.Sprintf("Přehled %d-%02d", year, month)); err != nil {
		return err
	}
	if err := wb.writeHeader([]string{"Zaměstnanec", "Odpracováno", "Dovolená", "Nemocenská", "Celkem", "Fond", "Rozdíl", "Stravenky", "Dny"}); err != nil {
		return err
	}

	workdays := schedule.WorkdaysInMonth(year, month)
	for _, emp := range employees {
		fund := emp.DailyFund() * float64(workdays)
		stats := schedule.CalculateStats(shiftsByEmployee[emp.ID], fund, emp.WeeklyFund)
		err := wb.writeRow([]interface{}{
			emp.Name,
			schedule.FormatDuration(stats.WorkHours),
			schedule.FormatDuration(stats.VacationHours),
			schedule.FormatDuration(stats.SickHours),
			schedule.FormatDuration(stats.TotalHours),
			schedule.FormatDuration(stats.MonthlyFund),
			fmt.Sprintf("%+.1f h", stats.Diff),
			stats.MealVouchers,
			stats.WorkDays,
		})
		if err != nil {
			return err
		}
	}

	return wb.save(w)
}
