package schedule

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-local date convention used across the service.
const DateLayout = "2006-01-02"

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysInMonth lists every day of the month in order.
func DaysInMonth(year int, month time.Month) []time.Time {
	var days []time.Time
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	for d.Month() == month {
		days = append(days, d)
		d = d.AddDate(0, 0, 1)
	}
	return days
}

// Fixed-date Czech public holidays. Easter-bound holidays move every year
// and are not tracked here.
var czechHolidays = map[string]string{
	"01-01": "Nový rok",
	"05-01": "Svátek práce",
	"05-08": "Den vítězství",
	"07-05": "Den slovanských věrozvěstů",
	"07-06": "Den upálení mistra Jana Husa",
	"09-28": "Den české státnosti",
	"10-28": "Den vzniku samostatného státu",
	"11-17": "Den boje za svobodu",
	"12-24": "Štědrý den",
	"12-25": "1. svátek vánoční",
	"12-26": "2. svátek vánoční",
}

// HolidayName returns the public holiday falling on the date, if any.
func HolidayName(date time.Time) (string, bool) {
	name, ok := czechHolidays[fmt.Sprintf("%02d-%02d", date.Month(), date.Day())]
	return name, ok
}

// WorkdaysInMonth counts the weekdays of a month that are not public
// holidays. Multiplied by the daily fund this gives the default monthly
// fund target.
func WorkdaysInMonth(year int, month time.Month) int {
	count := 0
	for _, d := range DaysInMonth(year, month) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if _, holiday := HolidayName(d); holiday {
			continue
		}
		count++
	}
	return count
}
