package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	days := DaysInMonth(2025, time.February)
	require.Len(t, days, 28)
	assert.Equal(t, "2025-02-01", FormatDate(days[0]))
	assert.Equal(t, "2025-02-28", FormatDate(days[27]))

	assert.Len(t, DaysInMonth(2024, time.February), 29)
	assert.Len(t, DaysInMonth(2025, time.July), 31)
}

func TestHolidayName(t *testing.T) {
	name, ok := HolidayName(time.Date(2025, time.December, 24, 0, 0, 0, 0, time.Local))
	require.True(t, ok)
	assert.Equal(t, "Štědrý den", name)

	_, ok = HolidayName(time.Date(2025, time.June, 2, 0, 0, 0, 0, time.Local))
	assert.False(t, ok)
}

func TestWorkdaysInMonth(t *testing.T) {
	// June 2025: 30 days, 21 weekdays, no fixed-date holiday.
	assert.Equal(t, 21, WorkdaysInMonth(2025, time.June))

	// May 2025: 22 weekdays minus May 1 and May 8, both Thursdays.
	assert.Equal(t, 20, WorkdaysInMonth(2025, time.May))
}
