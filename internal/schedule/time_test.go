package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"13:30", 810},
		{"23:59", 1439},
		{"", 0},
		{"garbage", 0},
		{"9", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, TimeToMinutes(tt.input))
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "09:05", MinutesToTime(545))
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "00:00", MinutesToTime(-10))
	assert.Equal(t, "23:59", MinutesToTime(1439))
}

func TestParseSmartTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty input", "", ""},
		{"no digits passes through", "abc", "abc"},
		{"single digit", "9", "09:00"},
		{"two digits", "17", "17:00"},
		{"two digits clamped", "25", "23:00"},
		{"three digits", "930", "09:30"},
		{"three digits minutes clamped", "975", "09:59"},
		{"four digits", "1730", "17:30"},
		{"four digits both clamped", "2599", "23:59"},
		{"extra digits ignored", "173045", "17:30"},
		{"separators stripped", "17.30", "17:30"},
		{"already formatted", "09:30", "09:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSmartTime(tt.input))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "08:00", FormatDuration(8))
	assert.Equal(t, "07:30", FormatDuration(7.5))
	assert.Equal(t, "00:00", FormatDuration(0))
	assert.Equal(t, "04:15", FormatDuration(4.25))
}
