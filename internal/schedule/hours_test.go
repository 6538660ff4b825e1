package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shiftmaster/internal/model"
)

func TestCalculateHours(t *testing.T) {
	tests := []struct {
		name      string
		shift     model.Shift
		dailyFund float64
		expected  float64
	}{
		{
			name:     "regular day with break",
			shift:    model.Shift{ConfirmedType: "C", StartTime: "09:00", EndTime: "18:00", BreakDuration: 30},
			expected: 8.5,
		},
		{
			name:     "morning shift no break",
			shift:    model.Shift{ConfirmedType: "R", StartTime: "09:00", EndTime: "13:30"},
			expected: 4.5,
		},
		{
			name:     "overnight shift wraps around midnight",
			shift:    model.Shift{ConfirmedType: "N", StartTime: "22:00", EndTime: "06:00"},
			expected: 8,
		},
		{
			name:     "break longer than shift floors at zero",
			shift:    model.Shift{ConfirmedType: "C", StartTime: "09:00", EndTime: "09:15", BreakDuration: 30},
			expected: 0,
		},
		{
			name:     "zero length shift",
			shift:    model.Shift{ConfirmedType: "C", StartTime: "09:00", EndTime: "09:00"},
			expected: 0,
		},
		{
			name:      "vacation credited at daily fund",
			shift:     model.Shift{ConfirmedType: model.CodeDov},
			dailyFund: 8,
			expected:  8,
		},
		{
			name:      "sick day credited at daily fund",
			shift:     model.Shift{ConfirmedType: model.CodeSick},
			dailyFund: 7.5,
			expected:  7.5,
		},
		{
			name:      "day off contributes nothing",
			shift:     model.Shift{ConfirmedType: model.CodeOff},
			dailyFund: 8,
			expected:  0,
		},
		{
			name:     "work code without times contributes nothing",
			shift:    model.Shift{ConfirmedType: "C"},
			expected: 0,
		},
		{
			name:      "times win over leave code",
			shift:     model.Shift{ConfirmedType: model.CodeDov, StartTime: "09:00", EndTime: "12:00"},
			dailyFund: 8,
			expected:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CalculateHours(&tt.shift, tt.dailyFund), 1e-9)
		})
	}
}
