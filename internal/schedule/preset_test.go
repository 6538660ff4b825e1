package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shiftmaster/internal/model"
)

var (
	monday  = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.Local)
	tuesday = time.Date(2025, time.June, 3, 0, 0, 0, 0, time.Local)
)

func TestResolvePreset(t *testing.T) {
	policy := DefaultDayPolicy()

	tests := []struct {
		name     string
		date     time.Time
		code     string
		expected Preset
	}{
		{
			name:     "morning shift ends at handover on long day",
			date:     monday,
			code:     "R",
			expected: Preset{Start: "09:00", End: "14:00"},
		},
		{
			name:     "morning shift ends at handover on normal day",
			date:     tuesday,
			code:     "R",
			expected: Preset{Start: "09:00", End: "13:30"},
		},
		{
			name:     "afternoon shift starts late and closes late on long day",
			date:     monday,
			code:     "O",
			expected: Preset{Start: "14:00", End: "19:00"},
		},
		{
			name:     "afternoon shift on normal day",
			date:     tuesday,
			code:     "O",
			expected: Preset{Start: "13:30", End: "18:00"},
		},
		{
			name:     "full day closes late on long day",
			date:     monday,
			code:     "C",
			expected: Preset{Start: "09:00", End: "19:00", BreakDuration: 30},
		},
		{
			name:     "combined code follows closing time",
			date:     tuesday,
			code:     "S/P",
			expected: Preset{Start: "09:00", End: "18:00", BreakDuration: 30},
		},
		{
			name:     "vacation resolves to empty preset",
			date:     monday,
			code:     "DOV",
			expected: Preset{},
		},
		{
			name:     "unknown code degrades to empty preset",
			date:     monday,
			code:     "XYZ",
			expected: Preset{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolvePreset(tt.date, tt.code, BuiltinDefinitions, policy))
		})
	}
}

func TestResolvePresetCustomDefinitionOverride(t *testing.T) {
	defs := append([]model.ShiftDefinition{}, BuiltinDefinitions...)
	defs = append(defs, model.ShiftDefinition{Code: "X", StartTime: "10:00", EndTime: "16:00", BreakDuration: 15})

	got := ResolvePreset(tuesday, "X", defs, DefaultDayPolicy())
	assert.Equal(t, Preset{Start: "10:00", End: "16:00", BreakDuration: 15}, got)
}
