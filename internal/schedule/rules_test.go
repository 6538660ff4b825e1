package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftmaster/internal/model"
)

func TestValidateShiftRules(t *testing.T) {
	rules := DefaultRuleConfig()

	t.Run("seven hours without break is flagged", func(t *testing.T) {
		shift := &model.Shift{ConfirmedType: "C", StartTime: "09:00", EndTime: "16:00", BreakDuration: 0}
		result := ValidateShiftRules(shift, nil, rules)
		assert.False(t, result.IsValid)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "break")
		assert.Empty(t, result.Errors)
	})

	t.Run("seven hours with sufficient break passes", func(t *testing.T) {
		shift := &model.Shift{ConfirmedType: "C", StartTime: "09:00", EndTime: "16:00", BreakDuration: 30}
		result := ValidateShiftRules(shift, nil, rules)
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Warnings)
	})

	t.Run("exactly six hours needs no break", func(t *testing.T) {
		shift := &model.Shift{ConfirmedType: "C", StartTime: "09:00", EndTime: "15:00", BreakDuration: 0}
		result := ValidateShiftRules(shift, nil, rules)
		assert.True(t, result.IsValid)
	})

	t.Run("short rest after late shift is flagged", func(t *testing.T) {
		prev := &model.Shift{ConfirmedType: "C", StartTime: "14:00", EndTime: "23:00", BreakDuration: 30}
		shift := &model.Shift{ConfirmedType: "R", StartTime: "07:00", EndTime: "11:00"}
		result := ValidateShiftRules(shift, prev, rules)
		assert.False(t, result.IsValid)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "8.0h")
	})

	t.Run("eleven hours of rest passes", func(t *testing.T) {
		prev := &model.Shift{ConfirmedType: "C", StartTime: "09:00", EndTime: "18:00", BreakDuration: 30}
		shift := &model.Shift{ConfirmedType: "C", StartTime: "09:00", EndTime: "18:00", BreakDuration: 30}
		result := ValidateShiftRules(shift, prev, rules)
		assert.True(t, result.IsValid)
	})

	t.Run("both rules can fire together", func(t *testing.T) {
		prev := &model.Shift{ConfirmedType: "C", StartTime: "14:00", EndTime: "23:00", BreakDuration: 30}
		shift := &model.Shift{ConfirmedType: "C", StartTime: "07:00", EndTime: "16:00", BreakDuration: 0}
		result := ValidateShiftRules(shift, prev, rules)
		assert.False(t, result.IsValid)
		assert.Len(t, result.Warnings, 2)
	})

	t.Run("leave day skips all checks", func(t *testing.T) {
		shift := &model.Shift{ConfirmedType: model.CodeDov}
		result := ValidateShiftRules(shift, nil, rules)
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Warnings)
	})

	t.Run("missing previous day skips the rest rule", func(t *testing.T) {
		shift := &model.Shift{ConfirmedType: "R", StartTime: "07:00", EndTime: "11:00"}
		result := ValidateShiftRules(shift, nil, rules)
		assert.True(t, result.IsValid)
	})

	t.Run("previous day without end time skips the rest rule", func(t *testing.T) {
		prev := &model.Shift{ConfirmedType: model.CodeSick}
		shift := &model.Shift{ConfirmedType: "R", StartTime: "07:00", EndTime: "11:00"}
		result := ValidateShiftRules(shift, prev, rules)
		assert.True(t, result.IsValid)
	})
}
