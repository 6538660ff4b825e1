package schedule

import "shiftmaster/internal/model"

// BuiltinDefinitions is the fixed shift-type catalogue. Custom definitions
// stored by admins overlay this set; codes not listed here and not reserved
// are still accepted as custom work codes.
var BuiltinDefinitions = []model.ShiftDefinition{
	{Code: "R", StartTime: "09:00", EndTime: "13:30", BreakDuration: 0, IsBuiltin: true},
	{Code: "C", StartTime: "09:00", EndTime: "18:00", BreakDuration: 30, IsBuiltin: true},
	{Code: "O", StartTime: "13:30", EndTime: "18:00", BreakDuration: 0, IsBuiltin: true},
	{Code: "S", StartTime: "09:00", EndTime: "18:00", BreakDuration: 30, IsBuiltin: true},
	{Code: "P", StartTime: "09:00", EndTime: "18:00", BreakDuration: 30, IsBuiltin: true},
	{Code: "RS", StartTime: "09:00", EndTime: "13:30", BreakDuration: 0, IsBuiltin: true},
	{Code: "OS", StartTime: "13:30", EndTime: "18:00", BreakDuration: 0, IsBuiltin: true},
	{Code: "D", StartTime: "09:00", EndTime: "18:00", BreakDuration: 30, IsBuiltin: true},
	{Code: "N", StartTime: "09:00", EndTime: "18:00", BreakDuration: 30, IsBuiltin: true},
	{Code: "S/P", StartTime: "09:00", EndTime: "18:00", BreakDuration: 30, IsBuiltin: true},
	{Code: "P/S", StartTime: "09:00", EndTime: "18:00", BreakDuration: 30, IsBuiltin: true},
}

// Code groups driving the day-of-week preset overrides.
var (
	afternoonCodes = map[string]bool{"O": true, "OS": true}
	morningCodes   = map[string]bool{"R": true, "RS": true}
	closingCodes   = map[string]bool{
		"O": true, "OS": true, "D": true, "N": true,
		"C": true, "S": true, "P": true, "S/P": true, "P/S": true,
	}
)
