package schedule

import (
	"time"

	"shiftmaster/internal/model"
)

// Preset is the default start/end/break for a shift type on a given date.
type Preset struct {
	Start         string `json:"start"`
	End           string `json:"end"`
	BreakDuration int    `json:"break_duration"`
}

// ResolvePreset yields the default times for a shift-type code on a date.
//
// Reserved leave codes and unknown codes degrade to an empty preset - the
// caller gets a blank shift, not an error. For known work codes the
// definition's times apply, adjusted by the day policy: afternoon codes
// start at the handover time, morning codes end at it, and every other
// closing code ends at that day's closing time. The morning branch excludes
// the closing branch, so a morning code never picks up the closing time.
func ResolvePreset(date time.Time, code string, defs []model.ShiftDefinition, policy DayPolicy) Preset {
	if model.IsLeaveCode(code) {
		return Preset{}
	}

	var def *model.ShiftDefinition
	for i := range defs {
		if defs[i].Code == code {
			def = &defs[i]
			break
		}
	}
	if def == nil {
		return Preset{}
	}

	p := Preset{Start: def.StartTime, End: def.EndTime, BreakDuration: def.BreakDuration}
	if afternoonCodes[code] {
		p.Start = policy.HandoverTime(date)
	}
	if morningCodes[code] {
		p.End = policy.HandoverTime(date)
	} else if closingCodes[code] {
		p.End = policy.ClosingTime(date)
	}
	return p
}
