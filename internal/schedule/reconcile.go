package schedule

import (
	"strings"

	"shiftmaster/internal/model"
)

// DefaultRoundingTolerance is how far, in minutes, a scanned time may drift
// from the plan and still be snapped back to it.
const DefaultRoundingTolerance = 15

// RoundResult is the outcome of matching one scanned time to one planned time.
type RoundResult struct {
	FinalTime string
	Status    string
}

// SmartRoundTime classifies the discrepancy between a scanned attendance
// time and the planned shift time, and proposes the final time.
//
// A missing side is an anomaly; an exact hit is a match; a drift within the
// tolerance snaps to the plan; anything larger keeps the scanned time and is
// flagged for review.
func SmartRoundTime(scanned, planned string, tolerance int) RoundResult {
	if scanned == "" || planned == "" {
		return RoundResult{FinalTime: scanned, Status: model.ReconcileAnomaly}
	}
	diff := TimeToMinutes(scanned) - TimeToMinutes(planned)
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff == 0:
		return RoundResult{FinalTime: planned, Status: model.ReconcileMatch}
	case diff <= tolerance:
		return RoundResult{FinalTime: planned, Status: model.ReconcileRounded}
	default:
		return RoundResult{FinalTime: scanned, Status: model.ReconcileAnomaly}
	}
}

// ReconcileRecords matches scanned attendance records against the planned
// shifts and proposes final times for each.
//
// nameToID resolves scanned employee names (case-insensitive) to employee
// ids; a record whose name or date matches no planned shift yields a
// MISSING_PLAN item instead of being dropped. Check-in and check-out are
// rounded independently; the record's overall status is the worse of the
// two.
func ReconcileRecords(records []model.ScannedRecord, shifts []*model.Shift, nameToID map[string]string, tolerance int) []model.ReconciliationItem {
	if tolerance <= 0 {
		tolerance = DefaultRoundingTolerance
	}

	items := make([]model.ReconciliationItem, 0, len(records))
	for _, rec := range records {
		shift := matchShift(rec, shifts, nameToID)
		if shift == nil {
			items = append(items, model.ReconciliationItem{
				EmployeeName: rec.EmployeeName,
				Date:         rec.Date,
				Scanned:      model.TimePair{Start: rec.CheckIn, End: rec.CheckOut},
				Final:        model.TimePair{Start: rec.CheckIn, End: rec.CheckOut},
				Status:       model.ReconcileMissingPlan,
			})
			continue
		}

		start := SmartRoundTime(rec.CheckIn, shift.StartTime, tolerance)
		end := SmartRoundTime(rec.CheckOut, shift.EndTime, tolerance)

		status := model.ReconcileMatch
		switch {
		case start.Status == model.ReconcileAnomaly || end.Status == model.ReconcileAnomaly:
			status = model.ReconcileAnomaly
		case start.Status == model.ReconcileRounded || end.Status == model.ReconcileRounded:
			status = model.ReconcileRounded
		}

		items = append(items, model.ReconciliationItem{
			ShiftID:      shift.ID,
			EmployeeName: rec.EmployeeName,
			Date:         rec.Date,
			Planned:      model.TimePair{Start: shift.StartTime, End: shift.EndTime},
			Scanned:      model.TimePair{Start: rec.CheckIn, End: rec.CheckOut},
			Final:        model.TimePair{Start: start.FinalTime, End: end.FinalTime},
			Status:       status,
		})
	}
	return items
}

func matchShift(rec model.ScannedRecord, shifts []*model.Shift, nameToID map[string]string) *model.Shift {
	id := nameToID[strings.ToLower(strings.TrimSpace(rec.EmployeeName))]
	if id == "" {
		return nil
	}
	for _, s := range shifts {
		if s.Date == rec.Date && s.EmployeeID == id {
			return s
		}
	}
	return nil
}
