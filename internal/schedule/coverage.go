package schedule

import (
	"sort"
	"time"

	"shiftmaster/internal/model"
)

type interval struct {
	start, end int // minutes since midnight, [start, end)
}

// IsShopCovered reports whether the union of the day's shift intervals fully
// spans the store's opening hours for that date.
//
// Only shifts with both times and a work-type code count; malformed
// intervals (start >= end) are discarded. The check deliberately does not
// know about weekends - callers decide whether an uncovered Saturday is
// worth an alert.
func IsShopCovered(shifts []*model.Shift, date time.Time, policy DayPolicy) bool {
	open := TimeToMinutes(policy.OpeningTime)
	close := TimeToMinutes(policy.ClosingTime(date))

	var intervals []interval
	for _, s := range shifts {
		if s == nil || !s.HasTimes() || model.IsLeaveCode(s.ConfirmedType) {
			continue
		}
		start := TimeToMinutes(s.StartTime)
		end := TimeToMinutes(s.EndTime)
		if start < end {
			intervals = append(intervals, interval{start, end})
		}
	}
	if len(intervals) == 0 {
		return false
	}

	sort.Slice(intervals, func(i, j int) bool { return intervals[i].start < intervals[j].start })

	// Merge overlapping and adjacent intervals into disjoint runs.
	merged := intervals[:1]
	for _, iv := range intervals[1:] {
		last := &merged[len(merged)-1]
		if iv.start <= last.end {
			if iv.end > last.end {
				last.end = iv.end
			}
		} else {
			merged = append(merged, iv)
		}
	}

	coveredUpTo := open
	for _, run := range merged {
		if run.start > coveredUpTo {
			return false // gap
		}
		if run.end > coveredUpTo {
			coveredUpTo = run.end
		}
		if coveredUpTo >= close {
			return true
		}
	}
	return coveredUpTo >= close
}
