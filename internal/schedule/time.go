// Package schedule implements the shift-hours, validation, coverage and
// reconciliation engine. Every function here is a pure transformation over
// plain values: no I/O, no shared state, and malformed input degrades to a
// zero value instead of an error.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeToMinutes parses an HH:MM string into minutes since midnight.
// Empty or unparseable input yields 0.
func TimeToMinutes(t string) int {
	h, m, ok := splitTime(t)
	if !ok {
		return 0
	}
	return h*60 + m
}

// MinutesToTime formats minutes since midnight as zero-padded HH:MM.
func MinutesToTime(min int) string {
	if min < 0 {
		min = 0
	}
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// FormatDuration renders decimal hours as HH:MM for display.
func FormatDuration(hours float64) string {
	h := int(hours)
	m := int((hours-float64(h))*60 + 0.5)
	if m == 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// ParseSmartTime normalizes lenient numeric user input into HH:MM.
// Non-digit characters are stripped first; the digit count then decides:
//
//	"9"    -> "09:00"
//	"17"   -> "17:00"   (hour clamped to 23)
//	"930"  -> "09:30"   (first digit is the hour)
//	"1730" -> "17:30"   (trailing digits ignored, both fields clamped)
//
// Input with no digits at all is returned unchanged. The function never
// rejects: out-of-range values are clamped.
func ParseSmartTime(input string) string {
	if input == "" {
		return ""
	}
	var digits strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	clean := digits.String()
	if clean == "" {
		return input
	}

	switch {
	case len(clean) == 1:
		return "0" + clean + ":00"
	case len(clean) == 2:
		hour, _ := strconv.Atoi(clean)
		if hour > 23 {
			hour = 23
		}
		return fmt.Sprintf("%02d:00", hour)
	case len(clean) == 3:
		hour, _ := strconv.Atoi(clean[:1])
		min, _ := strconv.Atoi(clean[1:3])
		if min > 59 {
			min = 59
		}
		return fmt.Sprintf("0%d:%02d", hour, min)
	default:
		hour, _ := strconv.Atoi(clean[:2])
		min, _ := strconv.Atoi(clean[2:4])
		if hour > 23 {
			hour = 23
		}
		if min > 59 {
			min = 59
		}
		return fmt.Sprintf("%02d:%02d", hour, min)
	}
}

func splitTime(t string) (hour, min int, ok bool) {
	if t == "" {
		return 0, 0, false
	}
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}
