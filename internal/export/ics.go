package export

import (
	"fmt"
	"strings"

	"shiftmaster/internal/model"
)

// Calendar renders the shifts as an ICS feed. OFF and vacation days carry no
// event; sick days with recorded times still appear so the calendar shows
// what was planned. Times are local-calendar, pinned to Europe/Prague.
func Calendar(shifts []*model.Shift, employeeName string) string {
	const nl = "\r\n"
	var b strings.Builder

	b.WriteString("BEGIN:VCALENDAR" + nl)
	b.WriteString("VERSION:2.0" + nl)
	b.WriteString("PRODID:-//ShiftMaster//CZ" + nl)
	b.WriteString("METHOD:PUBLISH" + nl)

	for _, s := range shifts {
		if s.StartTime == "" {
			continue
		}
		if s.ConfirmedType == model.CodeOff || s.ConfirmedType == model.CodeDov {
			continue
		}
		b.WriteString("BEGIN:VEVENT" + nl)
		fmt.Fprintf(&b, "UID:%s@shiftmaster.app%s", s.ID, nl)
		fmt.Fprintf(&b, "SUMMARY:Směna %s (%s)%s", s.ConfirmedType, employeeName, nl)
		fmt.Fprintf(&b, "DTSTART;TZID=Europe/Prague:%s%s", icsLocalStamp(s.Date, s.StartTime), nl)
		fmt.Fprintf(&b, "DTEND;TZID=Europe/Prague:%s%s", icsLocalStamp(s.Date, s.EndTime), nl)
		b.WriteString("END:VEVENT" + nl)
	}

	b.WriteString("END:VCALENDAR" + nl)
	return b.String()
}

// icsLocalStamp turns "2025-06-02" + "09:00" into "20250602T090000".
func icsLocalStamp(date, clock string) string {
	return strings.ReplaceAll(date, "-", "") + "T" + strings.ReplaceAll(clock, ":", "") + "00"
}
