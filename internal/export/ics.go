package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/gingham-app/gingham/internal/model"
)

// icsTimestamp is the ICS UTC date-time layout.
const icsTimestamp = "20060102T150405Z"

// Calendar renders the plan as a single-event iCalendar document. The event
// spans the plan's start time plus its duration; times are emitted as zoned
// UTC stamps.
func Calendar(plan model.PicnicPlan) (string, error) {
	start, err := time.Parse(model.PicnicDateFormat+"T"+model.PicnicTimeFormat, plan.Date+"T"+plan.Time)
	if err != nil {
		return "", fmt.Errorf("export: parse plan start: %w", err)
	}
	end := start.Add(time.Duration(plan.Duration * float64(time.Hour)))

	description := fmt.Sprintf("%s\\n\\nLocation: %s\\nDuration: %g hours\\nGroup: %d people",
		escapeICS(plan.Summary), escapeICS(plan.Location), plan.Duration, plan.GroupSize.Guests())

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//Gingham//EN\r\n")
	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(&b, "UID:%s@gingham.app\r\n", plan.ID)
	fmt.Fprintf(&b, "DTSTART:%s\r\n", start.UTC().Format(icsTimestamp))
	fmt.Fprintf(&b, "DTEND:%s\r\n", end.UTC().Format(icsTimestamp))
	fmt.Fprintf(&b, "SUMMARY:%s\r\n", escapeICS(plan.Title))
	fmt.Fprintf(&b, "DESCRIPTION:%s\r\n", description)
	fmt.Fprintf(&b, "LOCATION:%s\r\n", escapeICS(plan.Location))
	b.WriteString("END:VEVENT\r\n")
	b.WriteString("END:VCALENDAR\r\n")

	return b.String(), nil
}

// escapeICS escapes the characters RFC 5545 treats specially in text values.
func escapeICS(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return r.Replace(s)
}
