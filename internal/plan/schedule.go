package plan

import (
	"strings"
	"time"

	"github.com/gingham-app/gingham/internal/model"
)

// BuildSchedule lays out the fixed five-slot picnic timeline. Offsets are
// fractions of the event duration added to the start time; the activities
// slot is omitted entirely (not emitted empty) when no activities were
// requested.
func BuildSchedule(in model.PicnicInput) []model.ScheduleSlot {
	start, err := time.Parse(model.PicnicTimeFormat, in.Time)
	if err != nil {
		// Validated upstream; an unparseable time here means the caller
		// skipped validation. Anchor at noon rather than failing the plan.
		start = time.Date(0, 1, 1, 12, 0, 0, 0, time.UTC)
	}

	at := func(offsetHours float64) string {
		return clockLabel(start.Add(time.Duration(offsetHours * float64(time.Hour))))
	}

	schedule := []model.ScheduleSlot{
		{
			TimeSlot:    at(0),
			Activity:    "Arrival & Setup",
			Description: "Arrive at location, set up blankets and unpack supplies",
		},
	}

	if in.FoodStyle == model.FoodPotluck {
		schedule = append(schedule, model.ScheduleSlot{
			TimeSlot:    at(0.5),
			Activity:    "Food Setup",
			Description: "Everyone sets up their potluck contributions",
		})
	} else {
		schedule = append(schedule, model.ScheduleSlot{
			TimeSlot:    at(0.5),
			Activity:    "Snacks & Socializing",
			Description: "Light snacks and getting everyone comfortable",
		})
	}

	schedule = append(schedule, model.ScheduleSlot{
		TimeSlot:    at(in.DurationHours * 0.4),
		Activity:    "Main Meal",
		Description: "Enjoy the main food and drinks together",
	})

	if len(in.Activities) > 0 {
		names := in.Activities
		if len(names) > 2 {
			names = names[:2]
		}
		schedule = append(schedule, model.ScheduleSlot{
			TimeSlot:    at(in.DurationHours * 0.6),
			Activity:    "Activities",
			Description: "Time for " + strings.Join(names, " and "),
		})
	}

	schedule = append(schedule, model.ScheduleSlot{
		TimeSlot:    at(in.DurationHours - 0.5),
		Activity:    "Cleanup & Wrap Up",
		Description: "Pack up belongings and clean the area",
	})

	return schedule
}

// clockLabel renders a time in the 12-hour clock, e.g. "12:30 PM".
func clockLabel(t time.Time) string {
	return t.Format("3:04 PM")
}
