// Package export serializes a completed picnic plan to plain text, an ICS
// calendar event, or a share message. All formatters are pure functions of
// the plan record; nothing here derives new content.
package export

import (
	"fmt"
	"strings"

	"github.com/gingham-app/gingham/internal/model"
)

// Text renders the full plan as a plain-text document suitable for printing
// or pasting.
func Text(plan model.PicnicPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🧺 PICNIC PLAN - %s\n\n", plan.Title)
	fmt.Fprintf(&b, "📅 Date: %s\n", plan.Date)
	fmt.Fprintf(&b, "⏰ Time: %s\n", plan.Time)
	fmt.Fprintf(&b, "📍 Location: %s\n", plan.Location)
	fmt.Fprintf(&b, "⏱️ Duration: %g hours\n", plan.Duration)
	fmt.Fprintf(&b, "👥 Group Size: %d adults, %d kids", plan.GroupSize.Adults, plan.GroupSize.Kids)
	if plan.GroupSize.Pets > 0 {
		fmt.Fprintf(&b, ", %d pets", plan.GroupSize.Pets)
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "📝 SUMMARY\n%s\n\n", plan.Summary)

	b.WriteString("✅ PACKING CHECKLIST\n")
	for _, item := range plan.PackingList {
		bullet := "◦"
		if item.Essential {
			bullet = "🔸"
		}
		fmt.Fprintf(&b, "%s %s", bullet, item.Name)
		if item.Quantity != "" {
			fmt.Fprintf(&b, " (%s)", item.Quantity)
		}
		if item.Notes != "" {
			fmt.Fprintf(&b, " - %s", item.Notes)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	b.WriteString("🍽️ FOOD & DRINK IDEAS\n")
	for _, food := range plan.FoodSuggestions {
		fmt.Fprintf(&b, "• %s - %s (%s, %s)\n", food.Name, food.Servings, food.Difficulty, food.PrepTime)
	}
	b.WriteByte('\n')

	b.WriteString("🎯 ACTIVITIES\n")
	for _, act := range plan.Activities {
		fmt.Fprintf(&b, "• %s - %s (%s)\n", act.Name, act.Duration, act.Participants)
	}
	b.WriteByte('\n')

	b.WriteString("📋 SCHEDULE\n")
	for _, slot := range plan.Schedule {
		fmt.Fprintf(&b, "%s - %s: %s\n", slot.TimeSlot, slot.Activity, slot.Description)
	}
	b.WriteByte('\n')

	writeBullets(&b, "🌤️ WEATHER TIPS", plan.WeatherTips)
	writeBullets(&b, "🛡️ SAFETY TIPS", plan.SafetyTips)
	writeBullets(&b, "🔄 BACKUP PLANS", plan.BackupPlans)

	b.WriteString("💰 BUDGET BREAKDOWN\n")
	fmt.Fprintf(&b, "Estimated Total: %s\n", plan.Budget.Estimated)
	for _, line := range plan.Budget.Breakdown {
		fmt.Fprintf(&b, "• %s: %s\n", line.Category, line.Amount)
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "Created with Gingham on %s", plan.CreatedAt.Format("1/2/2006"))

	return b.String()
}

func writeBullets(b *strings.Builder, heading string, lines []string) {
	b.WriteString(heading)
	b.WriteByte('\n')
	for _, line := range lines {
		fmt.Fprintf(b, "• %s\n", line)
	}
	b.WriteByte('\n')
}
