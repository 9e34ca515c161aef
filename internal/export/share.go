package export

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gingham-app/gingham/internal/model"
)

// ShareMessage renders the condensed plan used for messaging apps: headline
// details plus capped excerpts of the packing list, food, activities, and
// weather tips.
func ShareMessage(plan model.PicnicPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🧺 *%s*\n\n", plan.Title)
	fmt.Fprintf(&b, "📅 *Date:* %s\n", plan.Date)
	fmt.Fprintf(&b, "⏰ *Time:* %s\n", plan.Time)
	fmt.Fprintf(&b, "📍 *Location:* %s\n", plan.Location)
	fmt.Fprintf(&b, "👥 *Group:* %d people", plan.GroupSize.Guests())
	if plan.GroupSize.Pets > 0 {
		fmt.Fprintf(&b, " + %d pets", plan.GroupSize.Pets)
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "⏱️ *Duration:* %g hours\n\n", plan.Duration)

	fmt.Fprintf(&b, "📝 *Summary:*\n%s\n\n", plan.Summary)

	b.WriteString("✅ *Essential Items to Bring:*\n")
	count := 0
	for _, item := range plan.PackingList {
		if !item.Essential || count == 8 {
			continue
		}
		count++
		fmt.Fprintf(&b, "• %s", item.Name)
		if item.Quantity != "" {
			fmt.Fprintf(&b, " (%s)", item.Quantity)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	b.WriteString("🍽️ *Food Ideas:*\n")
	for _, f := range plan.FoodSuggestions[:min(5, len(plan.FoodSuggestions))] {
		fmt.Fprintf(&b, "• %s - %s\n", f.Name, f.Servings)
	}
	b.WriteByte('\n')

	b.WriteString("🎯 *Activities:*\n")
	for _, a := range plan.Activities[:min(4, len(plan.Activities))] {
		fmt.Fprintf(&b, "• %s (%s)\n", a.Name, a.Duration)
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "💰 *Estimated Budget:* %s\n\n", plan.Budget.Estimated)

	b.WriteString("🌤️ *Weather Tips:*\n")
	for _, tip := range plan.WeatherTips[:min(3, len(plan.WeatherTips))] {
		fmt.Fprintf(&b, "• %s\n", tip)
	}
	b.WriteByte('\n')

	b.WriteString("Let's make this picnic amazing! 🌟\n\n")
	b.WriteString("_Created with Gingham_")

	return b.String()
}

// ShareURL wraps the share message in a wa.me link.
func ShareURL(plan model.PicnicPlan) string {
	return "https://wa.me/?text=" + url.QueryEscape(ShareMessage(plan))
}
