package plan

import (
	"fmt"
	"strings"
	"time"

	"github.com/gingham-app/gingham/internal/model"
)

var occasionPhrases = map[model.Occasion]string{
	model.OccasionCasual:      "relaxed outdoor gathering",
	model.OccasionBirthday:    "birthday celebration",
	model.OccasionRomantic:    "romantic picnic",
	model.OccasionFamily:      "family picnic",
	model.OccasionCelebration: "special celebration",
	model.OccasionCorporate:   "corporate event",
}

// buildSummary writes the one-paragraph invitation at the top of a plan.
func buildSummary(in model.PicnicInput) string {
	guests := in.GroupSize.Guests()

	person := "people"
	if guests == 1 {
		person = "person"
	}

	activities := "various activities"
	if len(in.Activities) > 0 {
		activities = strings.Join(in.Activities, ", ")
	}

	var food string
	switch in.FoodStyle {
	case model.FoodPotluck:
		food = "Everyone will bring something delicious to share!"
	case model.FoodBringYourOwn:
		food = "We'll prepare our own tasty treats!"
	default:
		food = "Food will be provided for everyone to enjoy!"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Join us for a wonderful %s at %s on %s starting at %s. ",
		occasionPhrases[in.Occasion], in.Location, longDate(in.Date), in.Time)
	fmt.Fprintf(&b, "We'll have %d %s enjoying %s hours of outdoor fun with %s. %s",
		guests, person, trimFloat(in.DurationHours), activities, food)

	if pets := in.GroupSize.Pets; pets > 0 {
		plural := "s"
		if pets == 1 {
			plural = ""
		}
		fmt.Fprintf(&b, " Our %d furry friend%s will be joining us too!", pets, plural)
	}

	return b.String()
}

// longDate renders "2026-09-07" as "Monday, September 7, 2026". Falls back to
// the raw string when unparseable, which validation should have ruled out.
func longDate(date string) string {
	t, err := time.Parse(model.PicnicDateFormat, date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

// trimFloat drops trailing zeros so whole-hour durations read naturally.
func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}

// BuildSafetyTips lists safety reminders, with extra entries for kids and
// pets. Insect repellent always comes last.
func BuildSafetyTips(in model.PicnicInput) []string {
	tips := []string{
		"Bring a first aid kit with basic supplies",
		"Keep food at proper temperatures to prevent spoilage",
		"Bring hand sanitizer and use before eating",
		"Stay hydrated throughout the day",
		"Be aware of your surroundings and any park rules",
	}

	if in.GroupSize.Kids > 0 {
		tips = append(tips,
			"Keep an eye on children around water or busy areas",
			"Bring extra snacks and water for kids")
	}
	if in.GroupSize.Pets > 0 {
		tips = append(tips,
			"Keep pets on leash and clean up after them",
			"Bring water for pets and check that they don't overheat")
	}

	return append(tips, "Use insect repellent if bugs are common in the area")
}

// BuildBackupPlans lists fallbacks for when the weather turns. Big occasions
// get an extra venue-reservation reminder.
func BuildBackupPlans(in model.PicnicInput) []string {
	plans := []string{
		"If weather is bad, consider moving to a covered pavilion in the park",
		"Have indoor alternatives ready like a restaurant or someone's home",
		"Bring cards or indoor games in case outdoor activities aren't possible",
		"Consider postponing if severe weather is forecasted",
	}

	if in.Occasion == model.OccasionBirthday || in.Occasion == model.OccasionCelebration {
		plans = append(plans, "Have a backup indoor venue reserved if possible")
	}

	return plans
}

// GenericWeatherTips covers the case where no forecast could be fetched.
func GenericWeatherTips() []string {
	return []string{
		"Check the weather forecast the day before your picnic",
		"Bring sunscreen and apply regularly, especially during midday",
		"Pack extra layers in case temperature changes",
		"Consider bringing a pop-up tent or umbrella for shade",
		"If rain is expected, have an indoor backup plan ready",
	}
}
