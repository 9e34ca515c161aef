package plan

import (
	"github.com/gingham-app/gingham/internal/model"
	"github.com/gingham-app/gingham/internal/weather"
)

const (
	// WeatherSourceForecast marks plans whose weather tips came from live data.
	WeatherSourceForecast = "forecast"
	// WeatherSourceUnavailable marks plans that fell back to generic tips.
	WeatherSourceUnavailable = "unavailable"
)

var occasionTitles = map[model.Occasion]string{
	model.OccasionCasual:      "Casual",
	model.OccasionBirthday:    "Birthday",
	model.OccasionRomantic:    "Romantic",
	model.OccasionFamily:      "Family",
	model.OccasionCelebration: "Celebration",
	model.OccasionCorporate:   "Corporate",
}

// Picnic runs the full picnic pipeline. A nil forecast is not an error; the
// plan degrades to generic weather tips and records the degradation in
// WeatherSource. The input must already be validated.
func (g *Generator) Picnic(in model.PicnicInput, forecast *model.Forecast) (model.PicnicPlan, error) {
	if err := in.Validate(); err != nil {
		return model.PicnicPlan{}, err
	}
	in = in.Normalized()

	plan := model.PicnicPlan{
		ID:              g.planID("picnic"),
		Title:           occasionTitles[in.Occasion] + " Picnic",
		Date:            in.Date,
		Time:            in.Time,
		Location:        in.Location,
		Duration:        in.DurationHours,
		GroupSize:       in.GroupSize,
		Occasion:        in.Occasion,
		Summary:         buildSummary(in),
		PackingList:     BuildPackingList(in),
		FoodSuggestions: BuildFoodSuggestions(in),
		Activities:      BuildActivities(in),
		Schedule:        BuildSchedule(in),
		SafetyTips:      BuildSafetyTips(in),
		BackupPlans:     BuildBackupPlans(in),
		Budget:          EstimateBudget(in),
		CreatedAt:       g.now(),
	}

	if forecast != nil {
		plan.WeatherTips = weather.DeriveTips(*forecast, in.Date)
		plan.WeatherSource = WeatherSourceForecast
	} else {
		plan.WeatherTips = GenericWeatherTips()
		plan.WeatherSource = WeatherSourceUnavailable
	}

	return plan, nil
}
