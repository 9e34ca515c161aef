package weather

import (
	"strings"

	"github.com/gingham-app/gingham/internal/model"
)

// DeriveTips turns the forecast for the picnic date into an ordered advisory
// list. Temperature and precipitation rules are exclusive tiers, not
// independent checks: a 32° day gets the heat tips and never the pleasant
// one. When the date falls outside the forecast window a single fallback tip
// is returned.
func DeriveTips(f model.Forecast, date string) []string {
	day, ok := f.Day(date)
	if !ok {
		return []string{"Check the weather forecast closer to your picnic date"}
	}

	var tips []string

	if day.TemperatureMax > 30 {
		tips = append(tips,
			"🌡️ Hot day expected - bring extra water, sunscreen, and seek shade",
			"🧊 Pack plenty of ice to keep food and drinks cold")
	} else if day.TemperatureMax < 15 {
		tips = append(tips,
			"🧥 Cool weather - bring warm layers and blankets",
			"☕ Consider bringing hot drinks in thermoses")
	} else {
		tips = append(tips, "🌡️ Pleasant temperature expected - perfect for outdoor activities")
	}

	if day.PrecipitationProbability > 70 {
		tips = append(tips,
			"☔ High chance of rain - consider rescheduling or have indoor backup plans",
			"🏠 Bring a large tarp or pop-up tent for shelter")
	} else if day.PrecipitationProbability > 30 {
		tips = append(tips, "🌦️ Possible rain - pack a pop-up tent or umbrella just in case")
	}

	if day.WindSpeedMax > 20 {
		tips = append(tips,
			"💨 Windy conditions - secure lightweight items and consider wind-resistant activities",
			"🪁 Great weather for kite flying!")
	}

	desc := strings.ToLower(Describe(day.WeatherCode).Description)
	if strings.Contains(desc, "clear") || strings.Contains(desc, "sunny") {
		tips = append(tips,
			"☀️ Sunny day - perfect for outdoor games and activities",
			"🕶️ Don't forget sunglasses and hats")
	}
	if strings.Contains(desc, "cloudy") {
		tips = append(tips, "☁️ Overcast conditions - comfortable for extended outdoor time")
	}

	return tips
}
