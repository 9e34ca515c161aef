package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gingham-app/gingham/internal/model"
)

func forecastFor(day model.DailyForecast) model.Forecast {
	return model.Forecast{Daily: []model.DailyForecast{day}}
}

func TestDeriveTipsHotRainyWindyClear(t *testing.T) {
	f := forecastFor(model.DailyForecast{
		Date:                     "2026-09-12",
		TemperatureMax:           32,
		PrecipitationProbability: 80,
		WindSpeedMax:             25,
		WeatherCode:              0, // Clear sky
	})

	tips := DeriveTips(f, "2026-09-12")
	require.Len(t, tips, 8)

	// Exclusive tiers: heat tips, never the pleasant or moderate-rain ones.
	assert.Contains(t, tips[0], "Hot day expected")
	assert.Contains(t, tips[1], "plenty of ice")
	assert.Contains(t, tips[2], "High chance of rain")
	assert.Contains(t, tips[3], "tarp or pop-up tent")
	assert.Contains(t, tips[4], "Windy conditions")
	assert.Contains(t, tips[5], "kite flying")
	assert.Contains(t, tips[6], "Sunny day")
	assert.Contains(t, tips[7], "sunglasses and hats")

	for _, tip := range tips {
		assert.NotContains(t, tip, "Pleasant temperature")
		assert.NotContains(t, tip, "Possible rain")
	}
}

func TestDeriveTipsMildDay(t *testing.T) {
	f := forecastFor(model.DailyForecast{
		Date:                     "2026-09-12",
		TemperatureMax:           22,
		PrecipitationProbability: 40,
		WindSpeedMax:             10,
		WeatherCode:              3, // Overcast
	})

	tips := DeriveTips(f, "2026-09-12")
	require.Len(t, tips, 2)
	assert.Contains(t, tips[0], "Pleasant temperature")
	assert.Contains(t, tips[1], "Possible rain")
}

func TestDeriveTipsColdDay(t *testing.T) {
	f := forecastFor(model.DailyForecast{
		Date:           "2026-09-12",
		TemperatureMax: 10,
		WeatherCode:    2, // Partly cloudy
	})

	tips := DeriveTips(f, "2026-09-12")
	require.Len(t, tips, 3)
	assert.Contains(t, tips[0], "warm layers")
	assert.Contains(t, tips[1], "hot drinks")
	assert.Contains(t, tips[2], "Overcast conditions")
}

func TestDeriveTipsBoundaryValues(t *testing.T) {
	// Thresholds are strict: exactly 30 degrees, 70 percent, and 20 wind do
	// not trip the upper tiers.
	f := forecastFor(model.DailyForecast{
		Date:                     "2026-09-12",
		TemperatureMax:           30,
		PrecipitationProbability: 70,
		WindSpeedMax:             20,
		WeatherCode:              3,
	})

	tips := DeriveTips(f, "2026-09-12")
	require.Len(t, tips, 2)
	assert.Contains(t, tips[0], "Pleasant temperature")
	assert.Contains(t, tips[1], "Possible rain")
}

func TestDeriveTipsDateOutsideWindow(t *testing.T) {
	f := forecastFor(model.DailyForecast{Date: "2026-09-12", TemperatureMax: 22})

	tips := DeriveTips(f, "2026-10-01")
	assert.Equal(t, []string{"Check the weather forecast closer to your picnic date"}, tips)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, Condition{"Clear sky", "☀️"}, Describe(0))
	assert.Equal(t, Condition{"Thunderstorm", "⛈️"}, Describe(95))
	assert.Equal(t, Unknown, Describe(42))
	assert.Equal(t, Unknown, Describe(-1))
}
