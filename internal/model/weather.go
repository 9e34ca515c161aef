package model

// CurrentConditions is the provider's current-weather snapshot.
// Values arrive pre-rounded by the client (integers for temperature,
// one decimal for wind).
type CurrentConditions struct {
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	WeatherCode int     `json:"weather_code"`
	IsDay       bool    `json:"is_day"`
}

// DailyForecast is one day of the 7-day forecast window.
type DailyForecast struct {
	Date                     string  `json:"date"` // YYYY-MM-DD
	TemperatureMax           float64 `json:"temperature_max"`
	TemperatureMin           float64 `json:"temperature_min"`
	PrecipitationProbability int     `json:"precipitation_probability"` // 0-100, bounded by the provider
	WeatherCode              int     `json:"weather_code"`
	WindSpeedMax             float64 `json:"wind_speed_max"`
}

// Forecast is the structured forecast record consumed by the advisory
// deriver: a current snapshot plus exactly seven daily records.
type Forecast struct {
	Current CurrentConditions `json:"current"`
	Daily   []DailyForecast   `json:"daily"`
}

// Day returns the daily record for the given YYYY-MM-DD date, or false when
// the date is outside the forecast window.
func (f *Forecast) Day(date string) (DailyForecast, bool) {
	for _, d := range f.Daily {
		if d.Date == date {
			return d, true
		}
	}
	return DailyForecast{}, false
}

// Place is a resolved location: coordinate plus display strings.
type Place struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
	Name    string  `json:"name,omitempty"`
	PlaceID string  `json:"place_id,omitempty"`
}
