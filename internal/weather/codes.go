// Package weather fetches forecasts from the Open-Meteo API and turns them
// into human advisory tips for a picnic date.
package weather

// Condition is a human-readable rendering of a WMO weather code.
type Condition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Unknown is returned for any code outside the WMO interpretation table.
var Unknown = Condition{Description: "Unknown", Icon: "❓"}

// wmoCodes maps WMO 4677 weather interpretation codes, as reported by
// Open-Meteo, to descriptions and icons.
var wmoCodes = map[int]Condition{
	0:  {"Clear sky", "☀️"},
	1:  {"Mainly clear", "🌤️"},
	2:  {"Partly cloudy", "⛅"},
	3:  {"Overcast", "☁️"},
	45: {"Fog", "🌫️"},
	48: {"Depositing rime fog", "🌫️"},
	51: {"Light drizzle", "🌦️"},
	53: {"Moderate drizzle", "🌦️"},
	55: {"Dense drizzle", "🌧️"},
	56: {"Light freezing drizzle", "🌨️"},
	57: {"Dense freezing drizzle", "🌨️"},
	61: {"Slight rain", "🌧️"},
	63: {"Moderate rain", "🌧️"},
	65: {"Heavy rain", "🌧️"},
	66: {"Light freezing rain", "🌨️"},
	67: {"Heavy freezing rain", "🌨️"},
	71: {"Slight snow fall", "🌨️"},
	73: {"Moderate snow fall", "❄️"},
	75: {"Heavy snow fall", "❄️"},
	77: {"Snow grains", "🌨️"},
	80: {"Slight rain showers", "🌦️"},
	81: {"Moderate rain showers", "🌧️"},
	82: {"Violent rain showers", "⛈️"},
	85: {"Slight snow showers", "🌨️"},
	86: {"Heavy snow showers", "❄️"},
	95: {"Thunderstorm", "⛈️"},
	96: {"Thunderstorm with slight hail", "⛈️"},
	99: {"Thunderstorm with heavy hail", "⛈️"},
}

// Describe resolves a WMO weather code. Unmapped codes get the Unknown
// sentinel rather than an error; the forecast is still usable.
func Describe(code int) Condition {
	if c, ok := wmoCodes[code]; ok {
		return c
	}
	return Unknown
}
