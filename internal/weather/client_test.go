package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleForecast = `{
	"current": {
		"temperature_2m": 21.6,
		"relative_humidity_2m": 55,
		"wind_speed_10m": 12.34,
		"weather_code": 2,
		"is_day": 1
	},
	"daily": {
		"time": ["2026-09-12", "2026-09-13"],
		"temperature_2m_max": [24.4, 19.2],
		"temperature_2m_min": [15.5, 12.1],
		"precipitation_probability_max": [20, null],
		"weather_code": [1, 61],
		"wind_speed_10m_max": [18.06, 9.99]
	}
}`

func TestClientForecast(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/forecast", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleForecast))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	got, err := c.Forecast(context.Background(), 40.7829, -73.9654, "2026-09-12")
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "latitude=40.7829")
	assert.Contains(t, gotQuery, "start_date=2026-09-12")
	assert.Contains(t, gotQuery, "end_date=2026-09-18")
	assert.NotContains(t, gotQuery, "forecast_days")

	assert.Equal(t, float64(22), got.Current.Temperature)
	assert.Equal(t, 55, got.Current.Humidity)
	assert.Equal(t, 12.3, got.Current.WindSpeed)
	assert.True(t, got.Current.IsDay)

	require.Len(t, got.Daily, 2)
	assert.Equal(t, "2026-09-12", got.Daily[0].Date)
	assert.Equal(t, float64(24), got.Daily[0].TemperatureMax)
	assert.Equal(t, 20, got.Daily[0].PrecipitationProbability)
	assert.Equal(t, 18.1, got.Daily[0].WindSpeedMax)

	// Null precipitation probability reads as zero.
	assert.Equal(t, 0, got.Daily[1].PrecipitationProbability)

	day, ok := got.Day("2026-09-13")
	require.True(t, ok)
	assert.Equal(t, 61, day.WeatherCode)

	_, ok = got.Day("2026-09-20")
	assert.False(t, ok)
}

func TestClientForecastWithoutDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("forecast_days"))
		assert.Empty(t, r.URL.Query().Get("start_date"))
		_, _ = w.Write([]byte(sampleForecast))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Forecast(context.Background(), 1, 2, "")
	require.NoError(t, err)
}

func TestClientForecastUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Forecast(context.Background(), 1, 2, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestClientForecastBadDate(t *testing.T) {
	_, err := NewClient("http://localhost:0").Forecast(context.Background(), 1, 2, "september 12")
	require.Error(t, err)
}
