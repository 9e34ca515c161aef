package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/gingham-app/gingham/internal/model"
)

// DefaultBaseURL is the public Open-Meteo forecast endpoint. No API key
// required.
const DefaultBaseURL = "https://api.open-meteo.com"

// forecastDays is the fixed window requested from the provider.
const forecastDays = 7

// Client fetches forecasts from Open-Meteo.
type Client struct {
	baseURL    string
	httpClient *http.Client

	// flight deduplicates concurrent fetches for the same coordinate and
	// date, so a burst of plan requests for one spot costs one upstream call.
	flight singleflight.Group
}

// NewClient creates a forecast client. An empty baseURL selects the public
// Open-Meteo endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    int     `json:"relative_humidity_2m"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		WeatherCode int     `json:"weather_code"`
		IsDay       int     `json:"is_day"`
	} `json:"current"`
	Daily struct {
		Time                     []string  `json:"time"`
		TemperatureMax           []float64 `json:"temperature_2m_max"`
		TemperatureMin           []float64 `json:"temperature_2m_min"`
		PrecipitationProbability []*int    `json:"precipitation_probability_max"`
		WeatherCode              []int     `json:"weather_code"`
		WindSpeedMax             []float64 `json:"wind_speed_10m_max"`
	} `json:"daily"`
}

// Forecast fetches current conditions plus a seven-day daily forecast for the
// coordinate. When date is non-empty the window starts on that date instead
// of today, so a picnic up to a week out still lands inside the window.
//
// Concurrent calls for the same coordinate and date share a single upstream
// request. Note singleflight reuses the first caller's context, so a
// cancelled follower still gets the leader's result.
func (c *Client) Forecast(ctx context.Context, lat, lng float64, date string) (model.Forecast, error) {
	key := fmt.Sprintf("%.4f,%.4f,%s", lat, lng, date)
	v, err, _ := c.flight.Do(key, func() (any, error) {
		return c.fetch(ctx, lat, lng, date)
	})
	if err != nil {
		return model.Forecast{}, err
	}
	return v.(model.Forecast), nil
}

func (c *Client) fetch(ctx context.Context, lat, lng float64, date string) (model.Forecast, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("current", "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code,is_day")
	params.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_probability_max,weather_code,wind_speed_10m_max")
	params.Set("timezone", "auto")
	params.Set("forecast_days", strconv.Itoa(forecastDays))

	if date != "" {
		start, err := time.Parse(model.PicnicDateFormat, date)
		if err != nil {
			return model.Forecast{}, fmt.Errorf("weather: parse date: %w", err)
		}
		params.Del("forecast_days")
		params.Set("start_date", start.Format(model.PicnicDateFormat))
		params.Set("end_date", start.AddDate(0, 0, forecastDays-1).Format(model.PicnicDateFormat))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/forecast?"+params.Encode(), nil)
	if err != nil {
		return model.Forecast{}, fmt.Errorf("weather: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Forecast{}, fmt.Errorf("weather: send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return model.Forecast{}, fmt.Errorf("weather: status %d: %s", resp.StatusCode, string(body))
	}

	var raw forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return model.Forecast{}, fmt.Errorf("weather: decode response: %w", err)
	}

	out := model.Forecast{
		Current: model.CurrentConditions{
			Temperature: math.Round(raw.Current.Temperature),
			Humidity:    raw.Current.Humidity,
			WindSpeed:   roundTenth(raw.Current.WindSpeed),
			WeatherCode: raw.Current.WeatherCode,
			IsDay:       raw.Current.IsDay == 1,
		},
	}

	for i, day := range raw.Daily.Time {
		entry := model.DailyForecast{Date: day}
		if i < len(raw.Daily.TemperatureMax) {
			entry.TemperatureMax = math.Round(raw.Daily.TemperatureMax[i])
		}
		if i < len(raw.Daily.TemperatureMin) {
			entry.TemperatureMin = math.Round(raw.Daily.TemperatureMin[i])
		}
		// The provider reports null probabilities for days beyond its
		// precipitation model horizon; treat those as zero.
		if i < len(raw.Daily.PrecipitationProbability) && raw.Daily.PrecipitationProbability[i] != nil {
			entry.PrecipitationProbability = *raw.Daily.PrecipitationProbability[i]
		}
		if i < len(raw.Daily.WeatherCode) {
			entry.WeatherCode = raw.Daily.WeatherCode[i]
		}
		if i < len(raw.Daily.WindSpeedMax) {
			entry.WindSpeedMax = roundTenth(raw.Daily.WindSpeedMax[i])
		}
		out.Daily = append(out.Daily, entry)
	}

	if len(out.Daily) == 0 {
		return model.Forecast{}, fmt.Errorf("weather: empty daily forecast")
	}

	return out, nil
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
