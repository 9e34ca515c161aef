package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcplib "github.com/mark3labs/mcp-go/mcp"

	"github.com/gingham-app/gingham/internal/geocode"
	"github.com/gingham-app/gingham/internal/model"
	"github.com/gingham-app/gingham/internal/plan"
	"github.com/gingham-app/gingham/internal/testutil"
	"github.com/gingham-app/gingham/internal/weather"
)

const forecastFixture = `{
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

// newTestServer builds a stateless MCP server backed by a stub forecast
// provider. The returned cleanup closes the stub.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastFixture))
	}))
	t.Cleanup(stub.Close)

	gen := plan.NewFixed(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC), "abc123def")
	return New(gen, weather.NewClient(stub.URL), geocode.NewClient("http://127.0.0.1:1"), nil, testutil.TestLogger(), "test")
}

func toolRequest(name string, args map[string]any) mcplib.CallToolRequest {
	return mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// resultText extracts the text payload from a tool result.
func resultText(t *testing.T, result *mcplib.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcplib.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestHandlePlanGoal(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handlePlanGoal(context.Background(), toolRequest("gingham_plan_goal", map[string]any{
		"goal":           "Learn Spanish",
		"deadline":       3,
		"time_frame":     "months",
		"available_time": 1,
		"time_unit":      "hours",
		"preferences":    "visual, hands-on",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var generated model.GoalPlan
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &generated))
	assert.Equal(t, "plan_1788177600000_abc123def", generated.ID)
	assert.Equal(t, "Learn Spanish Plan", generated.Title)
	assert.NotEmpty(t, generated.Phases)
}

func TestHandlePlanGoalRejectsInvalidInput(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handlePlanGoal(context.Background(), toolRequest("gingham_plan_goal", map[string]any{
		"goal": "Learn Spanish",
		// deadline missing
		"time_frame":     "months",
		"available_time": 1,
		"time_unit":      "hours",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandlePlanPicnic(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handlePlanPicnic(context.Background(), toolRequest("gingham_plan_picnic", map[string]any{
		"date":       "2026-09-12",
		"time":       "12:00",
		"location":   "Central Park",
		"lat":        40.7829,
		"lng":        -73.9654,
		"adults":     2,
		"activities": "frisbee, kite flying",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var generated model.PicnicPlan
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &generated))
	assert.Equal(t, "picnic_1788177600000_abc123def", generated.ID)
	assert.Equal(t, "Casual Picnic", generated.Title)
	assert.Equal(t, "forecast", generated.WeatherSource)
	assert.Len(t, generated.Activities, 2)
}

func TestHandlePlanPicnicDegradesWithoutForecast(t *testing.T) {
	gen := plan.NewFixed(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC), "abc123def")
	s := New(gen, weather.NewClient("http://127.0.0.1:1"), geocode.NewClient("http://127.0.0.1:1"), nil, testutil.TestLogger(), "test")

	result, err := s.handlePlanPicnic(context.Background(), toolRequest("gingham_plan_picnic", map[string]any{
		"date":     "2026-09-12",
		"time":     "12:00",
		"location": "Central Park",
		"adults":   2,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var generated model.PicnicPlan
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &generated))
	assert.Equal(t, "unavailable", generated.WeatherSource)
	assert.NotEmpty(t, generated.WeatherTips)
}

func TestHandlePlanPicnicRejectsInvalidInput(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handlePlanPicnic(context.Background(), toolRequest("gingham_plan_picnic", map[string]any{
		"date":     "not-a-date",
		"time":     "12:00",
		"location": "Central Park",
		"adults":   2,
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleWeather(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleWeather(context.Background(), toolRequest("gingham_weather", map[string]any{
		"lat":  40.7829,
		"lng":  -73.9654,
		"date": "2026-09-12",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var resp model.WeatherResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	require.Len(t, resp.Conditions, 2)
	assert.Equal(t, "Mainly clear", resp.Conditions[0].Description)
	assert.NotEmpty(t, resp.Tips)
}

func TestHandleWeatherUpstreamFailure(t *testing.T) {
	gen := plan.NewFixed(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC), "abc123def")
	s := New(gen, weather.NewClient("http://127.0.0.1:1"), geocode.NewClient("http://127.0.0.1:1"), nil, testutil.TestLogger(), "test")

	result, err := s.handleWeather(context.Background(), toolRequest("gingham_weather", map[string]any{
		"lat": 1.0,
		"lng": 1.0,
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList("   "))
	assert.Equal(t, []string{"a", "b"}, splitList("a, b"))
	assert.Equal(t, []string{"frisbee", "kite flying"}, splitList("frisbee,kite flying,"))
}
