package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gingham-app/gingham/api"
	"github.com/gingham-app/gingham/internal/geocode"
	"github.com/gingham-app/gingham/internal/model"
	"github.com/gingham-app/gingham/internal/plan"
	"github.com/gingham-app/gingham/internal/server"
	"github.com/gingham-app/gingham/internal/storage"
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

var (
	testSrv *httptest.Server
	testDB  *storage.DB
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	tc := testutil.MustStartPostgres()
	logger := testutil.TestLogger()

	var err error
	testDB, err = tc.NewTestDB(ctx, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create DB: %v\n", err)
		tc.Terminate()
		os.Exit(1)
	}

	weatherStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastFixture))
	}))
	geocodeStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"id":1850147,"name":"Ueno","latitude":35.71,"longitude":139.78,"country":"Japan","admin1":"Tokyo"}]}`))
	}))

	gen := plan.NewFixed(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC), "abc123def")

	srv := server.New(server.ServerConfig{
		Generator:           gen,
		Weather:             weather.NewClient(weatherStub.URL),
		Geocode:             geocode.NewClient(geocodeStub.URL),
		Logger:              logger,
		DB:                  testDB,
		Port:                0,
		ReadTimeout:         30 * time.Second,
		WriteTimeout:        30 * time.Second,
		Version:             "test",
		MaxRequestBodyBytes: 1 * 1024 * 1024,
		OpenAPISpec:         api.OpenAPISpec,
	})

	testSrv = httptest.NewServer(srv.Handler())

	code := m.Run()

	testSrv.Close()
	weatherStub.Close()
	geocodeStub.Close()
	testDB.Close()
	tc.Terminate()
	os.Exit(code)
}

func validGoalInput() model.GoalInput {
	return model.GoalInput{
		Goal:          "Learn Spanish",
		Deadline:      3,
		TimeFrame:     model.TimeFrameMonths,
		AvailableTime: 1,
		TimeUnit:      model.TimeUnitHours,
		Budget:        model.TierMedium,
		Intensity:     model.TierMedium,
		Style:         model.StyleStructured,
	}
}

func validPicnicInput() model.PicnicInput {
	return model.PicnicInput{
		Date:          "2026-09-12",
		Time:          "12:00",
		Location:      "Central Park",
		Coordinate:    &model.Coordinate{Lat: 40.7829, Lng: -73.9654},
		GroupSize:     model.GroupSize{Adults: 2},
		Occasion:      model.OccasionCasual,
		FoodStyle:     model.FoodPotluck,
		Activities:    []string{"frisbee"},
		Transport:     model.TransportCar,
		Budget:        model.TierMedium,
		DurationHours: 4,
	}
}

func postJSON(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(testSrv.URL+path, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeData[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope), "body: %s", string(raw))
	return envelope.Data
}

func decodeErrorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var envelope model.APIError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Error.Code
}

func TestHealthEndpoint(t *testing.T) {
	resp, err := http.Get(testSrv.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	health := decodeData[model.HealthResponse](t, resp)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "connected", health.Postgres)
	assert.Equal(t, "test", health.Version)
}

func TestOpenAPISpec(t *testing.T) {
	resp, err := http.Get(testSrv.URL + "/openapi.yaml")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/yaml", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "openapi: 3.1.0")
	assert.Contains(t, string(body), "/v1/plans/picnic")
}

func TestCreateGoalPlan(t *testing.T) {
	resp := postJSON(t, "/v1/plans/goal", validGoalInput())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	created := decodeData[model.GoalPlan](t, resp)
	assert.Equal(t, "plan_1788177600000_abc123def", created.ID)
	assert.Equal(t, "Learn Spanish Plan", created.Title)
	assert.NotEmpty(t, created.Phases)

	// The plan is persisted and retrievable.
	getResp, err := http.Get(testSrv.URL + "/v1/plans/" + created.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	stored := decodeData[struct {
		ID   string          `json:"id"`
		Kind model.PlanKind  `json:"kind"`
		Plan json.RawMessage `json:"plan"`
	}](t, getResp)
	assert.Equal(t, created.ID, stored.ID)
	assert.Equal(t, model.PlanKindGoal, stored.Kind)

	var roundTripped model.GoalPlan
	require.NoError(t, json.Unmarshal(stored.Plan, &roundTripped))
	assert.Equal(t, created.Goal, roundTripped.Goal)
}

func TestCreateGoalPlanRejectsInvalidInput(t *testing.T) {
	in := validGoalInput()
	in.Goal = "  "
	resp := postJSON(t, "/v1/plans/goal", in)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, model.ErrCodeInvalidInput, decodeErrorCode(t, resp))
}

func TestCreateGoalPlanRejectsUnknownFields(t *testing.T) {
	resp, err := http.Post(testSrv.URL+"/v1/plans/goal", "application/json",
		bytes.NewReader([]byte(`{"goal":"x","bogus_field":true}`)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, model.ErrCodeInvalidInput, decodeErrorCode(t, resp))
}

func TestCreatePicnicPlanWithForecast(t *testing.T) {
	resp := postJSON(t, "/v1/plans/picnic", validPicnicInput())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	created := decodeData[model.PicnicPlan](t, resp)
	assert.Equal(t, "picnic_1788177600000_abc123def", created.ID)
	assert.Equal(t, "Casual Picnic", created.Title)
	assert.Equal(t, "forecast", created.WeatherSource)

	// Fixture day: 24° max, 20% rain, code 1 "Mainly clear".
	assert.Contains(t, created.WeatherTips, "🌡️ Pleasant temperature expected - perfect for outdoor activities")
	assert.Contains(t, created.WeatherTips, "🕶️ Don't forget sunglasses and hats")
}

func TestCreatePicnicPlanRejectsInvalidInput(t *testing.T) {
	in := validPicnicInput()
	in.DurationHours = 0
	resp := postJSON(t, "/v1/plans/picnic", in)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, model.ErrCodeInvalidInput, decodeErrorCode(t, resp))
}

func TestListAndLatestPlans(t *testing.T) {
	// Ensure at least one plan of each kind exists.
	_ = postJSON(t, "/v1/plans/goal", validGoalInput())
	_ = postJSON(t, "/v1/plans/picnic", validPicnicInput())

	resp, err := http.Get(testSrv.URL + "/v1/plans?kind=picnic")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decodeData[struct {
		Plans []struct {
			ID   string         `json:"id"`
			Kind model.PlanKind `json:"kind"`
		} `json:"plans"`
	}](t, resp)
	require.NotEmpty(t, list.Plans)
	for _, p := range list.Plans {
		assert.Equal(t, model.PlanKindPicnic, p.Kind)
	}

	latestResp, err := http.Get(testSrv.URL + "/v1/plans/latest?kind=picnic")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, latestResp.StatusCode)
	latest := decodeData[struct {
		ID string `json:"id"`
	}](t, latestResp)
	assert.Equal(t, "picnic_1788177600000_abc123def", latest.ID)

	// kind is required for latest.
	missingKind, err := http.Get(testSrv.URL + "/v1/plans/latest")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, missingKind.StatusCode)
	assert.Equal(t, model.ErrCodeInvalidInput, decodeErrorCode(t, missingKind))
}

func TestGetPlanNotFound(t *testing.T) {
	resp, err := http.Get(testSrv.URL + "/v1/plans/picnic_0_missing")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, model.ErrCodeNotFound, decodeErrorCode(t, resp))
}

func TestExportPlan(t *testing.T) {
	created := decodeData[model.PicnicPlan](t, postJSON(t, "/v1/plans/picnic", validPicnicInput()))

	t.Run("text", func(t *testing.T) {
		resp, err := http.Get(testSrv.URL + "/v1/plans/" + created.ID + "/export?format=text")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "🧺 PICNIC PLAN - Casual Picnic")
	})

	t.Run("ics", func(t *testing.T) {
		resp, err := http.Get(testSrv.URL + "/v1/plans/" + created.ID + "/export?format=ics")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/calendar")
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "BEGIN:VCALENDAR")
	})

	t.Run("share", func(t *testing.T) {
		resp, err := http.Get(testSrv.URL + "/v1/plans/" + created.ID + "/export?format=share")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		share := decodeData[struct {
			Message string `json:"message"`
			URL     string `json:"url"`
		}](t, resp)
		assert.Contains(t, share.Message, "Casual Picnic")
		assert.Contains(t, share.URL, "https://wa.me/?text=")
	})

	t.Run("unknown format", func(t *testing.T) {
		resp, err := http.Get(testSrv.URL + "/v1/plans/" + created.ID + "/export?format=pdf")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, model.ErrCodeInvalidInput, decodeErrorCode(t, resp))
	})

	t.Run("goal plans do not export", func(t *testing.T) {
		goal := decodeData[model.GoalPlan](t, postJSON(t, "/v1/plans/goal", validGoalInput()))
		resp, err := http.Get(testSrv.URL + "/v1/plans/" + goal.ID + "/export?format=text")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, model.ErrCodeInvalidInput, decodeErrorCode(t, resp))
	})
}

func TestWeatherEndpoint(t *testing.T) {
	resp, err := http.Get(testSrv.URL + "/v1/weather?lat=40.7829&lng=-73.9654&date=2026-09-12")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	weatherResp := decodeData[model.WeatherResponse](t, resp)
	require.Len(t, weatherResp.Conditions, 2)
	assert.Equal(t, "Mainly clear", weatherResp.Conditions[0].Description)
	assert.NotEmpty(t, weatherResp.Tips)

	badResp, err := http.Get(testSrv.URL + "/v1/weather?lat=abc&lng=1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, badResp.StatusCode)
	assert.Equal(t, model.ErrCodeInvalidInput, decodeErrorCode(t, badResp))
}

func TestLocationsEndpoint(t *testing.T) {
	resp, err := http.Get(testSrv.URL + "/v1/locations?q=Ueno")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeData[struct {
		Places []struct {
			Name          string `json:"name"`
			Address       string `json:"address"`
			DirectionsURL string `json:"directions_url"`
		} `json:"places"`
	}](t, resp)
	require.NotEmpty(t, result.Places)
	assert.Equal(t, "Ueno", result.Places[0].Name)
	assert.Contains(t, result.Places[0].DirectionsURL, "https://www.google.com/maps/dir/")
}

func TestRequestIDEcho(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, testSrv.URL+"/health", nil)
	req.Header.Set("X-Request-ID", "my-request-id")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, "my-request-id", resp.Header.Get("X-Request-ID"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
}

func TestStatelessMode(t *testing.T) {
	// Without a database the generation endpoints still work but retrieval
	// reports persistence as unavailable. The unreachable weather base URL
	// exercises the generic-tips fallback at the same time.
	srv := server.New(server.ServerConfig{
		Generator:           plan.NewFixed(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC), "abc123def"),
		Weather:             weather.NewClient("http://127.0.0.1:1"),
		Geocode:             geocode.NewClient("http://127.0.0.1:1"),
		Logger:              testutil.TestLogger(),
		Version:             "test",
		MaxRequestBodyBytes: 1 * 1024 * 1024,
	})
	stateless := httptest.NewServer(srv.Handler())
	defer stateless.Close()

	in, err := json.Marshal(validPicnicInput())
	require.NoError(t, err)
	resp, err := http.Post(stateless.URL+"/v1/plans/picnic", "application/json", bytes.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data model.PicnicPlan `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	_ = resp.Body.Close()
	assert.Equal(t, "unavailable", envelope.Data.WeatherSource)
	assert.NotEmpty(t, envelope.Data.WeatherTips)

	listResp, err := http.Get(stateless.URL + "/v1/plans")
	require.NoError(t, err)
	defer func() { _ = listResp.Body.Close() }()
	assert.Equal(t, http.StatusServiceUnavailable, listResp.StatusCode)

	healthResp, err := http.Get(stateless.URL + "/health")
	require.NoError(t, err)
	healthData := decodeData[model.HealthResponse](t, healthResp)
	assert.Equal(t, "disabled", healthData.Postgres)

	weatherResp, err := http.Get(stateless.URL + "/v1/weather?lat=1&lng=1")
	require.NoError(t, err)
	defer func() { _ = weatherResp.Body.Close() }()
	assert.Equal(t, http.StatusBadGateway, weatherResp.StatusCode)
}
