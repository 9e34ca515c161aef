package gingham

import (
	"encoding/json"
	"time"
)

// ---------------------------------------------------------------------------
// Goal plans
// ---------------------------------------------------------------------------

// GoalInput is the questionnaire for POST /v1/plans/goal.
// Goal, Deadline, TimeFrame, AvailableTime, and TimeUnit are required;
// the server applies defaults for the rest.
type GoalInput struct {
	Goal          string   `json:"goal"`
	Deadline      int      `json:"deadline"`
	TimeFrame     string   `json:"time_frame"` // days | weeks | months
	AvailableTime float64  `json:"available_time"`
	TimeUnit      string   `json:"time_unit"` // minutes | hours
	Preferences   []string `json:"preferences,omitempty"`
	Constraints   []string `json:"constraints,omitempty"`
	Budget        string   `json:"budget,omitempty"`    // low | medium | high
	Intensity     string   `json:"intensity,omitempty"` // low | medium | high
	Style         string   `json:"style,omitempty"`     // structured | flexible | intensive
}

// ActionStep is one concrete task within a phase.
type ActionStep struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Completed   bool   `json:"completed"`
	Priority    string `json:"priority"` // high | medium | low
}

// Phase is a stage of a goal plan with its own date range and milestone.
type Phase struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	StartDate   string       `json:"start_date"`
	EndDate     string       `json:"end_date"`
	Actions     []ActionStep `json:"actions"`
	Milestone   string       `json:"milestone"`
	Resources   []string     `json:"resources,omitempty"`
}

// GoalPlan is the generated plan returned by POST /v1/plans/goal.
type GoalPlan struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Goal          string    `json:"goal"`
	TotalDuration string    `json:"total_duration"`
	CreatedAt     time.Time `json:"created_at"`
	Phases        []Phase   `json:"phases"`
	Resources     []string  `json:"resources,omitempty"`
	Checkpoints   []string  `json:"checkpoints,omitempty"`
	Tips          []string  `json:"tips,omitempty"`
}

// ---------------------------------------------------------------------------
// Picnic plans
// ---------------------------------------------------------------------------

// GroupSize is the picnic's headcount by kind.
type GroupSize struct {
	Adults int `json:"adults"`
	Kids   int `json:"kids"`
	Pets   int `json:"pets"`
}

// Coordinate is a latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PicnicInput is the questionnaire for POST /v1/plans/picnic.
// Date, Time, Location, and GroupSize.Adults are required. When Coordinate
// is nil, the server geocodes Location to fetch the forecast.
type PicnicInput struct {
	Date            string      `json:"date"` // YYYY-MM-DD
	Time            string      `json:"time"` // HH:MM, local
	Location        string      `json:"location"`
	Coordinate      *Coordinate `json:"coordinate,omitempty"`
	GroupSize       GroupSize   `json:"group_size"`
	Occasion        string      `json:"occasion,omitempty"`   // casual | birthday | romantic | family | celebration | corporate
	FoodStyle       string      `json:"food_style,omitempty"` // bring-your-own | potluck | catered | store-bought
	Dietary         []string    `json:"dietary,omitempty"`
	Drinks          []string    `json:"drinks,omitempty"`
	Activities      []string    `json:"activities,omitempty"`
	Transport       string      `json:"transport,omitempty"` // car | bike | walk | public-transit
	Budget          string      `json:"budget,omitempty"`    // low | medium | high
	DurationHours   float64     `json:"duration_hours,omitempty"`
	SpecialRequests []string    `json:"special_requests,omitempty"`
}

// PackingItem is one entry on the packing checklist.
type PackingItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Essential bool   `json:"essential"`
	Quantity  string `json:"quantity,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// FoodSuggestion is one dish or drink recommendation.
type FoodSuggestion struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Servings   string `json:"servings"`
	PrepTime   string `json:"prep_time"`
	Difficulty string `json:"difficulty"`
	Recipe     string `json:"recipe,omitempty"`
	Tips       string `json:"tips,omitempty"`
}

// PicnicActivity is a suggested game or pastime.
type PicnicActivity struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Duration     string   `json:"duration"`
	Participants string   `json:"participants"`
	Equipment    []string `json:"equipment"`
	AgeGroup     string   `json:"age_group"`
	Description  string   `json:"description"`
}

// ScheduleSlot is one block of the picnic timeline.
type ScheduleSlot struct {
	TimeSlot    string `json:"time_slot"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
}

// BudgetLine is one category of the budget breakdown.
type BudgetLine struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// BudgetEstimate is the estimated total cost with its breakdown.
type BudgetEstimate struct {
	Estimated string       `json:"estimated"`
	Breakdown []BudgetLine `json:"breakdown"`
}

// PicnicPlan is the generated plan returned by POST /v1/plans/picnic.
// WeatherSource is "forecast" when the weather provider was reachable and
// "unavailable" when the plan fell back to generic weather tips.
type PicnicPlan struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Date            string           `json:"date"`
	Time            string           `json:"time"`
	Location        string           `json:"location"`
	Duration        float64          `json:"duration"`
	GroupSize       GroupSize        `json:"group_size"`
	Occasion        string           `json:"occasion"`
	Summary         string           `json:"summary"`
	PackingList     []PackingItem    `json:"packing_list"`
	FoodSuggestions []FoodSuggestion `json:"food_suggestions"`
	Activities      []PicnicActivity `json:"activities"`
	Schedule        []ScheduleSlot   `json:"schedule"`
	WeatherTips     []string         `json:"weather_tips"`
	WeatherSource   string           `json:"weather_source"`
	SafetyTips      []string         `json:"safety_tips"`
	BackupPlans     []string         `json:"backup_plans"`
	Budget          BudgetEstimate   `json:"budget"`
	CreatedAt       time.Time        `json:"created_at"`
}

// ---------------------------------------------------------------------------
// Stored plans
// ---------------------------------------------------------------------------

// PlanSummary is the list-view projection returned by GET /v1/plans.
type PlanSummary struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"` // goal | picnic
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// StoredPlan is the detail view returned by GET /v1/plans/{plan_id} and
// GET /v1/plans/latest. Plan holds the full generated document; decode it
// into GoalPlan or PicnicPlan according to Kind.
type StoredPlan struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Title     string          `json:"title"`
	CreatedAt time.Time       `json:"created_at"`
	Plan      json.RawMessage `json:"plan"`
}

// ShareExport is the share-format export of a picnic plan.
type ShareExport struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// ---------------------------------------------------------------------------
// Weather and locations
// ---------------------------------------------------------------------------

// CurrentConditions is the live weather at a coordinate.
type CurrentConditions struct {
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	WeatherCode int     `json:"weather_code"`
	IsDay       bool    `json:"is_day"`
}

// DailyForecast is one day of the forecast window.
type DailyForecast struct {
	Date                     string  `json:"date"`
	TemperatureMax           float64 `json:"temperature_max"`
	TemperatureMin           float64 `json:"temperature_min"`
	PrecipitationProbability int     `json:"precipitation_probability"`
	WeatherCode              int     `json:"weather_code"`
	WindSpeedMax             float64 `json:"wind_speed_max"`
}

// Forecast is the provider-normalized forecast for a coordinate.
type Forecast struct {
	Current CurrentConditions `json:"current"`
	Daily   []DailyForecast   `json:"daily"`
}

// DayOutlook is a human-readable description of one forecast day.
type DayOutlook struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// WeatherResponse is returned by GET /v1/weather. Tips is populated only
// when the request included a date.
type WeatherResponse struct {
	Forecast   Forecast     `json:"forecast"`
	Conditions []DayOutlook `json:"conditions"`
	Tips       []string     `json:"tips,omitempty"`
}

// Place is one geocoding candidate returned by GET /v1/locations.
type Place struct {
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	Address       string  `json:"address"`
	Name          string  `json:"name,omitempty"`
	PlaceID       string  `json:"place_id,omitempty"`
	DirectionsURL string  `json:"directions_url"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Postgres string `json:"postgres"` // connected | disconnected | disabled
	Uptime   int64  `json:"uptime_seconds"`
}
