package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"

	"github.com/gingham-app/gingham/internal/model"
	"github.com/gingham-app/gingham/internal/weather"
)

func (s *Server) registerTools() {
	// gingham_plan_goal: generate a phased goal plan.
	s.mcpServer.AddTool(
		mcplib.NewTool("gingham_plan_goal",
			mcplib.WithDescription(`Generate a structured goal achievement plan: phases with dates,
prioritized action steps, resources, checkpoints, and tips.

The plan is deterministic for a given input. Phases tile the full deadline
window; action step count scales with available daily time.`),
			mcplib.WithDestructiveHintAnnotation(false),
			mcplib.WithOpenWorldHintAnnotation(false),
			mcplib.WithString("goal",
				mcplib.Description("What you want to achieve, e.g. 'Learn Spanish' or 'Run a marathon'"),
				mcplib.Required(),
			),
			mcplib.WithNumber("deadline",
				mcplib.Description("Deadline magnitude, interpreted in time_frame units"),
				mcplib.Required(),
				mcplib.Min(1),
			),
			mcplib.WithString("time_frame",
				mcplib.Description("Deadline unit: days, weeks, or months"),
				mcplib.Required(),
			),
			mcplib.WithNumber("available_time",
				mcplib.Description("Time available per day, interpreted in time_unit units"),
				mcplib.Required(),
			),
			mcplib.WithString("time_unit",
				mcplib.Description("Daily time unit: minutes or hours"),
				mcplib.Required(),
			),
			mcplib.WithString("preferences",
				mcplib.Description("Comma-separated learning/working preferences, e.g. 'visual, hands-on'"),
			),
			mcplib.WithString("constraints",
				mcplib.Description("Comma-separated constraints, e.g. 'limited budget'"),
			),
			mcplib.WithString("budget",
				mcplib.Description("Budget tier: low, medium, or high"),
				mcplib.DefaultString("medium"),
			),
			mcplib.WithString("intensity",
				mcplib.Description("Effort tier: low, medium, or high"),
				mcplib.DefaultString("medium"),
			),
			mcplib.WithString("style",
				mcplib.Description("Planning style: structured, flexible, or intensive"),
				mcplib.DefaultString("structured"),
			),
		),
		s.handlePlanGoal,
	)

	// gingham_plan_picnic: generate a complete picnic plan.
	s.mcpServer.AddTool(
		mcplib.NewTool("gingham_plan_picnic",
			mcplib.WithDescription(`Generate a complete picnic plan: packing checklist, food suggestions,
activities, timed schedule, weather tips, safety tips, backup plans, and a
budget estimate.

The forecast for the picnic date is fetched automatically from the location
(or lat/lng when given); if the provider is unreachable the plan still
generates with generic weather tips.`),
			mcplib.WithDestructiveHintAnnotation(false),
			mcplib.WithOpenWorldHintAnnotation(true),
			mcplib.WithString("date",
				mcplib.Description("Picnic date, YYYY-MM-DD"),
				mcplib.Required(),
			),
			mcplib.WithString("time",
				mcplib.Description("Start time, HH:MM 24-hour local"),
				mcplib.Required(),
			),
			mcplib.WithString("location",
				mcplib.Description("Where the picnic happens, e.g. 'Central Park'"),
				mcplib.Required(),
			),
			mcplib.WithNumber("lat", mcplib.Description("Optional latitude; skips geocoding when given with lng")),
			mcplib.WithNumber("lng", mcplib.Description("Optional longitude")),
			mcplib.WithNumber("adults",
				mcplib.Description("Number of adults"),
				mcplib.Required(),
				mcplib.Min(1),
			),
			mcplib.WithNumber("kids", mcplib.Description("Number of kids")),
			mcplib.WithNumber("pets", mcplib.Description("Number of pets")),
			mcplib.WithString("occasion",
				mcplib.Description("Occasion: casual, birthday, romantic, family, celebration, or corporate"),
				mcplib.DefaultString("casual"),
			),
			mcplib.WithString("food_style",
				mcplib.Description("Food style: bring-your-own, potluck, catered, or store-bought"),
				mcplib.DefaultString("potluck"),
			),
			mcplib.WithString("dietary",
				mcplib.Description("Comma-separated dietary restrictions, e.g. 'vegetarian, gluten-free'"),
			),
			mcplib.WithString("drinks",
				mcplib.Description("Comma-separated drink preferences, e.g. 'lemonade, iced-tea'"),
			),
			mcplib.WithString("activities",
				mcplib.Description("Comma-separated activity tags, e.g. 'frisbee, kite flying'"),
			),
			mcplib.WithString("transport",
				mcplib.Description("How you get there: car, bike, walk, or transit"),
				mcplib.DefaultString("car"),
			),
			mcplib.WithString("budget",
				mcplib.Description("Budget tier: low, medium, or high"),
				mcplib.DefaultString("medium"),
			),
			mcplib.WithNumber("duration_hours",
				mcplib.Description("Picnic length in hours, 1 to 12"),
				mcplib.DefaultNumber(4),
				mcplib.Min(1),
				mcplib.Max(12),
			),
			mcplib.WithString("special_requests",
				mcplib.Description("Comma-separated special requests"),
			),
		),
		s.handlePlanPicnic,
	)

	// gingham_weather: forecast lookup with advisory tips.
	s.mcpServer.AddTool(
		mcplib.NewTool("gingham_weather",
			mcplib.WithDescription(`Fetch the 7-day forecast for a coordinate, with decoded per-day
conditions. When a date is given the window starts there and the result
includes advisory tips for that day.`),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithIdempotentHintAnnotation(true),
			mcplib.WithOpenWorldHintAnnotation(true),
			mcplib.WithNumber("lat", mcplib.Description("Latitude"), mcplib.Required()),
			mcplib.WithNumber("lng", mcplib.Description("Longitude"), mcplib.Required()),
			mcplib.WithString("date", mcplib.Description("Optional date, YYYY-MM-DD")),
		),
		s.handleWeather,
	)
}

func (s *Server) handlePlanGoal(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	in := model.GoalInput{
		Goal:          request.GetString("goal", ""),
		Deadline:      request.GetInt("deadline", 0),
		TimeFrame:     model.TimeFrame(request.GetString("time_frame", "")),
		AvailableTime: request.GetFloat("available_time", 0),
		TimeUnit:      model.TimeUnit(request.GetString("time_unit", "")),
		Preferences:   splitList(request.GetString("preferences", "")),
		Constraints:   splitList(request.GetString("constraints", "")),
		Budget:        model.Tier(request.GetString("budget", "medium")),
		Intensity:     model.Tier(request.GetString("intensity", "medium")),
		Style:         model.PlanStyle(request.GetString("style", "structured")),
	}

	generated, err := s.generator.Goal(in)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	s.persistPlan(ctx, model.PlanKindGoal, generated.ID, generated.Title, generated.CreatedAt, generated)
	return jsonResult(generated), nil
}

func (s *Server) handlePlanPicnic(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	in := model.PicnicInput{
		Date:            request.GetString("date", ""),
		Time:            request.GetString("time", ""),
		Location:        request.GetString("location", ""),
		GroupSize:       model.GroupSize{Adults: request.GetInt("adults", 0), Kids: request.GetInt("kids", 0), Pets: request.GetInt("pets", 0)},
		Occasion:        model.Occasion(request.GetString("occasion", "casual")),
		FoodStyle:       model.FoodStyle(request.GetString("food_style", "potluck")),
		Dietary:         splitList(request.GetString("dietary", "")),
		Drinks:          splitList(request.GetString("drinks", "")),
		Activities:      splitList(request.GetString("activities", "")),
		Transport:       model.Transport(request.GetString("transport", "car")),
		Budget:          model.Tier(request.GetString("budget", "medium")),
		DurationHours:   request.GetFloat("duration_hours", 4),
		SpecialRequests: splitList(request.GetString("special_requests", "")),
	}

	lat := request.GetFloat("lat", 0)
	lng := request.GetFloat("lng", 0)
	if lat != 0 || lng != 0 {
		in.Coordinate = &model.Coordinate{Lat: lat, Lng: lng}
	}

	if err := in.Validate(); err != nil {
		return errorResult(err.Error()), nil
	}

	forecast := s.fetchForecast(ctx, in)
	generated, err := s.generator.Picnic(in, forecast)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	s.persistPlan(ctx, model.PlanKindPicnic, generated.ID, generated.Title, generated.CreatedAt, generated)
	return jsonResult(generated), nil
}

func (s *Server) handleWeather(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	lat := request.GetFloat("lat", 0)
	lng := request.GetFloat("lng", 0)
	date := request.GetString("date", "")

	forecast, err := s.weather.Forecast(ctx, lat, lng, date)
	if err != nil {
		return errorResult(fmt.Sprintf("forecast fetch failed: %v", err)), nil
	}

	resp := model.WeatherResponse{Forecast: forecast}
	for _, day := range forecast.Daily {
		cond := weather.Describe(day.WeatherCode)
		resp.Conditions = append(resp.Conditions, model.DayOutlook{
			Date:        day.Date,
			Description: cond.Description,
			Icon:        cond.Icon,
		})
	}
	if date != "" {
		resp.Tips = weather.DeriveTips(forecast, date)
	}

	return jsonResult(resp), nil
}

// fetchForecast mirrors the HTTP picnic handler: geocode when needed, then
// fetch, degrading to nil on any failure.
func (s *Server) fetchForecast(ctx context.Context, in model.PicnicInput) *model.Forecast {
	var lat, lng float64
	if in.Coordinate != nil {
		lat, lng = in.Coordinate.Lat, in.Coordinate.Lng
	} else {
		place, err := s.geocode.Resolve(ctx, in.Location)
		if err != nil {
			s.logger.Warn("geocode failed, skipping forecast", "location", in.Location, "error", err)
			return nil
		}
		lat, lng = place.Lat, place.Lng
	}

	forecast, err := s.weather.Forecast(ctx, lat, lng, in.Date)
	if err != nil {
		s.logger.Warn("forecast fetch failed, using generic tips", "error", err)
		return nil
	}
	return &forecast
}

func (s *Server) persistPlan(ctx context.Context, kind model.PlanKind, id, title string, createdAt time.Time, payload any) {
	if s.db == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("marshal plan for storage", "plan_id", id, "error", err)
		return
	}
	stored := model.StoredPlan{ID: id, Kind: kind, Title: title, Payload: raw, CreatedAt: createdAt}
	if err := s.db.SavePlan(ctx, stored); err != nil {
		s.logger.Error("save plan", "plan_id", id, "error", err)
	}
}

// splitList turns a comma-separated argument into a cleaned slice.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
