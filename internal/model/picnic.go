package model

import (
	"fmt"
	"strings"
	"time"
)

// Occasion is the kind of gathering a picnic celebrates.
type Occasion string

const (
	OccasionCasual      Occasion = "casual"
	OccasionBirthday    Occasion = "birthday"
	OccasionRomantic    Occasion = "romantic"
	OccasionFamily      Occasion = "family"
	OccasionCelebration Occasion = "celebration"
	OccasionCorporate   Occasion = "corporate"
)

// FoodStyle is how food is sourced for the picnic.
type FoodStyle string

const (
	FoodBringYourOwn FoodStyle = "bring-your-own"
	FoodPotluck      FoodStyle = "potluck"
	FoodCatered      FoodStyle = "catered"
	FoodStoreBought  FoodStyle = "store-bought"
)

// Transport is how the group reaches the picnic site.
type Transport string

const (
	TransportCar     Transport = "car"
	TransportBike    Transport = "bike"
	TransportWalk    Transport = "walk"
	TransportTransit Transport = "public-transit"
)

// GroupSize is the picnic's headcount by kind.
type GroupSize struct {
	Adults int `json:"adults"`
	Kids   int `json:"kids"`
	Pets   int `json:"pets"`
}

// Guests returns adults plus kids (pets don't eat sandwiches).
func (g GroupSize) Guests() int { return g.Adults + g.Kids }

// Coordinate is a latitude/longitude pair. The engine does not range-check
// coordinates; they come from the location provider and are assumed valid.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PicnicDateFormat is the calendar-date layout for picnic inputs and forecasts.
const PicnicDateFormat = "2006-01-02"

// PicnicTimeFormat is the local time-of-day layout for picnic inputs.
const PicnicTimeFormat = "15:04"

// PicnicInput is the validated questionnaire for the picnic pipeline.
type PicnicInput struct {
	Date            string      `json:"date"` // YYYY-MM-DD
	Time            string      `json:"time"` // HH:MM, local
	Location        string      `json:"location"`
	Coordinate      *Coordinate `json:"coordinate,omitempty"`
	GroupSize       GroupSize   `json:"group_size"`
	Occasion        Occasion    `json:"occasion"`
	FoodStyle       FoodStyle   `json:"food_style"`
	Dietary         []string    `json:"dietary,omitempty"`
	Drinks          []string    `json:"drinks,omitempty"`
	Activities      []string    `json:"activities,omitempty"`
	Transport       Transport   `json:"transport"`
	Budget          Tier        `json:"budget"`
	DurationHours   float64     `json:"duration_hours"`
	SpecialRequests []string    `json:"special_requests,omitempty"`
}

// Validate rejects inputs that must never reach generation.
func (in PicnicInput) Validate() error {
	if in.Date == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := time.Parse(PicnicDateFormat, in.Date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD (got %q)", in.Date)
	}
	if in.Time == "" {
		return fmt.Errorf("time is required")
	}
	if _, err := time.Parse(PicnicTimeFormat, in.Time); err != nil {
		return fmt.Errorf("time must be HH:MM (got %q)", in.Time)
	}
	if strings.TrimSpace(in.Location) == "" {
		return fmt.Errorf("location is required")
	}
	if in.GroupSize.Adults < 1 {
		return fmt.Errorf("group_size.adults must be at least 1")
	}
	if in.GroupSize.Kids < 0 || in.GroupSize.Pets < 0 {
		return fmt.Errorf("group_size.kids and group_size.pets must not be negative")
	}
	switch in.Occasion {
	case OccasionCasual, OccasionBirthday, OccasionRomantic,
		OccasionFamily, OccasionCelebration, OccasionCorporate:
	default:
		return fmt.Errorf("unknown occasion %q", in.Occasion)
	}
	switch in.FoodStyle {
	case FoodBringYourOwn, FoodPotluck, FoodCatered, FoodStoreBought:
	default:
		return fmt.Errorf("unknown food_style %q", in.FoodStyle)
	}
	switch in.Transport {
	case TransportCar, TransportBike, TransportWalk, TransportTransit:
	default:
		return fmt.Errorf("unknown transport %q", in.Transport)
	}
	switch in.Budget {
	case TierLow, TierMedium, TierHigh:
	default:
		return fmt.Errorf("budget must be low, medium, or high (got %q)", in.Budget)
	}
	if in.DurationHours < 1 || in.DurationHours > 12 {
		return fmt.Errorf("duration_hours must be between 1 and 12 (got %v)", in.DurationHours)
	}
	return nil
}

// Normalized returns a copy with activities and special requests deduplicated,
// preserving first-occurrence order. Activity tags are logically ordered lists
// for display but must not repeat.
func (in PicnicInput) Normalized() PicnicInput {
	out := in
	out.Activities = dedupe(in.Activities)
	out.SpecialRequests = dedupe(in.SpecialRequests)
	return out
}

func dedupe(vals []string) []string {
	if len(vals) == 0 {
		return vals
	}
	seen := make(map[string]bool, len(vals))
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// ItemCategory groups packing items for presentation.
type ItemCategory string

const (
	CategoryFood       ItemCategory = "food"
	CategoryGear       ItemCategory = "gear"
	CategoryActivities ItemCategory = "activities"
	CategorySafety     ItemCategory = "safety"
	CategoryComfort    ItemCategory = "comfort"
)

// PackingItem is one recommended physical item for a picnic. IDs are
// content-derived slugs, stable across regenerations of the same plan, so
// callers can track checked state externally.
type PackingItem struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Category  ItemCategory `json:"category"`
	Essential bool         `json:"essential"`
	Quantity  string       `json:"quantity,omitempty"`
	Notes     string       `json:"notes,omitempty"`
}

// FoodCategory groups food suggestions for presentation.
type FoodCategory string

const (
	FoodCatMain    FoodCategory = "main"
	FoodCatSide    FoodCategory = "side"
	FoodCatSnack   FoodCategory = "snack"
	FoodCatDessert FoodCategory = "dessert"
	FoodCatDrink   FoodCategory = "drink"
)

// Difficulty rates a food suggestion's preparation effort.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// FoodSuggestion is one proposed dish or drink.
type FoodSuggestion struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Category   FoodCategory `json:"category"`
	Servings   string       `json:"servings"`
	PrepTime   string       `json:"prep_time"`
	Difficulty Difficulty   `json:"difficulty"`
	Recipe     string       `json:"recipe,omitempty"`
	Tips       string       `json:"tips,omitempty"`
}

// AgeGroup scopes an activity to part of the group.
type AgeGroup string

const (
	AgeAll    AgeGroup = "all"
	AgeKids   AgeGroup = "kids"
	AgeAdults AgeGroup = "adults"
)

// PicnicActivity is a detailed entry for a recognized activity tag.
type PicnicActivity struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Duration     string   `json:"duration"`
	Participants string   `json:"participants"`
	Equipment    []string `json:"equipment"`
	AgeGroup     AgeGroup `json:"age_group"`
	Description  string   `json:"description"`
}

// ScheduleSlot is one time-labeled entry in the picnic schedule.
type ScheduleSlot struct {
	TimeSlot    string `json:"time_slot"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
}

// BudgetLine is one itemized row of the budget estimate.
type BudgetLine struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// BudgetEstimate is the currency-labeled total plus itemized breakdown.
type BudgetEstimate struct {
	Estimated string       `json:"estimated"`
	Breakdown []BudgetLine `json:"breakdown"`
}

// PicnicPlan is the complete generated output of the picnic pipeline.
// Immutable once produced.
type PicnicPlan struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Date            string           `json:"date"`
	Time            string           `json:"time"`
	Location        string           `json:"location"`
	Duration        float64          `json:"duration"`
	GroupSize       GroupSize        `json:"group_size"`
	Occasion        Occasion         `json:"occasion"`
	Summary         string           `json:"summary"`
	PackingList     []PackingItem    `json:"packing_list"`
	FoodSuggestions []FoodSuggestion `json:"food_suggestions"`
	Activities      []PicnicActivity `json:"activities"`
	Schedule        []ScheduleSlot   `json:"schedule"`
	WeatherTips     []string         `json:"weather_tips"`
	WeatherSource   string           `json:"weather_source"` // "forecast" or "unavailable"
	SafetyTips      []string         `json:"safety_tips"`
	BackupPlans     []string         `json:"backup_plans"`
	Budget          BudgetEstimate   `json:"budget"`
	CreatedAt       time.Time        `json:"created_at"`
}
