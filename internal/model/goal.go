// Package model defines the input records, generated plan records, and API
// envelopes shared by the HTTP server, the MCP server, and the plan engine.
package model

import (
	"fmt"
	"strings"
	"time"
)

// TimeFrame is the unit of a goal's deadline magnitude.
type TimeFrame string

const (
	TimeFrameDays   TimeFrame = "days"
	TimeFrameWeeks  TimeFrame = "weeks"
	TimeFrameMonths TimeFrame = "months"
)

// TimeUnit is the unit of daily available time.
type TimeUnit string

const (
	TimeUnitMinutes TimeUnit = "minutes"
	TimeUnitHours   TimeUnit = "hours"
)

// Tier is a low/medium/high bucket, used for both budget and intensity.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// PlanStyle is the caller's preferred planning style.
type PlanStyle string

const (
	StyleStructured PlanStyle = "structured"
	StyleFlexible   PlanStyle = "flexible"
	StyleIntensive  PlanStyle = "intensive"
)

// Priority ranks an action step within its phase.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// GoalInput is the validated questionnaire for the goal pipeline.
type GoalInput struct {
	Goal          string    `json:"goal"`
	Deadline      int       `json:"deadline"`
	TimeFrame     TimeFrame `json:"time_frame"`
	AvailableTime float64   `json:"available_time"`
	TimeUnit      TimeUnit  `json:"time_unit"`
	Preferences   []string  `json:"preferences,omitempty"`
	Constraints   []string  `json:"constraints,omitempty"`
	Budget        Tier      `json:"budget"`
	Intensity     Tier      `json:"intensity"`
	Style         PlanStyle `json:"style"`
}

// Validate rejects inputs that must never reach generation. Free-text fields
// (preferences, constraints) are not validated: unknown values resolve to
// documented fallbacks inside the engine.
func (in GoalInput) Validate() error {
	if strings.TrimSpace(in.Goal) == "" {
		return fmt.Errorf("goal is required")
	}
	if in.Deadline <= 0 {
		return fmt.Errorf("deadline must be positive")
	}
	switch in.TimeFrame {
	case TimeFrameDays, TimeFrameWeeks, TimeFrameMonths:
	default:
		return fmt.Errorf("time_frame must be one of days, weeks, months (got %q)", in.TimeFrame)
	}
	if in.AvailableTime <= 0 {
		return fmt.Errorf("available_time must be positive")
	}
	switch in.TimeUnit {
	case TimeUnitMinutes, TimeUnitHours:
	default:
		return fmt.Errorf("time_unit must be minutes or hours (got %q)", in.TimeUnit)
	}
	for _, t := range []struct {
		field string
		val   Tier
	}{{"budget", in.Budget}, {"intensity", in.Intensity}} {
		switch t.val {
		case TierLow, TierMedium, TierHigh:
		default:
			return fmt.Errorf("%s must be low, medium, or high (got %q)", t.field, t.val)
		}
	}
	switch in.Style {
	case StyleStructured, StyleFlexible, StyleIntensive:
	default:
		return fmt.Errorf("style must be structured, flexible, or intensive (got %q)", in.Style)
	}
	return nil
}

// TotalDays converts the deadline to calendar days (months count as 30).
func (in GoalInput) TotalDays() int {
	switch in.TimeFrame {
	case TimeFrameWeeks:
		return in.Deadline * 7
	case TimeFrameMonths:
		return in.Deadline * 30
	default:
		return in.Deadline
	}
}

// DailyMinutes converts the available time per day to minutes.
func (in GoalInput) DailyMinutes() int {
	if in.TimeUnit == TimeUnitHours {
		return int(in.AvailableTime * 60)
	}
	return int(in.AvailableTime)
}

// ActionStep is a single to-do item within a phase. Completed always starts
// false; completion is tracked by the caller against the stable ID and merged
// into a new plan record on save, never mutated in place.
type ActionStep struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Completed   bool     `json:"completed"`
	Priority    Priority `json:"priority"`
}

// Phase is a contiguous date-bounded segment of a goal plan.
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

// GoalPlan is the complete generated output of the goal pipeline.
// Immutable once produced.
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
