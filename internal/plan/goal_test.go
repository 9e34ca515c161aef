package plan

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gingham-app/gingham/internal/model"
)

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func fixedGenerator() *Generator {
	return NewFixed(testNow, "abc123def")
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

func TestClassifyGoalDomain(t *testing.T) {
	tests := []struct {
		goal string
		want Domain
	}{
		{"Learn Spanish", DomainLanguage},
		{"master the French language", DomainLanguage},
		{"Improve my fitness", DomainFitness},
		{"lose weight before summer", DomainFitness},
		{"daily exercise habit", DomainFitness},
		{"Start a business", DomainBusiness},
		{"launch my startup", DomainBusiness},
		{"Write a novel", DomainGeneric},
		{"", DomainGeneric},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyGoalDomain(tt.goal), "goal %q", tt.goal)
	}
}

func TestGoalRejectsInvalidInput(t *testing.T) {
	g := fixedGenerator()

	tests := []struct {
		name   string
		mutate func(*model.GoalInput)
	}{
		{"empty goal", func(in *model.GoalInput) { in.Goal = "   " }},
		{"zero deadline", func(in *model.GoalInput) { in.Deadline = 0 }},
		{"negative deadline", func(in *model.GoalInput) { in.Deadline = -2 }},
		{"bad time frame", func(in *model.GoalInput) { in.TimeFrame = "years" }},
		{"zero available time", func(in *model.GoalInput) { in.AvailableTime = 0 }},
		{"bad time unit", func(in *model.GoalInput) { in.TimeUnit = "seconds" }},
		{"bad budget", func(in *model.GoalInput) { in.Budget = "lavish" }},
		{"bad intensity", func(in *model.GoalInput) { in.Intensity = "extreme" }},
		{"bad style", func(in *model.GoalInput) { in.Style = "chaotic" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validGoalInput()
			tt.mutate(&in)
			_, err := g.Goal(in)
			require.Error(t, err)
		})
	}
}

func TestGoalPhaseTiling(t *testing.T) {
	g := fixedGenerator()

	tests := []struct {
		name       string
		deadline   int
		frame      model.TimeFrame
		wantPhases int
	}{
		{"two weeks", 2, model.TimeFrameWeeks, 2},  // 14 days: minimum floor
		{"one month", 1, model.TimeFrameMonths, 3}, // 30 days
		{"three months", 3, model.TimeFrameMonths, 7},
		{"one year worth", 12, model.TimeFrameMonths, 8}, // clamped at 8
		{"three days", 3, model.TimeFrameDays, 2},        // clamped at 2
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validGoalInput()
			in.Deadline = tt.deadline
			in.TimeFrame = tt.frame

			plan, err := g.Goal(in)
			require.NoError(t, err)
			assert.Len(t, plan.Phases, tt.wantPhases)

			// Phases tile consecutively from today and cover exactly the
			// deadline.
			totalDays := in.TotalDays()
			prevEnd := testNow.AddDate(0, 0, -1)
			for _, ph := range plan.Phases {
				start, err := time.Parse(goalDateFormat, ph.StartDate)
				require.NoError(t, err)
				end, err := time.Parse(goalDateFormat, ph.EndDate)
				require.NoError(t, err)
				assert.Equal(t, prevEnd.AddDate(0, 0, 1).Format(goalDateFormat), start.Format(goalDateFormat))
				assert.False(t, end.Before(start))
				prevEnd = end
			}
			wantEnd := testNow.AddDate(0, 0, totalDays-1).Format(goalDateFormat)
			assert.Equal(t, wantEnd, plan.Phases[len(plan.Phases)-1].EndDate)
		})
	}
}

func TestGoalActionCountScalesWithTime(t *testing.T) {
	g := fixedGenerator()

	tests := []struct {
		available float64
		unit      model.TimeUnit
		want      int
	}{
		{30, model.TimeUnitMinutes, 3}, // 30/15=2, floor of 3
		{60, model.TimeUnitMinutes, 4},
		{1, model.TimeUnitHours, 4},
		{2, model.TimeUnitHours, 5}, // 120/15=8, cap of 5
	}
	for _, tt := range tests {
		in := validGoalInput()
		in.AvailableTime = tt.available
		in.TimeUnit = tt.unit

		plan, err := g.Goal(in)
		require.NoError(t, err)
		for _, ph := range plan.Phases {
			assert.Len(t, ph.Actions, tt.want, "available=%v %s", tt.available, tt.unit)
		}
	}
}

func TestGoalActionPriorities(t *testing.T) {
	g := fixedGenerator()
	in := validGoalInput()
	in.AvailableTime = 2
	in.TimeUnit = model.TimeUnitHours // 5 actions per phase

	plan, err := g.Goal(in)
	require.NoError(t, err)
	require.NotEmpty(t, plan.Phases)

	actions := plan.Phases[0].Actions
	require.Len(t, actions, 5)
	assert.Equal(t, model.PriorityHigh, actions[0].Priority)
	assert.Equal(t, model.PriorityMedium, actions[1].Priority)
	assert.Equal(t, model.PriorityMedium, actions[2].Priority)
	assert.Equal(t, model.PriorityLow, actions[3].Priority)
	assert.Equal(t, model.PriorityLow, actions[4].Priority)

	for _, a := range actions {
		assert.False(t, a.Completed)
	}
}

func TestGoalActionDescriptionPreferenceOrder(t *testing.T) {
	g := fixedGenerator()
	in := validGoalInput()
	// Reversed request order must not change clause order in the output.
	in.Preferences = []string{prefHandsOn, prefVisual, prefAudio}

	plan, err := g.Goal(in)
	require.NoError(t, err)

	desc := plan.Phases[0].Actions[0].Description
	audio := "audio materials"
	visual := "visual aids"
	hands := "hands-on activities"
	assert.Contains(t, desc, audio)
	assert.Contains(t, desc, visual)
	assert.Contains(t, desc, hands)
	assert.Less(t, strings.Index(desc, audio), strings.Index(desc, visual))
	assert.Less(t, strings.Index(desc, visual), strings.Index(desc, hands))
}

func TestGoalResourceAndTipCaps(t *testing.T) {
	g := fixedGenerator()
	in := validGoalInput()
	in.Preferences = []string{prefAudio, prefBooks, prefCourses}
	in.Constraints = []string{constraintTime, constraintBudget}
	in.Budget = model.TierHigh

	plan, err := g.Goal(in)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(plan.Resources), maxOverallResources)
	assert.LessOrEqual(t, len(plan.Tips), maxGoalTips)
	for _, ph := range plan.Phases {
		assert.LessOrEqual(t, len(ph.Resources), maxPhaseResources)
	}
}

func TestGoalCheckpointsPerPhase(t *testing.T) {
	g := fixedGenerator()
	in := validGoalInput()

	plan, err := g.Goal(in)
	require.NoError(t, err)
	assert.Len(t, plan.Checkpoints, len(plan.Phases))
	assert.Contains(t, plan.Checkpoints[0], "Week 2")
}

func TestGoalIdentityAndTimestamp(t *testing.T) {
	g := fixedGenerator()
	in := validGoalInput()

	plan, err := g.Goal(in)
	require.NoError(t, err)
	assert.Equal(t, "plan_1788177600000_abc123def", plan.ID)
	assert.Equal(t, testNow, plan.CreatedAt)
	assert.Equal(t, "Learn Spanish Plan", plan.Title)
	assert.Equal(t, "3 months", plan.TotalDuration)
}

func TestGoalDeterministicWithFixedIdentity(t *testing.T) {
	in := validGoalInput()
	in.Preferences = []string{prefAudio}

	a, err := fixedGenerator().Goal(in)
	require.NoError(t, err)
	b, err := fixedGenerator().Goal(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGoalStableItemIDs(t *testing.T) {
	g := fixedGenerator()
	plan, err := g.Goal(validGoalInput())
	require.NoError(t, err)

	seen := map[string]bool{}
	for i, ph := range plan.Phases {
		assert.Equal(t, fmt.Sprintf("phase_%d", i+1), ph.ID)
		for j, a := range ph.Actions {
			assert.Equal(t, fmt.Sprintf("action_%d_%d", i+1, j+1), a.ID)
			assert.False(t, seen[a.ID], "duplicate action id %s", a.ID)
			seen[a.ID] = true
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "30m", formatMinutes(30))
	assert.Equal(t, "1h 0m", formatMinutes(60))
	assert.Equal(t, "1h 30m", formatMinutes(90))
}
