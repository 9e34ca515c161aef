package plan

import (
	"fmt"

	"github.com/gingham-app/gingham/internal/model"
)

// Preference tags recognized by the goal pipeline. Anything else is ignored.
const (
	prefAudio   = "Audio learning"
	prefVisual  = "Visual learning"
	prefHandsOn = "Hands-on practice"
	prefBooks   = "Books/Reading"
	prefCourses = "Online courses"

	constraintTime   = "Time constraints"
	constraintBudget = "Limited budget"
)

const (
	maxPhaseResources   = 4
	maxOverallResources = 8
	maxGoalTips         = 6
)

const goalDateFormat = "2006-01-02"

// Goal generates a complete goal plan from a validated input. It fails only
// on input validation; every unmapped keyword or out-of-range table lookup
// resolves to a documented fallback.
func (g *Generator) Goal(in model.GoalInput) (model.GoalPlan, error) {
	if err := in.Validate(); err != nil {
		return model.GoalPlan{}, fmt.Errorf("plan: invalid goal input: %w", err)
	}

	domain := ClassifyGoalDomain(in.Goal)
	totalDays := in.TotalDays()
	phases := g.buildPhases(in, domain, totalDays)

	return model.GoalPlan{
		ID:            g.planID("plan"),
		Title:         in.Goal + " Plan",
		Goal:          in.Goal,
		TotalDuration: fmt.Sprintf("%d %s", in.Deadline, in.TimeFrame),
		CreatedAt:     g.now().UTC(),
		Phases:        phases,
		Resources:     buildGoalResources(in, domain),
		Checkpoints:   buildCheckpoints(domain, len(phases)),
		Tips:          buildGoalTips(in, domain),
	}, nil
}

// buildPhases tiles phases consecutively from today with no gaps or overlaps.
// Phase count scales with duration (one phase per ~two weeks, clamped 2-8);
// the last phase absorbs the remainder so the phases cover exactly totalDays.
func (g *Generator) buildPhases(in model.GoalInput, domain Domain, totalDays int) []model.Phase {
	numPhases := clamp(ceilDiv(totalDays, 14), 2, 8)
	daysPerPhase := ceilDiv(totalDays, numPhases)
	today := g.now()

	phases := make([]model.Phase, 0, numPhases)
	for i := 0; i < numPhases; i++ {
		startOffset := i * daysPerPhase
		endOffset := (i + 1) * daysPerPhase
		if endOffset > totalDays {
			endOffset = totalDays
		}

		phases = append(phases, model.Phase{
			ID:          fmt.Sprintf("phase_%d", i+1),
			Title:       phaseTitle(domain, i),
			Description: phaseDescription(domain, in.Goal, i),
			StartDate:   today.AddDate(0, 0, startOffset).Format(goalDateFormat),
			EndDate:     today.AddDate(0, 0, endOffset-1).Format(goalDateFormat),
			Actions:     buildActions(in, domain, i),
			Milestone:   phaseMilestone(domain, i),
			Resources:   buildPhaseResources(in, domain, i),
		})
	}
	return phases
}

func phaseTitle(domain Domain, phaseIdx int) string {
	titles := phaseTitles[domain]
	if phaseIdx < len(titles) {
		return titles[phaseIdx]
	}
	return fmt.Sprintf("Phase %d", phaseIdx+1)
}

func phaseDescription(domain Domain, goal string, phaseIdx int) string {
	if descs, ok := phaseDescriptions[domain]; ok && phaseIdx < len(descs) {
		return descs[phaseIdx]
	}
	switch domain {
	case DomainLanguage:
		return fmt.Sprintf("Continue developing your skills in phase %d", phaseIdx+1)
	case DomainFitness:
		return fmt.Sprintf("Continue your fitness journey in phase %d", phaseIdx+1)
	default:
		return fmt.Sprintf("Phase %d of your journey towards achieving %s", phaseIdx+1, goal)
	}
}

func phaseMilestone(domain Domain, phaseIdx int) string {
	if ms, ok := phaseMilestones[domain]; ok {
		if phaseIdx < len(ms) {
			return ms[phaseIdx]
		}
		return fmt.Sprintf("Phase %d milestone achieved", phaseIdx+1)
	}
	return fmt.Sprintf("Successfully completed phase %d objectives", phaseIdx+1)
}

// buildActions derives 3-5 actions for one phase. The count scales with
// available minutes (one action per 15 minutes, clamped); priority is
// front-loaded: the first action is high, the first half medium, the rest low.
func buildActions(in model.GoalInput, domain Domain, phaseIdx int) []model.ActionStep {
	totalMinutes := in.DailyMinutes()
	numActions := clamp(totalMinutes/15, 3, 5)
	perAction := totalMinutes / numActions

	actions := make([]model.ActionStep, 0, numActions)
	for i := 0; i < numActions; i++ {
		actions = append(actions, model.ActionStep{
			ID:          fmt.Sprintf("action_%d_%d", phaseIdx+1, i+1),
			Title:       actionTitle(domain, phaseIdx, i),
			Description: actionDescription(in.Preferences, phaseIdx),
			Duration:    formatMinutes(perAction),
			Completed:   false,
			Priority:    actionPriority(i+1, numActions),
		})
	}
	return actions
}

func actionTitle(domain Domain, phaseIdx, actionIdx int) string {
	if table, ok := actionTitles[domain]; ok && phaseIdx < len(table) && actionIdx < len(table[phaseIdx]) {
		return table[phaseIdx][actionIdx]
	}
	return fmt.Sprintf("Action %d - Phase %d", actionIdx+1, phaseIdx+1)
}

// actionDescription appends preference clauses in fixed priority order:
// audio before visual before hands-on. The order is deliberate so identical
// preference sets always render identically.
func actionDescription(preferences []string, phaseIdx int) string {
	desc := fmt.Sprintf("Complete this action as part of phase %d", phaseIdx+1)
	if hasTag(preferences, prefAudio) {
		desc += " - Focus on audio materials and listening exercises"
	}
	if hasTag(preferences, prefVisual) {
		desc += " - Use visual aids, charts, and diagrams"
	}
	if hasTag(preferences, prefHandsOn) {
		desc += " - Emphasize practical, hands-on activities"
	}
	return desc
}

func actionPriority(actionNum, totalActions int) model.Priority {
	switch {
	case actionNum == 1:
		return model.PriorityHigh
	case actionNum <= ceilDiv(totalActions, 2):
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

func formatMinutes(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}

func buildPhaseResources(in model.GoalInput, domain Domain, phaseIdx int) []string {
	var resources []string
	if table, ok := phaseResourceTables[domain]; ok && phaseIdx < len(table) {
		resources = append(resources, table[phaseIdx]...)
	}
	if hasTag(in.Preferences, prefAudio) {
		resources = append(resources, "Podcasts", "Audiobooks", "Audio courses")
	}
	if hasTag(in.Preferences, prefCourses) {
		resources = append(resources, "Coursera", "Udemy", "Khan Academy")
	}
	return truncate(resources, maxPhaseResources)
}

func buildGoalResources(in model.GoalInput, domain Domain) []string {
	var resources []string
	resources = append(resources, overallResources[domain]...)

	if hasTag(in.Preferences, prefBooks) {
		resources = append(resources, "Recommended reading list", "E-book platforms", "Library resources")
	}
	if hasTag(in.Preferences, prefCourses) {
		resources = append(resources, "Course platforms", "Certification programs", "Skill assessments")
	}

	switch in.Budget {
	case model.TierLow:
		resources = append(resources, "Free online resources", "Public library materials", "Open-source tools")
	case model.TierHigh:
		resources = append(resources, "Premium courses", "Professional coaching", "Advanced tools")
	}

	return truncate(resources, maxOverallResources)
}

func buildCheckpoints(domain Domain, numPhases int) []string {
	tmpl := checkpointTemplates[domain]
	checkpoints := make([]string, 0, numPhases)
	for i := 1; i <= numPhases; i++ {
		checkpoints = append(checkpoints, fmt.Sprintf(tmpl, i*2))
	}
	return checkpoints
}

func buildGoalTips(in model.GoalInput, domain Domain) []string {
	tips := []string{
		"Set up a dedicated time each day for working on your goal",
		"Track your progress regularly to stay motivated",
		"Break large tasks into smaller, manageable chunks",
	}
	tips = append(tips, domainTips[domain]...)

	if hasTag(in.Constraints, constraintTime) {
		tips = append(tips, "Use micro-learning sessions during breaks or commutes")
	}
	if hasTag(in.Constraints, constraintBudget) {
		tips = append(tips, "Look for free alternatives and community resources")
	}

	return truncate(tips, maxGoalTips)
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func truncate(vals []string, max int) []string {
	if len(vals) > max {
		return vals[:max]
	}
	return vals
}
