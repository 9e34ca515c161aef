package plan

// Domain is the keyword-classified subject area of a goal. It selects which
// narrative tables feed phase titles, actions, milestones, and resources.
type Domain int

const (
	DomainGeneric Domain = iota
	DomainLanguage
	DomainFitness
	DomainBusiness
)

// ClassifyGoalDomain maps free goal text to a Domain by case-insensitive
// substring match. Checks run in fixed order; the first match wins. Text
// matching nothing falls back to DomainGeneric (never an error).
func ClassifyGoalDomain(goal string) Domain {
	switch {
	case containsFold(goal, "learn") || containsFold(goal, "language"):
		return DomainLanguage
	case containsFold(goal, "fitness") || containsFold(goal, "weight") || containsFold(goal, "exercise"):
		return DomainFitness
	case containsFold(goal, "business") || containsFold(goal, "startup"):
		return DomainBusiness
	default:
		return DomainGeneric
	}
}
