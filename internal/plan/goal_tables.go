package plan

// Fixed narrative tables for the goal pipeline, keyed by Domain and indexed
// by phase (and action) position. Lookups past a table's end fall back to
// generic numbered labels; long plans (7-8 phases) exceed the six curated
// entries on purpose.

var phaseTitles = map[Domain][]string{
	DomainLanguage: {
		"Foundation & Basics", "Building Vocabulary", "Grammar & Structure",
		"Conversation Practice", "Advanced Skills", "Fluency & Mastery",
	},
	DomainFitness: {
		"Assessment & Foundation", "Building Habits", "Increasing Intensity",
		"Strength & Endurance", "Advanced Training", "Maintenance",
	},
	DomainBusiness: {
		"Research & Planning", "Foundation Setup", "Product Development",
		"Marketing & Launch", "Growth & Scaling", "Optimization",
	},
	DomainGeneric: {
		"Foundation", "Development", "Implementation",
		"Advanced Practice", "Mastery", "Optimization",
	},
}

var phaseDescriptions = map[Domain][]string{
	DomainLanguage: {
		"Master the fundamentals and basic vocabulary",
		"Expand vocabulary and learn common phrases",
		"Understand grammar rules and sentence structure",
		"Practice speaking and listening skills",
		"Develop advanced communication abilities",
		"Achieve fluency and natural conversation",
	},
	DomainFitness: {
		"Assess current fitness level and establish baseline",
		"Build consistent exercise habits and basic strength",
		"Increase workout intensity and add variety",
		"Focus on strength building and endurance",
		"Advanced training techniques and specialization",
		"Maintain results and continue progression",
	},
}

var phaseMilestones = map[Domain][]string{
	DomainLanguage: {
		"Can introduce yourself and handle basic interactions",
		"Understand and use 500+ common words",
		"Can form grammatically correct sentences",
		"Can have 10-minute conversations",
		"Can read and write complex texts",
		"Achieved conversational fluency",
	},
	DomainFitness: {
		"Established baseline fitness level",
		"Built consistent exercise habits",
		"Increased strength and endurance",
		"Achieved significant fitness gains",
		"Reached advanced fitness level",
		"Maintained long-term fitness goals",
	},
}

// actionTitles is indexed [phase][action]; out-of-range combinations fall
// back to a generic "Action N - Phase P" label.
var actionTitles = map[Domain][][]string{
	DomainLanguage: {
		{"Learn basic greetings", "Practice pronunciation", "Study alphabet/writing system"},
		{"Build core vocabulary", "Practice common phrases", "Listen to native speakers"},
		{"Study grammar basics", "Practice sentence formation", "Read simple texts"},
		{"Have conversations", "Watch movies/shows", "Practice speaking daily"},
		{"Read complex texts", "Write essays/stories", "Engage in debates"},
		{"Maintain fluency", "Learn specialized vocabulary", "Perfect pronunciation"},
	},
	DomainFitness: {
		{"Take fitness assessment", "Set up workout space", "Plan nutrition"},
		{"Daily cardio routine", "Basic strength training", "Track progress"},
		{"Increase workout intensity", "Add new exercises", "Improve form"},
		{"Advanced strength training", "Endurance challenges", "Flexibility work"},
		{"Specialized training", "Competition prep", "Peak performance"},
		{"Maintain routine", "Adjust as needed", "Long-term goals"},
	},
}

// phaseResourceTables is indexed by phase; each phase's resources are capped
// at four after preference appends.
var phaseResourceTables = map[Domain][][]string{
	DomainLanguage: {
		{"Duolingo app", "Language learning books", "Pronunciation guides"},
		{"Flashcard apps", "Audio courses", "Language exchange apps"},
		{"Grammar workbooks", "Online exercises", "Language forums"},
		{"Conversation practice apps", "Movies with subtitles", "Podcasts"},
		{"Advanced textbooks", "Literature", "Writing communities"},
		{"Professional materials", "Specialized dictionaries", "Native speaker groups"},
	},
	DomainFitness: {
		{"Fitness assessment tools", "Workout tracking apps", "Nutrition guides"},
		{"Beginner workout videos", "Basic equipment guide", "Meal planning apps"},
		{"Intermediate training programs", "Form check videos", "Progress tracking"},
		{"Advanced workout plans", "Specialized equipment", "Performance metrics"},
		{"Competition training guides", "Advanced nutrition", "Recovery protocols"},
		{"Maintenance programs", "Long-term planning", "Injury prevention"},
	},
}

var overallResources = map[Domain][]string{
	DomainLanguage: {
		"Language learning apps", "Online dictionaries", "Grammar guides",
		"Conversation practice platforms",
	},
	DomainFitness: {
		"Fitness tracking apps", "Workout videos", "Nutrition guides",
		"Exercise equipment guides",
	},
	DomainBusiness: {
		"Business plan templates", "Market research tools", "Accounting software",
		"Marketing platforms",
	},
}

var domainTips = map[Domain][]string{
	DomainLanguage: {
		"Practice speaking from day one, even if you feel uncomfortable",
		"Immerse yourself in the language through media and culture",
		"Find a language exchange partner or conversation group",
	},
	DomainFitness: {
		"Focus on form over intensity, especially when starting",
		"Allow adequate rest and recovery between workouts",
		"Combine exercise with proper nutrition for best results",
	},
	DomainBusiness: {
		"Validate your idea with potential customers early",
		"Start small and iterate based on feedback",
		"Network with other entrepreneurs and mentors",
	},
}

var checkpointTemplates = map[Domain]string{
	DomainLanguage: "Week %d: Test vocabulary and grammar knowledge",
	DomainFitness:  "Week %d: Measure fitness progress and adjust plan",
	DomainBusiness: "Week %d: Review business metrics and milestones",
	DomainGeneric:  "Week %d: Assess progress and adjust approach",
}
