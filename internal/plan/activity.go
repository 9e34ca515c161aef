package plan

import "github.com/gingham-app/gingham/internal/model"

// activityCatalog is the fixed set of recognized activity types. Each entry
// matches requested tags by case-insensitive substring; a tag matching no
// entry is silently dropped. Catalog order fixes output order for tags that
// match multiple entries.
var activityCatalog = []struct {
	keywords []string
	kidsOnly bool // age group flips to kids when the group has children
	detail   model.PicnicActivity
}{
	{keywords: []string{"frisbee"}, detail: model.PicnicActivity{
		ID: "frisbee", Name: "Frisbee", Duration: "30-45 minutes", Participants: "2-8 people",
		Equipment: []string{"Frisbee"}, AgeGroup: model.AgeAll,
		Description: "Classic outdoor throwing game perfect for all skill levels",
	}},
	{keywords: []string{"card"}, detail: model.PicnicActivity{
		ID: "card-games", Name: "Card games", Duration: "20-60 minutes", Participants: "2-6 people",
		Equipment: []string{"Playing cards"}, AgeGroup: model.AgeAll,
		Description: "Various card games suitable for different group sizes",
	}},
	{keywords: []string{"music"}, detail: model.PicnicActivity{
		ID: "music", Name: "Music and singing", Duration: "30+ minutes", Participants: "All",
		Equipment: []string{"Bluetooth speaker", "Playlist"}, AgeGroup: model.AgeAll,
		Description: "Background music or group singing for atmosphere",
	}},
	{keywords: []string{"nature", "walk"}, detail: model.PicnicActivity{
		ID: "nature-walk", Name: "Nature walk", Duration: "30-45 minutes", Participants: "All",
		Equipment: []string{"Comfortable shoes"}, AgeGroup: model.AgeAll,
		Description: "Explore the surrounding area and enjoy nature",
	}},
	{keywords: []string{"ball", "football", "soccer"}, detail: model.PicnicActivity{
		ID: "ball-games", Name: "Ball games", Duration: "45-60 minutes", Participants: "4-10 people",
		Equipment: []string{"Ball"}, AgeGroup: model.AgeAll,
		Description: "Various ball games including catch, soccer, or football",
	}},
	{keywords: []string{"reading"}, detail: model.PicnicActivity{
		ID: "reading", Name: "Reading time", Duration: "30+ minutes", Participants: "Individual",
		Equipment: []string{"Books", "Comfortable seating"}, AgeGroup: model.AgeAll,
		Description: "Quiet time for personal reading and relaxation",
	}},
	{keywords: []string{"photography"}, detail: model.PicnicActivity{
		ID: "photography", Name: "Photography", Duration: "30+ minutes", Participants: "All",
		Equipment: []string{"Camera or phone"}, AgeGroup: model.AgeAll,
		Description: "Capture memories and beautiful nature scenes",
	}},
	{keywords: []string{"kite"}, detail: model.PicnicActivity{
		ID: "kite-flying", Name: "Kite flying", Duration: "30-45 minutes", Participants: "1-4 people",
		Equipment: []string{"Kite"}, AgeGroup: model.AgeAll,
		Description: "Fun activity if there's enough wind and open space",
	}},
	{keywords: []string{"scavenger"}, kidsOnly: true, detail: model.PicnicActivity{
		ID: "scavenger-hunt", Name: "Scavenger hunt", Duration: "45-60 minutes", Participants: "4+ people",
		Equipment: []string{"List of items", "Bags"}, AgeGroup: model.AgeAll,
		Description: "Search for specific items in nature or around the area",
	}},
	{keywords: []string{"charades"}, detail: model.PicnicActivity{
		ID: "charades", Name: "Charades", Duration: "30-45 minutes", Participants: "4+ people",
		Equipment: []string{"None"}, AgeGroup: model.AgeAll,
		Description: "Classic acting game perfect for groups",
	}},
}

// BuildActivities resolves requested activity tags against the fixed catalog.
// When no tag matches anything, two low-key defaults keep the list non-empty.
func BuildActivities(in model.PicnicInput) []model.PicnicActivity {
	hasKids := in.GroupSize.Kids > 0

	var out []model.PicnicActivity
	added := map[string]bool{}
	for _, tag := range in.Activities {
		for _, entry := range activityCatalog {
			if added[entry.detail.ID] {
				continue
			}
			for _, kw := range entry.keywords {
				if containsFold(tag, kw) {
					detail := entry.detail
					if entry.kidsOnly && hasKids {
						detail.AgeGroup = model.AgeKids
					}
					out = append(out, detail)
					added[detail.ID] = true
					break
				}
			}
		}
	}

	if len(out) == 0 {
		out = append(out,
			model.PicnicActivity{
				ID: "relaxation", Name: "Relaxation time", Duration: "60+ minutes", Participants: "All",
				Equipment: []string{"Blanket", "Comfortable setting"}, AgeGroup: model.AgeAll,
				Description: "Enjoy good conversation and peaceful outdoor time",
			},
			model.PicnicActivity{
				ID: "people-watching", Name: "People watching", Duration: "30+ minutes", Participants: "All",
				Equipment: []string{"None"}, AgeGroup: model.AgeAll,
				Description: "Observe and enjoy the activity around you",
			},
		)
	}

	return out
}
