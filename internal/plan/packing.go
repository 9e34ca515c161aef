package plan

import (
	"fmt"

	"github.com/gingham-app/gingham/internal/model"
)

// activityGear maps an activity keyword to the packing item it pulls in.
// Matching is case-insensitive substring against each requested activity tag.
// Every item id is an explicit semantic key, never a running counter, so the
// caller's checked-state tracking survives regeneration.
var activityGear = []struct {
	keywords []string
	item     model.PackingItem
}{
	{[]string{"frisbee"}, model.PackingItem{ID: "frisbee", Name: "Frisbee", Category: model.CategoryActivities}},
	{[]string{"ball", "football", "soccer"}, model.PackingItem{ID: "ball", Name: "Ball", Category: model.CategoryActivities}},
	{[]string{"card"}, model.PackingItem{ID: "cards", Name: "Playing cards", Category: model.CategoryActivities}},
	{[]string{"music"}, model.PackingItem{ID: "speaker", Name: "Bluetooth speaker", Category: model.CategoryActivities}},
	{[]string{"kite"}, model.PackingItem{ID: "kite", Name: "Kite", Category: model.CategoryActivities}},
}

// BuildPackingList derives the picnic packing checklist. The baseline
// essentials always appear; conditional blocks key on food style, activity
// keywords, transportation, pets, and kids, in fixed order.
func BuildPackingList(in model.PicnicInput) []model.PackingItem {
	guests := in.GroupSize.Guests()

	items := []model.PackingItem{
		{ID: "blanket", Name: "Picnic blanket", Category: model.CategoryGear, Essential: true, Quantity: "1-2 large blankets"},
		{ID: "cooler", Name: "Cooler with ice", Category: model.CategoryGear, Essential: true, Quantity: "1 large cooler"},
		{ID: "water", Name: "Water bottles", Category: model.CategoryFood, Essential: true, Quantity: fmt.Sprintf("%d bottles", guests*2)},
		{ID: "sunscreen", Name: "Sunscreen", Category: model.CategorySafety, Essential: true, Quantity: "SPF 30+"},
		{ID: "first-aid", Name: "First aid kit", Category: model.CategorySafety, Essential: true},
		{ID: "trash-bags", Name: "Trash bags", Category: model.CategoryGear, Essential: true, Quantity: "3-4 bags"},
		{ID: "wet-wipes", Name: "Wet wipes", Category: model.CategoryComfort, Essential: true, Quantity: "2-3 packs"},
	}

	// Food-service items travel with the group unless someone else is serving.
	if in.FoodStyle != model.FoodCatered {
		items = append(items,
			model.PackingItem{ID: "plates", Name: "Plates", Category: model.CategoryFood, Essential: true, Quantity: fmt.Sprintf("%d plates", guests)},
			model.PackingItem{ID: "cups", Name: "Cups", Category: model.CategoryFood, Essential: true, Quantity: fmt.Sprintf("%d cups", guests)},
			model.PackingItem{ID: "utensils", Name: "Utensils", Category: model.CategoryFood, Essential: true, Quantity: fmt.Sprintf("%d sets", guests)},
			model.PackingItem{ID: "napkins", Name: "Napkins", Category: model.CategoryFood, Essential: true, Quantity: "2-3 packs"},
			model.PackingItem{ID: "cutting-board", Name: "Cutting board", Category: model.CategoryFood},
			model.PackingItem{ID: "knife", Name: "Sharp knife", Category: model.CategoryFood},
			model.PackingItem{ID: "serving-spoons", Name: "Serving spoons", Category: model.CategoryFood},
		)
	}

	// One gear item per matched activity keyword group, at most once each.
	added := map[string]bool{}
	for _, tag := range in.Activities {
		for _, g := range activityGear {
			if added[g.item.ID] {
				continue
			}
			for _, kw := range g.keywords {
				if containsFold(tag, kw) {
					items = append(items, g.item)
					added[g.item.ID] = true
					break
				}
			}
		}
	}

	chairs := guests
	if chairs > 4 {
		chairs = 4
	}
	items = append(items,
		model.PackingItem{ID: "umbrella", Name: "Umbrella/Pop-up tent", Category: model.CategoryComfort, Notes: "For shade or rain"},
		model.PackingItem{ID: "chairs", Name: "Folding chairs", Category: model.CategoryComfort, Quantity: fmt.Sprintf("%d chairs", chairs)},
		model.PackingItem{ID: "insect-repellent", Name: "Insect repellent", Category: model.CategorySafety},
		model.PackingItem{ID: "hand-sanitizer", Name: "Hand sanitizer", Category: model.CategorySafety, Essential: true},
	)

	if in.Transport != model.TransportCar {
		items = append(items, model.PackingItem{ID: "backpack", Name: "Backpack", Category: model.CategoryGear, Essential: true, Notes: "For easy carrying"})
	}

	if in.GroupSize.Pets > 0 {
		items = append(items,
			model.PackingItem{ID: "pet-leash", Name: "Pet leash", Category: model.CategoryGear, Essential: true},
			model.PackingItem{ID: "pet-water", Name: "Pet water bowl", Category: model.CategoryFood, Essential: true},
			model.PackingItem{ID: "pet-waste-bags", Name: "Pet waste bags", Category: model.CategoryGear, Essential: true},
			model.PackingItem{ID: "pet-treats", Name: "Pet treats", Category: model.CategoryFood},
		)
	}

	if in.GroupSize.Kids > 0 {
		items = append(items,
			model.PackingItem{ID: "kids-games", Name: "Kids games/toys", Category: model.CategoryActivities},
			model.PackingItem{ID: "kids-snacks", Name: "Kid-friendly snacks", Category: model.CategoryFood},
			model.PackingItem{ID: "diaper-bag", Name: "Diaper bag (if needed)", Category: model.CategoryComfort},
		)
	}

	return items
}
