package plan

import (
	"fmt"

	"github.com/gingham-app/gingham/internal/model"
)

// Dietary and drink tags recognized by the food suggester.
const (
	dietVegetarian = "Vegetarian"
	dietVegan      = "Vegan"

	drinkLemonade = "Lemonade"
	drinkIcedTea  = "Iced tea"
)

// BuildFoodSuggestions derives the food and drink list, ordered by category:
// mains, sides, snacks, desserts, drinks. Dietary flags gate mains (non-vegan
// mains are suppressed for vegan groups); drink preferences gate the optional
// drinks; infused water is always the final drink entry.
func BuildFoodSuggestions(in model.PicnicInput) []model.FoodSuggestion {
	guests := in.GroupSize.Guests()
	vegetarian := hasTag(in.Dietary, dietVegetarian)
	vegan := hasTag(in.Dietary, dietVegan)

	var out []model.FoodSuggestion

	// Mains only when the group prepares its own food.
	if in.FoodStyle == model.FoodBringYourOwn || in.FoodStyle == model.FoodPotluck {
		if !vegan {
			out = append(out, model.FoodSuggestion{
				ID: "sandwiches", Name: "Assorted sandwiches", Category: model.FoodCatMain,
				Servings: fmt.Sprintf("%d sandwiches", guests), PrepTime: "30 minutes", Difficulty: model.DifficultyEasy,
				Recipe: "Mix of turkey, ham, and veggie sandwiches with various breads",
				Tips:   "Wrap individually in parchment paper",
			})
		}
		if vegetarian || vegan {
			out = append(out, model.FoodSuggestion{
				ID: "veggie-wraps", Name: "Veggie wraps", Category: model.FoodCatMain,
				Servings: fmt.Sprintf("%d wraps", guests), PrepTime: "20 minutes", Difficulty: model.DifficultyEasy,
				Recipe: "Hummus, vegetables, and greens in tortillas",
				Tips:   "Use colorful vegetables for visual appeal",
			})
		}
		out = append(out, model.FoodSuggestion{
			ID: "pasta-salad", Name: "Pasta salad", Category: model.FoodCatMain,
			Servings: fmt.Sprintf("%d pounds pasta", ceilDiv(guests, 4)), PrepTime: "45 minutes", Difficulty: model.DifficultyMedium,
			Recipe: "Cold pasta with vegetables, dressing, and herbs",
			Tips:   "Make ahead for better flavor",
		})
	}

	perGuest := fmt.Sprintf("%d servings", guests)

	out = append(out,
		model.FoodSuggestion{
			ID: "potato-salad", Name: "Potato salad", Category: model.FoodCatSide,
			Servings: perGuest, PrepTime: "1 hour", Difficulty: model.DifficultyMedium,
			Recipe: "Classic creamy potato salad with eggs and celery",
			Tips:   "Keep chilled until serving",
		},
		model.FoodSuggestion{
			ID: "coleslaw", Name: "Coleslaw", Category: model.FoodCatSide,
			Servings: perGuest, PrepTime: "15 minutes", Difficulty: model.DifficultyEasy,
			Recipe: "Fresh cabbage slaw with tangy dressing",
			Tips:   "Drain excess liquid before serving",
		},
		model.FoodSuggestion{
			ID: "fruit-salad", Name: "Fresh fruit salad", Category: model.FoodCatSide,
			Servings: perGuest, PrepTime: "20 minutes", Difficulty: model.DifficultyEasy,
			Recipe: "Seasonal mixed fruits with light dressing",
			Tips:   "Add citrus juice to prevent browning",
		},
	)

	out = append(out,
		model.FoodSuggestion{
			ID: "chips-dip", Name: "Chips and dip", Category: model.FoodCatSnack,
			Servings: perGuest, PrepTime: "5 minutes", Difficulty: model.DifficultyEasy,
			Recipe: "Tortilla chips with salsa and guacamole",
			Tips:   "Keep dips in cooler until serving",
		},
		model.FoodSuggestion{
			ID: "veggie-tray", Name: "Vegetable tray", Category: model.FoodCatSnack,
			Servings: perGuest, PrepTime: "15 minutes", Difficulty: model.DifficultyEasy,
			Recipe: "Fresh cut vegetables with ranch dip",
			Tips:   "Cut vegetables the night before",
		},
		model.FoodSuggestion{
			ID: "cheese-crackers", Name: "Cheese and crackers", Category: model.FoodCatSnack,
			Servings: perGuest, PrepTime: "10 minutes", Difficulty: model.DifficultyEasy,
			Recipe: "Assorted cheeses with crackers",
			Tips:   "Keep cheese cold until serving",
		},
	)

	out = append(out,
		model.FoodSuggestion{
			ID: "brownies", Name: "Brownies", Category: model.FoodCatDessert,
			Servings: fmt.Sprintf("%d pieces", guests), PrepTime: "1 hour", Difficulty: model.DifficultyMedium,
			Recipe: "Fudgy chocolate brownies cut into squares",
			Tips:   "Transport in the baking pan",
		},
		model.FoodSuggestion{
			ID: "cookies", Name: "Cookies", Category: model.FoodCatDessert,
			Servings: fmt.Sprintf("%d cookies", guests*2), PrepTime: "2 hours", Difficulty: model.DifficultyMedium,
			Recipe: "Chocolate chip or oatmeal cookies",
			Tips:   "Store in airtight container",
		},
		model.FoodSuggestion{
			ID: "watermelon", Name: "Fresh watermelon", Category: model.FoodCatDessert,
			Servings: perGuest, PrepTime: "10 minutes", Difficulty: model.DifficultyEasy,
			Recipe: "Cubed fresh watermelon",
			Tips:   "Perfect for hot weather",
		},
	)

	if hasTag(in.Drinks, drinkLemonade) {
		out = append(out, model.FoodSuggestion{
			ID: "lemonade", Name: "Fresh lemonade", Category: model.FoodCatDrink,
			Servings: fmt.Sprintf("%d glasses", guests), PrepTime: "15 minutes", Difficulty: model.DifficultyEasy,
			Recipe: "Fresh squeezed lemon juice with sugar and water",
			Tips:   "Bring in insulated pitcher",
		})
	}
	if hasTag(in.Drinks, drinkIcedTea) {
		out = append(out, model.FoodSuggestion{
			ID: "iced-tea", Name: "Iced tea", Category: model.FoodCatDrink,
			Servings: fmt.Sprintf("%d glasses", guests), PrepTime: "30 minutes", Difficulty: model.DifficultyEasy,
			Recipe: "Sweetened black tea served over ice",
			Tips:   "Brew strong to account for ice dilution",
		})
	}

	// Always last in the drink category.
	out = append(out, model.FoodSuggestion{
		ID: "water-infused", Name: "Infused water", Category: model.FoodCatDrink,
		Servings: perGuest, PrepTime: "10 minutes", Difficulty: model.DifficultyEasy,
		Recipe: "Water with cucumber, mint, or fruit",
		Tips:   "Prepare in large dispensers",
	})

	return out
}
