package plan

import (
	"fmt"
	"math"

	"github.com/gingham-app/gingham/internal/model"
)

// tierCosts holds the cost model for one budget tier: food is per guest,
// gear and miscellaneous are flat per event.
var tierCosts = map[model.Tier]struct {
	foodPerHead float64
	gear        float64
	misc        float64
}{
	model.TierLow:    {foodPerHead: 8, gear: 15, misc: 10},
	model.TierMedium: {foodPerHead: 15, gear: 30, misc: 20},
	model.TierHigh:   {foodPerHead: 25, gear: 50, misc: 30},
}

// foodStyleMultiplier scales the food line only. Potluck spreads cost across
// contributors; catering concentrates it.
var foodStyleMultiplier = map[model.FoodStyle]float64{
	model.FoodPotluck: 0.6,
	model.FoodCatered: 1.5,
}

// EstimateBudget prices the picnic from headcount, budget tier, and food
// style. Each line is rounded half up to whole dollars independently and the
// total is the sum of the rounded lines, so the breakdown always adds up to
// the headline figure.
func EstimateBudget(in model.PicnicInput) model.BudgetEstimate {
	costs := tierCosts[in.Budget]

	food := costs.foodPerHead * float64(in.GroupSize.Guests())
	if mult, ok := foodStyleMultiplier[in.FoodStyle]; ok {
		food *= mult
	}

	foodRounded := roundDollars(food)
	gearRounded := roundDollars(costs.gear)
	miscRounded := roundDollars(costs.misc)
	total := foodRounded + gearRounded + miscRounded

	return model.BudgetEstimate{
		Estimated: dollars(total),
		Breakdown: []model.BudgetLine{
			{Category: "Food & Drinks", Amount: dollars(foodRounded)},
			{Category: "Gear & Supplies", Amount: dollars(gearRounded)},
			{Category: "Miscellaneous", Amount: dollars(miscRounded)},
		},
	}
}

// roundDollars rounds half away from zero to a whole dollar amount.
func roundDollars(v float64) int {
	return int(math.Round(v))
}

func dollars(v int) string {
	return fmt.Sprintf("$%d", v)
}
