package planner

import (
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/catalog"
)

// maxSimpleDietItems caps the simple (unbudgeted) diet listing.
const maxSimpleDietItems = 10

// slotOrder is the fixed meal-slot sequence for budgeted day plans.
// Snack appears twice so a plan can carry up to two distinct snacks.
var slotOrder = []catalog.MealSlot{
	catalog.Breakfast,
	catalog.Snack,
	catalog.Lunch,
	catalog.Snack,
	catalog.Dinner,
}

// DietPlan is an assembled day of meals with its goals and running
// totals. TotalCalories is an emergent sum; it is never re-validated
// against the goal after assembly.
type DietPlan struct {
	Items         []catalog.FoodItem `json:"items"`
	CalorieGoal   int                `json:"calorie_goal"`
	ProteinGoal   int                `json:"protein_goal"`
	TotalCalories float64            `json:"total_calories"`
	TotalProtein  float64            `json:"total_protein"`
}

// SimpleDietPlan lists up to ten catalog foods matching the diet
// preference, in catalog order, with no budget enforcement.
func SimpleDietPlan(cat *catalog.Catalog, diet catalog.DietType) []catalog.FoodItem {
	var plan []catalog.FoodItem
	for _, f := range cat.Foods() {
		if f.Diet != diet {
			continue
		}
		plan = append(plan, f)
		if len(plan) == maxSimpleDietItems {
			break
		}
	}
	return plan
}

// BudgetedDietPlan assembles one food per slot occurrence using
// first-fit: for each slot in the fixed order, the first catalog item
// matching the slot and diet type whose calories still fit under the
// goal is taken. A slot with no fitting candidate is skipped, which can
// leave the goal unmet. The protein goal is carried for display only
// and never constrains selection.
func BudgetedDietPlan(cat *catalog.Catalog, diet catalog.DietType, calorieGoal, proteinGoal int) DietPlan {
	plan := DietPlan{CalorieGoal: calorieGoal, ProteinGoal: proteinGoal}
	chosen := make(map[string]bool)
	for _, slot := range slotOrder {
		for _, f := range cat.Foods() {
			if f.Meal != slot || f.Diet != diet || chosen[f.Name] {
				continue
			}
			if plan.TotalCalories+f.Calories > float64(calorieGoal) {
				continue
			}
			plan.Items = append(plan.Items, f)
			plan.TotalCalories += f.Calories
			plan.TotalProtein += f.Protein
			chosen[f.Name] = true
			break
		}
	}
	return plan
}
