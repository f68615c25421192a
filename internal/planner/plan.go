package planner

import (
	"fmt"

	"mealbot/internal/recipe"
)

// MealAssignment pins a recipe to a meal slot with a serving multiplier.
// The multiplier is clamped to [0.6, 1.6] and rounded to 2 decimals.
type MealAssignment struct {
	RecipeID string  `json:"recipe_id"`
	Servings float64 `json:"servings"`
}

// DayPlan is the plan for a single calendar day. Totals hold the summed
// scaled nutrients of the day's three meals, rounded to 2 decimals.
type DayPlan struct {
	Date      string             `json:"date"`
	Breakfast MealAssignment     `json:"breakfast"`
	Lunch     MealAssignment     `json:"lunch"`
	Dinner    MealAssignment     `json:"dinner"`
	Totals    map[string]float64 `json:"totals"`
}

// Meal returns the assignment for a slot. An unknown slot is a
// programming error.
func (d *DayPlan) Meal(slot string) MealAssignment {
	switch slot {
	case recipe.MealBreakfast:
		return d.Breakfast
	case recipe.MealLunch:
		return d.Lunch
	case recipe.MealDinner:
		return d.Dinner
	}
	panic(fmt.Sprintf("planner: unknown meal slot %q", slot))
}

// MonthPlan covers every calendar day of one YYYY-MM month, in date order.
type MonthPlan struct {
	Month string    `json:"month"`
	Days  []DayPlan `json:"days"`
}

// Day returns the plan for a YYYY-MM-DD date, if the month covers it.
func (p *MonthPlan) Day(date string) (*DayPlan, bool) {
	for i := range p.Days {
		if p.Days[i].Date == date {
			return &p.Days[i], true
		}
	}
	return nil, false
}
