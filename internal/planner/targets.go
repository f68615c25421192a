package planner

import (
	"fmt"

	"mealbot/internal/recipe"
)

// mealSplit fixes the share of the daily targets assigned to each slot.
// The ratios must sum to 1.0.
var mealSplit = map[string]float64{
	recipe.MealBreakfast: 0.25,
	recipe.MealLunch:     0.35,
	recipe.MealDinner:    0.40,
}

// MealTarget scales every daily macro down to a single meal slot's share.
// An unknown slot is a programming error, not user input.
func MealTarget(dailyMacros map[string]float64, meal string) map[string]float64 {
	split, ok := mealSplit[meal]
	if !ok {
		panic(fmt.Sprintf("planner: unknown meal slot %q", meal))
	}
	target := make(map[string]float64, len(dailyMacros))
	for k, v := range dailyMacros {
		target[k] = v * split
	}
	return target
}
