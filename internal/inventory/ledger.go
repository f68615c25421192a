package inventory

import (
	"math"

	"mealbot/internal/recipe"
)

// Ledger maps food_key to grams remaining in stock. It only ever
// decreases after initialization; there is no restocking.
type Ledger map[string]float64

// NewLedger seeds a ledger from the aggregated grocery demand at
// plan-start time.
func NewLedger(totals GroceryTotals) Ledger {
	ledger := make(Ledger, len(totals))
	for k, v := range totals {
		ledger[k] = v
	}
	return ledger
}

// ApplyMeal returns a new ledger with one cooked meal subtracted: each
// ingredient's grams-per-serving times servings, floored at 0 and
// rounded to 1 decimal. Foods absent from the ledger count as 0 stock.
// The input ledger is never mutated, so callers can keep earlier
// snapshots for session history.
func ApplyMeal(r *recipe.Recipe, servings float64, inv Ledger) Ledger {
	next := make(Ledger, len(inv))
	for k, v := range inv {
		next[k] = v
	}
	for _, ing := range r.Ingredients {
		used := ing.Grams * servings
		next[ing.FoodKey] = round1(math.Max(0, next[ing.FoodKey]-used))
	}
	return next
}
