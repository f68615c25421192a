package inventory

import (
	"fmt"
	"math"
	"sort"

	"mealbot/internal/planner"
	"mealbot/internal/recipe"
)

// GroceryTotals maps food_key to the total grams required across a whole
// month plan, rounded to 1 decimal.
type GroceryTotals map[string]float64

// GroceryItem is one purchasable line of the grocery list. Derived and
// read-only: recomputed from GroceryTotals on demand.
type GroceryItem struct {
	FoodKey            string  `json:"food_key"`
	Name               string  `json:"name"`
	TotalGrams         float64 `json:"total_grams"`
	RoundedPurchaseQty string  `json:"rounded_purchase_qty,omitempty"`
	Notes              string  `json:"notes,omitempty"`
}

// NameLookup resolves a food_key to its display name.
type NameLookup interface {
	NameFor(foodKey string) (string, error)
}

// AggregateGroceryList sums ingredient demand over every day and slot of
// the plan: base grams times the slot's serving multiplier, accumulated
// per food_key and rounded to 1 decimal at the end.
func AggregateGroceryList(plan *planner.MonthPlan, catalog *recipe.Catalog) (GroceryTotals, error) {
	totals := make(GroceryTotals)
	for _, day := range plan.Days {
		for _, meal := range recipe.MealSlots {
			assignment := day.Meal(meal)
			r, ok := catalog.ByID(assignment.RecipeID)
			if !ok {
				return nil, fmt.Errorf("plan %s %s references unknown recipe %q", day.Date, meal, assignment.RecipeID)
			}
			for _, ing := range r.Ingredients {
				totals[ing.FoodKey] += ing.Grams * assignment.Servings
			}
		}
	}
	for k, v := range totals {
		totals[k] = round1(v)
	}
	return totals, nil
}

// GroceryItems converts totals into purchasable items sorted by display
// name. A lookup miss surfaces as ErrUnknownFood from the lookup: it
// means the catalog and the nutrient dataset disagree.
func GroceryItems(totals GroceryTotals, lookup NameLookup, rules *PackagingRules) ([]GroceryItem, error) {
	items := make([]GroceryItem, 0, len(totals))
	for foodKey, grams := range totals {
		name, err := lookup.NameFor(foodKey)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve grocery item %q: %w", foodKey, err)
		}
		items = append(items, GroceryItem{
			FoodKey:            foodKey,
			Name:               name,
			TotalGrams:         grams,
			RoundedPurchaseQty: rules.RoundForPurchase(foodKey, grams, name),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
