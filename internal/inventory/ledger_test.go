package inventory

import (
	"testing"

	"mealbot/internal/recipe"
)

func testLedgerRecipe() *recipe.Recipe {
	return &recipe.Recipe{
		ID:        "stew",
		Title:     "Stew",
		MealTypes: []string{recipe.MealDinner},
		Ingredients: []recipe.Ingredient{
			{FoodKey: "lentils", Grams: 200},
			{FoodKey: "carrot", Grams: 60},
		},
		NutrientsPerServing: map[string]float64{"protein": 18},
	}
}

func TestApplyMeal(t *testing.T) {
	r := testLedgerRecipe()
	inv := Ledger{"lentils": 1000, "carrot": 500, "onion": 300}

	next := ApplyMeal(r, 1.5, inv)

	if got := next["lentils"]; got != 700.0 {
		t.Errorf("lentils: expected 1000 - 200*1.5 = 700, got %v", got)
	}
	if got := next["carrot"]; got != 410.0 {
		t.Errorf("carrot: expected 500 - 60*1.5 = 410, got %v", got)
	}
	if got := next["onion"]; got != 300.0 {
		t.Errorf("onion: expected untouched stock, got %v", got)
	}

	t.Run("InputNotMutated", func(t *testing.T) {
		if inv["lentils"] != 1000 || inv["carrot"] != 500 {
			t.Error("ApplyMeal mutated its input ledger")
		}
	})
}

func TestApplyMealNeverNegative(t *testing.T) {
	r := testLedgerRecipe()
	inv := Ledger{"lentils": 150}

	// Repeated depletion far beyond stock: values clamp at 0.
	for i := 0; i < 5; i++ {
		inv = ApplyMeal(r, 1.6, inv)
		for k, v := range inv {
			if v < 0 {
				t.Fatalf("Pass %d: %s went negative: %v", i, k, v)
			}
		}
	}
	if inv["lentils"] != 0 || inv["carrot"] != 0 {
		t.Errorf("Expected depleted stock to be 0, got %v", inv)
	}
}

func TestApplyMealMissingKeyTreatedAsZero(t *testing.T) {
	r := testLedgerRecipe()
	next := ApplyMeal(r, 1.0, Ledger{})
	if got := next["lentils"]; got != 0 {
		t.Errorf("Expected 0 for missing stock, got %v", got)
	}
}

func TestApplyMealRounding(t *testing.T) {
	r := &recipe.Recipe{
		ID:          "r",
		Ingredients: []recipe.Ingredient{{FoodKey: "oats", Grams: 33.3}},
	}
	next := ApplyMeal(r, 1.11, Ledger{"oats": 100})
	// 100 - 33.3*1.11 = 63.037 -> 63.0 at 1 decimal.
	if got := next["oats"]; got != 63.0 {
		t.Errorf("Expected 63.0, got %v", got)
	}
}

func TestNewLedger(t *testing.T) {
	totals := GroceryTotals{"oats": 105.0, "rice": 285.0}
	ledger := NewLedger(totals)
	if len(ledger) != 2 || ledger["oats"] != 105.0 || ledger["rice"] != 285.0 {
		t.Errorf("Unexpected ledger %v", ledger)
	}

	// The ledger is a snapshot, not a view.
	ledger["oats"] = 0
	if totals["oats"] != 105.0 {
		t.Error("Mutating the ledger changed the source totals")
	}
}
