package planner

import (
	"errors"
	"testing"

	"mealbot/internal/recipe"
)

func testRecipe(id string, tags []string, protein, carbs, fat, fiber float64) *recipe.Recipe {
	return &recipe.Recipe{
		ID:        id,
		Title:     id,
		MealTypes: []string{recipe.MealLunch},
		Tags:      tags,
		Ingredients: []recipe.Ingredient{
			{FoodKey: "test_food", Grams: 100},
		},
		NutrientsPerServing: map[string]float64{
			"protein":       protein,
			"carbohydrates": carbs,
			"total_fat":     fat,
			"fiber":         fiber,
		},
	}
}

func TestChooseEmptyCandidates(t *testing.T) {
	_, err := Choose(nil, map[string]float64{"protein": 30}, Preferences{}, nil)
	if !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("Expected ErrNoCandidates, got %v", err)
	}
}

func TestChoosePrefersClosestMacros(t *testing.T) {
	target := map[string]float64{"protein": 30, "carbohydrates": 70, "total_fat": 20, "fiber": 10}
	far := testRecipe("far", nil, 5, 10, 5, 1)
	close := testRecipe("close", nil, 29, 68, 21, 9)

	got, err := Choose([]*recipe.Recipe{far, close}, target, Preferences{}, nil)
	if err != nil {
		t.Fatalf("Choose failed: %v", err)
	}
	if got.ID != "close" {
		t.Errorf("Expected 'close' to win, got %q", got.ID)
	}
}

func TestChooseTieKeepsFirst(t *testing.T) {
	target := map[string]float64{"protein": 30}
	a := testRecipe("a", nil, 30, 0, 0, 0)
	b := testRecipe("b", nil, 30, 0, 0, 0)

	got, err := Choose([]*recipe.Recipe{a, b}, target, Preferences{}, nil)
	if err != nil {
		t.Fatalf("Choose failed: %v", err)
	}
	if got.ID != "a" {
		t.Errorf("Expected first candidate to win the tie, got %q", got.ID)
	}
}

func TestChooseRecency(t *testing.T) {
	target := map[string]float64{"protein": 30}
	a := testRecipe("a", nil, 30, 0, 0, 0)
	b := testRecipe("b", nil, 10, 0, 0, 0)
	candidates := []*recipe.Recipe{a, b}

	t.Run("SkipsRecentlyUsed", func(t *testing.T) {
		got, err := Choose(candidates, target, Preferences{}, []string{"a"})
		if err != nil {
			t.Fatalf("Choose failed: %v", err)
		}
		if got.ID != "b" {
			t.Errorf("Expected recency filter to skip 'a', got %q", got.ID)
		}
	})

	t.Run("FallbackWhenAllRecent", func(t *testing.T) {
		got, err := Choose(candidates, target, Preferences{}, []string{"a", "b"})
		if err != nil {
			t.Fatalf("Choose failed: %v", err)
		}
		if got.ID != "a" {
			t.Errorf("Expected fallback to the first candidate, got %q", got.ID)
		}
	})
}

func TestChoosePenalties(t *testing.T) {
	target := map[string]float64{"protein": 30}

	t.Run("RefinedSugarAvoidExcludes", func(t *testing.T) {
		sweet := testRecipe("sweet", []string{"refined_sugar"}, 30, 0, 0, 0)
		plain := testRecipe("plain", nil, 5, 0, 0, 0)
		got, err := Choose([]*recipe.Recipe{sweet, plain}, target, Preferences{RefinedSugar: SugarAvoid}, nil)
		if err != nil {
			t.Fatalf("Choose failed: %v", err)
		}
		if got.ID != "plain" {
			t.Errorf("Expected the +1000 sugar penalty to exclude 'sweet', got %q", got.ID)
		}
	})

	t.Run("DairyNoneExcludes", func(t *testing.T) {
		dairy := testRecipe("dairy", []string{"contains_dairy"}, 30, 0, 0, 0)
		plain := testRecipe("plain", nil, 5, 0, 0, 0)
		got, err := Choose([]*recipe.Recipe{dairy, plain}, target, Preferences{DairyLimitLevel: DairyNone}, nil)
		if err != nil {
			t.Fatalf("Choose failed: %v", err)
		}
		if got.ID != "plain" {
			t.Errorf("Expected the +1000 dairy penalty to exclude 'dairy', got %q", got.ID)
		}
	})

	t.Run("DairyLowOnlyBiases", func(t *testing.T) {
		dairy := testRecipe("dairy", []string{"contains_dairy"}, 30, 0, 0, 0)
		plain := testRecipe("plain", nil, 5, 0, 0, 0)
		// distance(dairy)=0 +4 vs distance(plain)=|5-30|/30 ≈ 0.833: plain wins.
		got, err := Choose([]*recipe.Recipe{dairy, plain}, target, Preferences{DairyLimitLevel: DairyLow}, nil)
		if err != nil {
			t.Fatalf("Choose failed: %v", err)
		}
		if got.ID != "plain" {
			t.Errorf("Expected the +4 dairy bias to flip the choice, got %q", got.ID)
		}

		// With a weaker competitor the dairy recipe still wins.
		weak := testRecipe("weak", nil, 300, 0, 0, 0)
		got, err = Choose([]*recipe.Recipe{dairy, weak}, target, Preferences{DairyLimitLevel: DairyLow}, nil)
		if err != nil {
			t.Fatalf("Choose failed: %v", err)
		}
		if got.ID != "dairy" {
			t.Errorf("Expected 'dairy' to survive a +4 bias, got %q", got.ID)
		}
	})

	t.Run("GlutenVeryLowPenaltiesStack", func(t *testing.T) {
		// low_gluten without gluten_free collects both +2 and +10.
		lowGluten := testRecipe("low_gluten", []string{"low_gluten"}, 30, 0, 0, 0)
		free := testRecipe("free", []string{"gluten_free"}, 22, 0, 0, 0)
		// distance(lowGluten)=0 +12 vs distance(free)=8/30≈0.27 +0: free wins.
		got, err := Choose([]*recipe.Recipe{lowGluten, free}, target, Preferences{GlutenLimitLevel: GlutenVeryLow}, nil)
		if err != nil {
			t.Fatalf("Choose failed: %v", err)
		}
		if got.ID != "free" {
			t.Errorf("Expected stacked gluten penalties to prefer 'free', got %q", got.ID)
		}
	})
}

func TestDistanceSkipsMissingTargetKeys(t *testing.T) {
	macros := map[string]float64{"protein": 10}
	target := map[string]float64{"protein": 20, "sodium": 500}
	// sodium is not a scored macro, so only protein contributes: 10/20 = 0.5.
	if got := distance(macros, target); got != 0.5 {
		t.Errorf("Expected distance 0.5, got %v", got)
	}
}
