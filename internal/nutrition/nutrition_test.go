package nutrition

import (
	"errors"
	"math"
	"testing"
)

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Bananas, raw", "bananas_raw"},
		{"Rice, brown, dry", "rice_brown_dry"},
		{"Oil, olive", "oil_olive"},
		{"Almonds", "almonds"},
		{"  Egg,  whole, raw ", "egg_whole_raw"},
		{"Peppers, sweet, red, raw", "peppers_sweet_red_raw"},
	}
	for _, c := range cases {
		if got := NormalizeKey(c.in); got != c.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLoadEmbeddedDataset(t *testing.T) {
	db, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if db.Len() == 0 {
		t.Fatal("Expected a non-empty dataset")
	}

	t.Run("Lookup", func(t *testing.T) {
		name, err := db.NameFor("bananas_raw")
		if err != nil {
			t.Fatalf("NameFor(bananas_raw) failed: %v", err)
		}
		if name != "Bananas, raw" {
			t.Errorf("Expected name 'Bananas, raw', got %q", name)
		}
	})

	t.Run("UnknownFood", func(t *testing.T) {
		_, err := db.NameFor("unobtainium")
		if !errors.Is(err, ErrUnknownFood) {
			t.Errorf("Expected ErrUnknownFood, got %v", err)
		}
	})

	t.Run("MacroColumnsPresent", func(t *testing.T) {
		food, err := db.Get("chicken_breast_raw")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		for _, col := range []string{"protein", "carbohydrates", "total_fat", "fiber"} {
			if _, ok := food.Nutrients[col]; !ok {
				t.Errorf("Expected nutrient column %q for chicken breast", col)
			}
		}
	})
}

func TestNutrientsForGrams(t *testing.T) {
	db, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Chicken breast is 22.5 g protein per 100 g.
	n, err := db.NutrientsForGrams("chicken_breast_raw", 150)
	if err != nil {
		t.Fatalf("NutrientsForGrams failed: %v", err)
	}
	if got := n["protein"]; math.Abs(got-33.75) > 1e-9 {
		t.Errorf("Expected 33.75 g protein for 150 g, got %v", got)
	}

	if _, err := db.NutrientsForGrams("nope", 100); !errors.Is(err, ErrUnknownFood) {
		t.Errorf("Expected ErrUnknownFood, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	db, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	results := db.Search("raw", 5)
	if len(results) != 5 {
		t.Fatalf("Expected search limit of 5, got %d results", len(results))
	}
	for _, f := range results {
		if f.Key == "" {
			t.Error("Search result has empty food_key")
		}
	}

	if got := db.Search("zzz-no-such-food", 10); len(got) != 0 {
		t.Errorf("Expected no results, got %d", len(got))
	}
}
