// Command build-recipes recomputes the per-serving nutrients of every
// catalog recipe from the nutrition dataset and rewrites recipes.json.
// Run it after editing recipe ingredients or the dataset so the two
// stay consistent.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"mealbot/internal/nutrition"
	"mealbot/internal/recipe"
)

func main() {
	in := flag.String("in", "internal/recipe/data/recipes.json", "recipe definitions to rebuild")
	out := flag.String("out", "internal/recipe/data/recipes.json", "output path")
	nutritionPath := flag.String("nutrition", "", "nutrition dataset CSV (embedded copy when empty)")
	flag.Parse()

	db, err := loadNutrition(*nutritionPath)
	if err != nil {
		log.Fatalf("Failed to load nutrition dataset: %v", err)
	}
	catalog, err := recipe.LoadCatalogFile(*in)
	if err != nil {
		log.Fatalf("Failed to load recipe definitions: %v", err)
	}

	buf, err := build(db, catalog)
	if err != nil {
		log.Fatalf("Failed to rebuild recipes: %v", err)
	}

	if err := os.WriteFile(*out, buf, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	log.Printf("Wrote %d recipes to %s", catalog.Len(), *out)
}

func loadNutrition(path string) (*nutrition.DB, error) {
	if path != "" {
		return nutrition.LoadFile(path)
	}
	return nutrition.Load()
}

func build(db *nutrition.DB, catalog *recipe.Catalog) ([]byte, error) {
	type outRecipe struct {
		RecipeID            string              `json:"recipe_id"`
		Title               string              `json:"title"`
		MealTypes           []string            `json:"meal_types"`
		Tags                []string            `json:"tags"`
		Ingredients         []recipe.Ingredient `json:"ingredients"`
		NutrientsPerServing json.RawMessage     `json:"nutrients_per_serving"`
	}

	recipes := make([]outRecipe, 0, catalog.Len())
	for _, r := range catalog.Recipes() {
		totals := make(map[string]float64)
		for _, ing := range r.Ingredients {
			n, err := db.NutrientsForGrams(ing.FoodKey, ing.Grams)
			if err != nil {
				return nil, fmt.Errorf("recipe %s: %w", r.ID, err)
			}
			for k, v := range n {
				totals[k] += v
			}
		}

		recipes = append(recipes, outRecipe{
			RecipeID:            r.ID,
			Title:               r.Title,
			MealTypes:           r.MealTypes,
			Tags:                r.Tags,
			Ingredients:         r.Ingredients,
			NutrientsPerServing: orderedNutrients(totals, db.NutrientColumns()),
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recipes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// orderedNutrients renders the totals in dataset column order instead
// of the alphabetical order a map marshal would produce, so rebuild
// output diffs cleanly against the checked-in file.
func orderedNutrients(totals map[string]float64, columns []string) json.RawMessage {
	var b bytes.Buffer
	b.WriteString("{")
	first := true
	for _, col := range columns {
		v, ok := totals[col]
		if !ok {
			continue
		}
		if !first {
			b.WriteString(",")
		}
		first = false
		fmt.Fprintf(&b, "%q: %s", col, strconv.FormatFloat(round2(v), 'f', -1, 64))
	}
	b.WriteString("}")
	return json.RawMessage(b.Bytes())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
