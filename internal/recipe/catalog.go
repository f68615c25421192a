package recipe

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed data/recipes.json
var embeddedFS embed.FS

// Meal slot names. Every recipe belongs to at least one slot.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

// MealSlots lists the slots in the order they are planned each day.
var MealSlots = []string{MealBreakfast, MealLunch, MealDinner}

// Ingredient is one line of a recipe: a dataset food_key and the grams
// used for a single serving.
type Ingredient struct {
	FoodKey string  `json:"food_key"`
	Grams   float64 `json:"grams"`
}

// ScaledIngredient is an ingredient resolved to a display name and
// scaled to a concrete serving size.
type ScaledIngredient struct {
	FoodKey string  `json:"food_key"`
	Name    string  `json:"name"`
	Grams   float64 `json:"grams"`
}

// Recipe is one immutable catalog entry. Nutrient values are per serving.
type Recipe struct {
	ID                  string             `json:"recipe_id"`
	Title               string             `json:"title"`
	MealTypes           []string           `json:"meal_types"`
	Tags                []string           `json:"tags"`
	Ingredients         []Ingredient       `json:"ingredients"`
	NutrientsPerServing map[string]float64 `json:"nutrients_per_serving"`
}

// HasTag reports whether the recipe carries the given diet tag.
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ForSlot reports whether the recipe is applicable to a meal slot.
func (r *Recipe) ForSlot(meal string) bool {
	for _, m := range r.MealTypes {
		if m == meal {
			return true
		}
	}
	return false
}

// Catalog is the fixed recipe set, loaded once at startup. The load
// order of the underlying file is preserved: recipe selection breaks
// score ties by iteration order, so reordering the catalog changes
// plans.
type Catalog struct {
	recipes []*Recipe
	byID    map[string]*Recipe
}

// LoadCatalog parses the embedded recipe catalog.
func LoadCatalog() (*Catalog, error) {
	data, err := embeddedFS.ReadFile("data/recipes.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded recipe catalog: %w", err)
	}
	return parseCatalog(data)
}

// LoadCatalogFile parses a recipe catalog from disk, overriding the
// embedded one.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe catalog: %w", err)
	}
	return parseCatalog(data)
}

func parseCatalog(data []byte) (*Catalog, error) {
	var recipes []*Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("failed to parse recipe catalog: %w", err)
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("recipe catalog is empty")
	}

	c := &Catalog{
		recipes: recipes,
		byID:    make(map[string]*Recipe, len(recipes)),
	}
	for _, r := range recipes {
		if r.ID == "" {
			return nil, fmt.Errorf("recipe %q has no recipe_id", r.Title)
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate recipe_id %q in catalog", r.ID)
		}
		if len(r.MealTypes) == 0 {
			return nil, fmt.Errorf("recipe %q has no meal_types", r.ID)
		}
		for _, m := range r.MealTypes {
			if m != MealBreakfast && m != MealLunch && m != MealDinner {
				return nil, fmt.Errorf("recipe %q has unknown meal type %q", r.ID, m)
			}
		}
		if len(r.Ingredients) == 0 {
			return nil, fmt.Errorf("recipe %q has no ingredients", r.ID)
		}
		c.byID[r.ID] = r
	}
	return c, nil
}

// Recipes returns all recipes in load order.
func (c *Catalog) Recipes() []*Recipe {
	return c.recipes
}

// ByID returns the recipe with the given id.
func (c *Catalog) ByID(id string) (*Recipe, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// ForMeal returns the recipes applicable to a meal slot, in load order.
func (c *Catalog) ForMeal(meal string) []*Recipe {
	var out []*Recipe
	for _, r := range c.recipes {
		if r.ForSlot(meal) {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of recipes in the catalog.
func (c *Catalog) Len() int {
	return len(c.recipes)
}
