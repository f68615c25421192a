package planner

import (
	"errors"
	"math"
	"sort"

	"mealbot/internal/recipe"
)

// ErrNoCandidates means a meal slot has no recipes at all. That is a
// catalog defect, not a user error: the run must fail rather than
// silently assign a default.
var ErrNoCandidates = errors.New("no candidate recipes for meal slot")

// scoredMacros are the nutrient keys the selector compares against the
// meal target. Missing entries count as zero.
var scoredMacros = []string{"protein", "carbohydrates", "total_fat", "fiber"}

// Tags consulted by the preference penalty.
const (
	tagRefinedSugar  = "refined_sugar"
	tagContainsDairy = "contains_dairy"
	tagLowGluten     = "low_gluten"
	tagGlutenFree    = "gluten_free"
)

// Choose picks the candidate with the lowest distance-plus-penalty score
// against the meal target, skipping recently used recipes. Ties keep the
// first candidate encountered, so callers must present candidates in a
// stable order (catalog load order) for reproducible plans.
//
// If every candidate is in recentIDs the recency filter is waived and the
// first candidate wins: a repeat beats a failed plan.
func Choose(candidates []*recipe.Recipe, target map[string]float64, prefs Preferences, recentIDs []string) (*recipe.Recipe, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	recent := make(map[string]bool, len(recentIDs))
	for _, id := range recentIDs {
		recent[id] = true
	}

	var best *recipe.Recipe
	var bestScore float64
	for _, r := range candidates {
		if recent[r.ID] {
			continue
		}
		score := distance(macroProfile(r), target) + penalty(r, prefs)
		if best == nil || score < bestScore {
			best, bestScore = r, score
		}
	}
	if best == nil {
		return candidates[0], nil
	}
	return best, nil
}

// macroProfile extracts the scored macro values of a recipe, defaulting
// missing keys to zero.
func macroProfile(r *recipe.Recipe) map[string]float64 {
	m := make(map[string]float64, len(scoredMacros))
	for _, k := range scoredMacros {
		m[k] = r.NutrientsPerServing[k]
	}
	return m
}

// distance is the normalized L1 distance between a recipe's macros and
// the target: sum of |value-target|/max(target, 1e-6) over the target
// keys the profile carries. Keys are visited in sorted order so the
// floating-point sum is identical across runs.
func distance(macros, target map[string]float64) float64 {
	keys := make([]string, 0, len(target))
	for k := range target {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	d := 0.0
	for _, k := range keys {
		v, ok := macros[k]
		if !ok {
			continue
		}
		t := target[k]
		d += math.Abs(v-t) / math.Max(t, 1e-6)
	}
	return d
}

// penalty maps preference/tag interactions onto the score. The large
// values effectively exclude a recipe; the small ones only bias away
// from it.
func penalty(r *recipe.Recipe, prefs Preferences) float64 {
	pen := 0.0

	if prefs.RefinedSugar == SugarAvoid && r.HasTag(tagRefinedSugar) {
		pen += 1000.0
	}

	switch prefs.DairyLimitLevel {
	case DairyNone:
		if r.HasTag(tagContainsDairy) {
			pen += 1000.0
		}
	case DairyLow:
		if r.HasTag(tagContainsDairy) {
			pen += 4.0
		}
	}

	if prefs.GlutenLimitLevel == GlutenVeryLow {
		if r.HasTag(tagLowGluten) {
			pen += 2.0
		}
		if !r.HasTag(tagGlutenFree) {
			pen += 10.0
		}
	}
	return pen
}
