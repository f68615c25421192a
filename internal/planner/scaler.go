package planner

import (
	"math"

	"mealbot/internal/recipe"
)

// Serving multiplier bounds. The clamp keeps a chosen recipe from
// shrinking or growing into an unrealistic serving.
const (
	MinServings = 0.6
	MaxServings = 1.6
)

// ScaleServings computes the serving multiplier for a chosen recipe:
// target protein divided by the recipe's per-serving protein, clamped to
// [MinServings, MaxServings]. Protein drives the scaling because it is
// the primary macro for satiety and training goals.
//
// A recipe without a protein entry counts as 1.0 g, and a target without
// protein falls back to the recipe's own value, so the ratio degenerates
// to neutral scaling rather than a division blow-up.
func ScaleServings(r *recipe.Recipe, target map[string]float64) float64 {
	p, ok := r.NutrientsPerServing["protein"]
	if !ok {
		p = 1.0
	}
	tp, ok := target["protein"]
	if !ok {
		tp = p
	}
	s := tp / math.Max(p, 1e-6)
	return math.Max(MinServings, math.Min(MaxServings, s))
}
