package planner

// GlutenLimit is how strictly gluten is limited.
type GlutenLimit string

const (
	GlutenLow     GlutenLimit = "low"
	GlutenVeryLow GlutenLimit = "very_low"
)

// DairyLimit is how strictly dairy is limited.
type DairyLimit string

const (
	DairyLow  DairyLimit = "low"
	DairyNone DairyLimit = "none"
)

// SugarPolicy is the refined-sugar policy.
type SugarPolicy string

const (
	SugarAvoid      SugarPolicy = "avoid"
	SugarAllowSmall SugarPolicy = "allow_small"
)

// Preferences holds the dietary preferences for one planning run.
//
// DislikedFoods is accepted and carried through but not consulted by the
// scoring yet; see DESIGN.md.
type Preferences struct {
	GlutenLimitLevel GlutenLimit `json:"gluten_limit_level"`
	DairyLimitLevel  DairyLimit  `json:"dairy_limit_level"`
	RefinedSugar     SugarPolicy `json:"refined_sugar"`
	DislikedFoods    []string    `json:"disliked_foods"`
	MaxPrepMinutes   int         `json:"max_prep_minutes"`
	ServingsPerMeal  float64     `json:"servings_per_meal"`
	Variety          int         `json:"variety"`
}

// DailyTargets holds the daily nutrient goals. Macros are grams/day;
// micro units follow the underlying dataset columns.
type DailyTargets struct {
	Calories float64            `json:"calories"`
	MacrosG  map[string]float64 `json:"macros_g"`
	Micros   map[string]float64 `json:"micros"`
}

// UserProfile is the full per-user planning input.
type UserProfile struct {
	DailyTargets DailyTargets `json:"daily_targets"`
	Preferences  Preferences  `json:"preferences"`
}

// DefaultMacros returns the default daily macro targets in grams.
func DefaultMacros() map[string]float64 {
	return map[string]float64{
		"protein":       120.0,
		"carbohydrates": 220.0,
		"total_fat":     70.0,
		"fiber":         30.0,
	}
}

// DefaultMicros returns the default daily micronutrient targets, in the
// units of the dataset columns (mg except where the dataset says otherwise).
func DefaultMicros() map[string]float64 {
	return map[string]float64{
		"calcium":   1000.0,
		"iron":      18.0,
		"magnesium": 400.0,
		"potassium": 3400.0,
		"vitamin_C": 90.0,
	}
}

// DefaultProfile returns the profile used when the caller supplies none.
func DefaultProfile() UserProfile {
	return UserProfile{
		DailyTargets: DailyTargets{
			Calories: 2000.0,
			MacrosG:  DefaultMacros(),
			Micros:   DefaultMicros(),
		},
		Preferences: Preferences{
			GlutenLimitLevel: GlutenLow,
			DairyLimitLevel:  DairyLow,
			RefinedSugar:     SugarAvoid,
			MaxPrepMinutes:   35,
			ServingsPerMeal:  1.0,
			Variety:          28,
		},
	}
}

// Normalize fills zero-valued profile fields with the defaults so a
// partially specified profile still plans sensibly.
func (p *UserProfile) Normalize() {
	def := DefaultProfile()
	if p.DailyTargets.Calories == 0 {
		p.DailyTargets.Calories = def.DailyTargets.Calories
	}
	if len(p.DailyTargets.MacrosG) == 0 {
		p.DailyTargets.MacrosG = def.DailyTargets.MacrosG
	}
	if len(p.DailyTargets.Micros) == 0 {
		p.DailyTargets.Micros = def.DailyTargets.Micros
	}
	if p.Preferences.GlutenLimitLevel == "" {
		p.Preferences.GlutenLimitLevel = def.Preferences.GlutenLimitLevel
	}
	if p.Preferences.DairyLimitLevel == "" {
		p.Preferences.DairyLimitLevel = def.Preferences.DairyLimitLevel
	}
	if p.Preferences.RefinedSugar == "" {
		p.Preferences.RefinedSugar = def.Preferences.RefinedSugar
	}
	if p.Preferences.MaxPrepMinutes == 0 {
		p.Preferences.MaxPrepMinutes = def.Preferences.MaxPrepMinutes
	}
	if p.Preferences.ServingsPerMeal == 0 {
		p.Preferences.ServingsPerMeal = def.Preferences.ServingsPerMeal
	}
	if p.Preferences.Variety == 0 {
		p.Preferences.Variety = def.Preferences.Variety
	}
}
