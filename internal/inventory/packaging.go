package inventory

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"strings"
)

//go:embed data/packaging_rules.json
var embeddedFS embed.FS

// Packaging rule kinds.
const (
	RulePackGrams = "pack_grams"
	RuleCount     = "count"
	RuleKg        = "kg"
)

// PackagingRule describes how one food is sold at retail. Only the
// fields for its kind are meaningful.
type PackagingRule struct {
	Type      string  `json:"type"`
	PackSizeG float64 `json:"pack_size_g,omitempty"`
	Label     string  `json:"label,omitempty"`
	UnitGrams float64 `json:"unit_grams,omitempty"`
	PackSize  int     `json:"pack_size,omitempty"`
	UnitLabel string  `json:"unit_label,omitempty"`
}

// validate rejects rules the rounding policy cannot apply. A rejected
// rule is dropped at load time and the heuristic fallback takes over for
// that food; a bad config entry never fails a planning run.
func (r PackagingRule) validate() error {
	switch r.Type {
	case RulePackGrams:
		if r.PackSizeG <= 0 {
			return fmt.Errorf("pack_grams rule needs a positive pack_size_g")
		}
	case RuleCount:
		if r.UnitGrams < 0 || r.PackSize < 0 {
			return fmt.Errorf("count rule has negative parameters")
		}
	case RuleKg:
	default:
		return fmt.Errorf("unknown rule type %q", r.Type)
	}
	return nil
}

// PackagingRules is the per-food rule table plus the heuristic fallback.
type PackagingRules struct {
	byFoodKey map[string]PackagingRule
}

type rulesFile struct {
	ByFoodKey map[string]PackagingRule `json:"by_food_key"`
}

// LoadPackagingRules parses the embedded packaging rule table.
func LoadPackagingRules() (*PackagingRules, error) {
	data, err := embeddedFS.ReadFile("data/packaging_rules.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded packaging rules: %w", err)
	}
	return parseRules(data)
}

// LoadPackagingRulesFile parses a rule table from disk. A missing file
// is not an error: every food falls back to the heuristic.
func LoadPackagingRulesFile(path string) (*PackagingRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &PackagingRules{byFoodKey: map[string]PackagingRule{}}, nil
		}
		return nil, fmt.Errorf("failed to read packaging rules: %w", err)
	}
	return parseRules(data)
}

func parseRules(data []byte) (*PackagingRules, error) {
	var file rulesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse packaging rules: %w", err)
	}

	rules := make(map[string]PackagingRule, len(file.ByFoodKey))
	for foodKey, rule := range file.ByFoodKey {
		if err := rule.validate(); err != nil {
			log.Printf("Dropping invalid packaging rule for %q: %v", foodKey, err)
			continue
		}
		rules[foodKey] = rule
	}
	return &PackagingRules{byFoodKey: rules}, nil
}

// Rule returns the packaging rule for a food_key, if one exists.
func (p *PackagingRules) Rule(foodKey string) (PackagingRule, bool) {
	r, ok := p.byFoodKey[foodKey]
	return r, ok
}

// produceKeywords mark foods bought fresh by weight; substring match on
// the lowercased display name.
var produceKeywords = []string{
	"raw", "fresh", "fruit", "vegetable", "berries", "tomatoes", "apples", "bananas",
}

func roundToStep(grams, step float64) float64 {
	return math.Ceil(grams/step) * step
}

// kg1 and kg2 format kilograms rounding half up first: %.1f alone would
// round 850 g down to "0.8 kg" because 0.85 sits just below the tie in
// binary, and purchase quantities never round down.
func kg1(kg float64) string {
	return fmt.Sprintf("%.1f kg", math.Round(kg*10)/10)
}

func kg2(kg float64) string {
	return fmt.Sprintf("%.2f kg", math.Round(kg*100)/100)
}

// RoundForPurchase converts an exact gram total into a retail quantity
// string. The policy is user-visible and must stay bit-exact: per-food
// packaging rule first, then the produce-name heuristic, then magnitude
// steps.
func (p *PackagingRules) RoundForPurchase(foodKey string, grams float64, foodName string) string {
	grams = math.Max(0, grams)

	if rule, ok := p.byFoodKey[foodKey]; ok {
		switch rule.Type {
		case RulePackGrams:
			packs := int(math.Ceil(grams / rule.PackSizeG))
			if packs == 0 {
				packs = 1
			}
			label := rule.Label
			if label == "" {
				label = fmt.Sprintf("%d g", int(rule.PackSizeG))
			}
			return fmt.Sprintf("%d x %s (tot %d g)", packs, label, packs*int(rule.PackSizeG))

		case RuleCount:
			unitGrams := rule.UnitGrams
			if unitGrams == 0 {
				unitGrams = 50
			}
			packSize := rule.PackSize
			if packSize == 0 {
				packSize = 6
			}
			units := int(math.Ceil(grams / unitGrams))
			if units == 0 {
				units = 1
			}
			packs := int(math.Ceil(float64(units) / float64(packSize)))
			unitLabel := rule.UnitLabel
			if unitLabel == "" {
				unitLabel = "pcs"
			}
			return fmt.Sprintf("%d x %d %s (tot %d %s)", packs, packSize, unitLabel, packs*packSize, unitLabel)

		case RuleKg:
			return kg1(grams / 1000.0)
		}
	}

	lower := strings.ToLower(foodName)
	for _, kw := range produceKeywords {
		if strings.Contains(lower, kw) {
			kg := grams / 1000.0
			if kg >= 0.3 {
				return kg1(kg)
			}
			return fmt.Sprintf("%d g", int(roundToStep(grams, 50)))
		}
	}

	switch {
	case grams < 60:
		return fmt.Sprintf("%d g", int(math.Ceil(grams)))
	case grams < 250:
		return fmt.Sprintf("%d g", int(roundToStep(grams, 25)))
	case grams < 1000:
		return fmt.Sprintf("%d g", int(roundToStep(grams, 50)))
	}

	kg := roundToStep(grams, 100) / 1000.0
	if kg < 10 {
		return kg2(kg)
	}
	return kg1(kg)
}
