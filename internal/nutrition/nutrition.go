package nutrition

import (
	"bytes"
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

//go:embed data/nutrition.csv
var embeddedFS embed.FS

// ErrUnknownFood is returned when a food_key has no entry in the dataset.
var ErrUnknownFood = errors.New("unknown food")

var keyPattern = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeKey converts a display name into its canonical food_key:
// lowercase, runs of non-alphanumeric characters collapsed to a single
// underscore, leading/trailing underscores trimmed. Recipes reference
// foods by this exact key, so the rule must not change.
func NormalizeKey(name string) string {
	return strings.Trim(keyPattern.ReplaceAllString(strings.ToLower(name), "_"), "_")
}

// Food is one immutable dataset entry. Nutrient values are per 100 g.
type Food struct {
	Key       string
	Name      string
	Group     string
	Nutrients map[string]float64
}

// DB is the read-only nutrient lookup, resolved once at load time.
type DB struct {
	foods        map[string]*Food
	order        []string
	nutrientCols []string
}

// Load parses the embedded nutrition dataset.
func Load() (*DB, error) {
	data, err := embeddedFS.ReadFile("data/nutrition.csv")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded nutrition dataset: %w", err)
	}
	return parse(bytes.NewReader(data))
}

// LoadFile parses a nutrition dataset from disk, overriding the embedded one.
func LoadFile(path string) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open nutrition dataset: %w", err)
	}
	defer f.Close()
	return parse(f)
}

func parse(r io.Reader) (*DB, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	foodCol, groupCol := -1, -1
	var nutrientCols []string
	nutrientIdx := make(map[int]string)
	for i, col := range header {
		switch col {
		case "food":
			foodCol = i
		case "group":
			groupCol = i
		default:
			nutrientCols = append(nutrientCols, col)
			nutrientIdx[i] = col
		}
	}
	if foodCol == -1 {
		return nil, fmt.Errorf("nutrition dataset has no 'food' column")
	}

	db := &DB{
		foods:        make(map[string]*Food),
		nutrientCols: nutrientCols,
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset line %d: %w", line, err)
		}

		food := &Food{
			Name:      record[foodCol],
			Nutrients: make(map[string]float64, len(nutrientCols)),
		}
		food.Key = NormalizeKey(food.Name)
		if groupCol != -1 {
			food.Group = record[groupCol]
		}
		for i, col := range nutrientIdx {
			// Empty cells mean the value is unknown; leave the key out.
			if record[i] == "" {
				continue
			}
			v, err := strconv.ParseFloat(record[i], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid %s value for %q on line %d: %w", col, food.Name, line, err)
			}
			food.Nutrients[col] = v
		}

		if _, dup := db.foods[food.Key]; dup {
			return nil, fmt.Errorf("duplicate food_key %q in dataset", food.Key)
		}
		db.foods[food.Key] = food
		db.order = append(db.order, food.Key)
	}

	if len(db.foods) == 0 {
		return nil, fmt.Errorf("nutrition dataset is empty")
	}
	return db, nil
}

// Has reports whether the dataset contains the given food_key.
func (db *DB) Has(foodKey string) bool {
	_, ok := db.foods[foodKey]
	return ok
}

// Get returns the dataset entry for a food_key.
func (db *DB) Get(foodKey string) (*Food, error) {
	food, ok := db.foods[foodKey]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFood, foodKey)
	}
	return food, nil
}

// NameFor returns the display name for a food_key.
func (db *DB) NameFor(foodKey string) (string, error) {
	food, err := db.Get(foodKey)
	if err != nil {
		return "", err
	}
	return food.Name, nil
}

// Search returns up to limit foods whose display name contains the query,
// case-insensitive, in dataset order.
func (db *DB) Search(query string, limit int) []*Food {
	q := strings.ToLower(query)
	var out []*Food
	for _, key := range db.order {
		food := db.foods[key]
		if strings.Contains(strings.ToLower(food.Name), q) {
			out = append(out, food)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out
}

// NutrientsForGrams returns nutrient totals for the given amount of a food.
func (db *DB) NutrientsForGrams(foodKey string, grams float64) (map[string]float64, error) {
	food, err := db.Get(foodKey)
	if err != nil {
		return nil, err
	}
	factor := grams / 100.0
	out := make(map[string]float64, len(food.Nutrients))
	for col, v := range food.Nutrients {
		out[col] = v * factor
	}
	return out, nil
}

// NutrientColumns returns the nutrient column names in dataset order.
func (db *DB) NutrientColumns() []string {
	return db.nutrientCols
}

// Len returns the number of foods in the dataset.
func (db *DB) Len() int {
	return len(db.foods)
}
