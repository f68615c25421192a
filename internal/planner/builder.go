package planner

import (
	"errors"
	"fmt"
	"math"
	"time"

	"mealbot/internal/recipe"
)

// ErrInvalidMonth is returned when a month string is not a valid YYYY-MM.
var ErrInvalidMonth = errors.New("invalid month")

// RecencyWindow is how many recently assigned recipe ids the selector
// sees. The window is shared across all slots and days of a month so
// the same recipe does not land on consecutive days in any slot.
const RecencyWindow = 8

// MonthDates returns every calendar date of a YYYY-MM month as
// YYYY-MM-DD strings, in order, respecting the month's actual day count
// including leap years.
func MonthDates(month string) ([]string, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	year, m := t.Year(), t.Month()
	// Day 0 of the next month is the last day of this one.
	last := time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()

	dates := make([]string, 0, last)
	for d := 1; d <= last; d++ {
		dates = append(dates, time.Date(year, m, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02"))
	}
	return dates, nil
}

// recencyQueue is a bounded FIFO of recipe ids. It is passed explicitly
// through the build loop instead of living in package state.
type recencyQueue struct {
	ids   []string
	limit int
}

func newRecencyQueue(limit int) *recencyQueue {
	return &recencyQueue{limit: limit}
}

func (q *recencyQueue) push(id string) {
	q.ids = append(q.ids, id)
	if len(q.ids) > q.limit {
		q.ids = q.ids[len(q.ids)-q.limit:]
	}
}

func (q *recencyQueue) window() []string {
	return q.ids
}

// BuildMonthPlan assembles the full plan for a YYYY-MM month: for every
// calendar day it targets, selects and scales one recipe per slot in
// breakfast, lunch, dinner order, then sums the day's scaled nutrients.
func BuildMonthPlan(month string, profile UserProfile, catalog *recipe.Catalog) (*MonthPlan, error) {
	dates, err := MonthDates(month)
	if err != nil {
		return nil, err
	}

	macros := profile.DailyTargets.MacrosG
	recent := newRecencyQueue(RecencyWindow)
	days := make([]DayPlan, 0, len(dates))

	type pick struct {
		recipe   *recipe.Recipe
		servings float64
	}

	for _, date := range dates {
		day := DayPlan{Date: date}
		picks := make([]pick, 0, len(recipe.MealSlots))

		for _, meal := range recipe.MealSlots {
			target := MealTarget(macros, meal)
			chosen, err := Choose(catalog.ForMeal(meal), target, profile.Preferences, recent.window())
			if err != nil {
				return nil, fmt.Errorf("failed to plan %s %s: %w", date, meal, err)
			}
			servings := round2(ScaleServings(chosen, target))

			assignment := MealAssignment{RecipeID: chosen.ID, Servings: servings}
			switch meal {
			case recipe.MealBreakfast:
				day.Breakfast = assignment
			case recipe.MealLunch:
				day.Lunch = assignment
			case recipe.MealDinner:
				day.Dinner = assignment
			}

			picks = append(picks, pick{recipe: chosen, servings: servings})
			recent.push(chosen.ID)
		}

		totals := make(map[string]float64)
		for _, p := range picks {
			for k, v := range p.recipe.NutrientsPerServing {
				totals[k] += v * p.servings
			}
		}
		for k, v := range totals {
			totals[k] = round2(v)
		}
		day.Totals = totals

		days = append(days, day)
	}

	return &MonthPlan{Month: month, Days: days}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
