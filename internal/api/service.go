package api

import (
	"context"
	"errors"
	"fmt"
	"math"

	"mealbot/internal/inventory"
	"mealbot/internal/nutrition"
	"mealbot/internal/planner"
	"mealbot/internal/recipe"
	"mealbot/internal/session"
)

var (
	// ErrMonthNotStarted is returned when an operation targets a month
	// with no session. Call StartMonth first.
	ErrMonthNotStarted = errors.New("month not initialized")

	// ErrDateNotFound is returned when a date is outside the month plan.
	ErrDateNotFound = errors.New("date not found in month plan")
)

// Service wires the planner, the grocery aggregation, and the session
// store behind the operations the HTTP and chat surfaces expose.
type Service struct {
	nutrition *nutrition.DB
	catalog   *recipe.Catalog
	rules     *inventory.PackagingRules
	sessions  *session.Manager
}

// NewService assembles a Service from its loaded dependencies.
func NewService(db *nutrition.DB, catalog *recipe.Catalog, rules *inventory.PackagingRules, sessions *session.Manager) *Service {
	return &Service{
		nutrition: db,
		catalog:   catalog,
		rules:     rules,
		sessions:  sessions,
	}
}

// StartMonth builds the plan for a month, derives the grocery list,
// seeds the inventory ledger, and stores the session snapshot.
func (s *Service) StartMonth(ctx context.Context, month string, profile *planner.UserProfile) (*StartMonthResponse, error) {
	var p planner.UserProfile
	if profile != nil {
		p = *profile
	} else {
		p = planner.DefaultProfile()
	}
	p.Normalize()

	plan, err := planner.BuildMonthPlan(month, p, s.catalog)
	if err != nil {
		return nil, err
	}

	totals, err := inventory.AggregateGroceryList(plan, s.catalog)
	if err != nil {
		return nil, err
	}
	items, err := inventory.GroceryItems(totals, s.nutrition, s.rules)
	if err != nil {
		return nil, err
	}
	ledger := inventory.NewLedger(totals)

	sess := &session.Session{
		Month:   month,
		Profile: p,
		Plan:    plan,
		Ledger:  ledger,
	}
	if err := s.sessions.Put(ctx, sess); err != nil {
		return nil, err
	}

	return &StartMonthResponse{
		MonthPlan:   plan,
		GroceryList: GroceryList{Items: items},
		Inventory:   ledger,
	}, nil
}

// Day returns the plan for one date of an initialized month.
func (s *Service) Day(ctx context.Context, month, date string) (*planner.DayPlan, error) {
	sess, err := s.sessions.Get(ctx, month)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrMonthNotStarted
	}
	day, ok := sess.Plan.Day(date)
	if !ok {
		return nil, ErrDateNotFound
	}
	return day, nil
}

// Cook renders the recipe for one planned meal and subtracts its
// scaled ingredients from the month's inventory ledger.
func (s *Service) Cook(ctx context.Context, date, meal string) (*CookMealResponse, error) {
	switch meal {
	case recipe.MealBreakfast, recipe.MealLunch, recipe.MealDinner:
	default:
		return nil, fmt.Errorf("invalid meal %q", meal)
	}
	if len(date) < 7 {
		return nil, fmt.Errorf("%w: %q", planner.ErrInvalidMonth, date)
	}
	month := date[:7]

	sess, err := s.sessions.Get(ctx, month)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrMonthNotStarted
	}
	day, ok := sess.Plan.Day(date)
	if !ok {
		return nil, ErrDateNotFound
	}

	assignment := day.Meal(meal)
	r, ok := s.catalog.ByID(assignment.RecipeID)
	if !ok {
		return nil, fmt.Errorf("plan references unknown recipe %q", assignment.RecipeID)
	}

	ingredients := make([]recipe.ScaledIngredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		name, err := s.nutrition.NameFor(ing.FoodKey)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve ingredient %q: %w", ing.FoodKey, err)
		}
		ingredients = append(ingredients, recipe.ScaledIngredient{
			FoodKey: ing.FoodKey,
			Name:    name,
			Grams:   math.Round(ing.Grams*assignment.Servings*10) / 10,
		})
	}

	text := recipe.RenderBasic(r.Title, ingredients, sess.Profile.Preferences.MaxPrepMinutes)

	sess.Ledger = inventory.ApplyMeal(r, assignment.Servings, sess.Ledger)
	if err := s.sessions.Put(ctx, sess); err != nil {
		return nil, err
	}

	return &CookMealResponse{
		RecipeID:       r.ID,
		Servings:       assignment.Servings,
		Ingredients:    ingredients,
		RecipeText:     text,
		InventoryAfter: sess.Ledger,
	}, nil
}

// Grocery recomputes the purchase list for an initialized month from
// its stored plan. The ledger tracks what remains; the grocery list is
// always the full initial demand.
func (s *Service) Grocery(ctx context.Context, month string) ([]inventory.GroceryItem, error) {
	sess, err := s.sessions.Get(ctx, month)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrMonthNotStarted
	}
	totals, err := inventory.AggregateGroceryList(sess.Plan, s.catalog)
	if err != nil {
		return nil, err
	}
	return inventory.GroceryItems(totals, s.nutrition, s.rules)
}
