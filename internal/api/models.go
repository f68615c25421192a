package api

import (
	"github.com/go-playground/validator/v10"

	"mealbot/internal/inventory"
	"mealbot/internal/planner"
	"mealbot/internal/recipe"
)

// StartMonthRequest asks for a full month plan. An omitted profile
// falls back to the defaults.
type StartMonthRequest struct {
	Month       string               `json:"month" validate:"required,len=7"`
	UserProfile *planner.UserProfile `json:"user_profile,omitempty"`
}

// GroceryList wraps the purchasable items for a month.
type GroceryList struct {
	Items []inventory.GroceryItem `json:"items"`
}

// StartMonthResponse returns the plan, the grocery list derived from
// it, and the freshly seeded inventory ledger.
type StartMonthResponse struct {
	MonthPlan   *planner.MonthPlan `json:"month_plan"`
	GroceryList GroceryList        `json:"grocery_list"`
	Inventory   inventory.Ledger   `json:"inventory"`
}

// CookMealRequest marks one planned meal as cooked.
type CookMealRequest struct {
	Date string `json:"date" validate:"required,len=10"`
	Meal string `json:"meal" validate:"required,oneof=breakfast lunch dinner"`
}

// CookMealResponse returns the rendered recipe and the ledger after
// the meal's ingredients are drawn down.
type CookMealResponse struct {
	RecipeID       string                    `json:"recipe_id"`
	Servings       float64                   `json:"servings"`
	Ingredients    []recipe.ScaledIngredient `json:"ingredients"`
	RecipeText     string                    `json:"recipe_text"`
	InventoryAfter inventory.Ledger          `json:"inventory_after"`
}

// ChatMessageRequest is the lightweight command interface over the
// API. Not an LLM chat: the message is parsed as a command and routed
// to the existing operations. The legacy field name "text" is still
// accepted.
type ChatMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Text      string `json:"text"` // legacy
	Month     string `json:"month,omitempty"`
}

// ChatAction is a UI hint attached to a chat reply.
type ChatAction struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// ChatMessageResponse is the reply to one chat command.
type ChatMessageResponse struct {
	Reply   string                 `json:"reply"`
	Actions []ChatAction           `json:"actions,omitempty"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

var validate = validator.New()

// Validate checks the request's field constraints.
func (r *StartMonthRequest) Validate() error {
	return validate.Struct(r)
}

// Validate checks the request's field constraints.
func (r *CookMealRequest) Validate() error {
	return validate.Struct(r)
}
