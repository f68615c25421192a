package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mealbot/internal/recipe"
)

// Chat routes plain-text commands to the service operations. It is a
// command interface, not a conversation: plan, grocery, day, cook.
type Chat struct {
	service *Service
}

// NewChat creates a chat command router over the service.
func NewChat(service *Service) *Chat {
	return &Chat{service: service}
}

const chatUsage = "Unknown command. Use: plan, grocery, day, cook."

// HandleMessage parses one message and executes the matching command.
// Errors from the underlying operations become plain replies so the
// chat surface never fails a request over a bad command.
func (c *Chat) HandleMessage(ctx context.Context, req *ChatMessageRequest) *ChatMessageResponse {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		text = strings.TrimSpace(req.Text)
	}
	if text == "" {
		return &ChatMessageResponse{Reply: "Type a command. Example: plan 2026-03"}
	}

	parts := strings.Fields(text)
	cmd := strings.ToLower(parts[0])

	switch cmd {
	case "plan", "start":
		month := currentMonth()
		if len(parts) > 1 {
			month = parts[1]
		}
		if _, err := c.service.StartMonth(ctx, month, nil); err != nil {
			return &ChatMessageResponse{Reply: replyForError(err)}
		}
		return &ChatMessageResponse{
			Reply: fmt.Sprintf("Done. Plan and grocery list for %s are ready.\nYou can:\n- view the grocery list\n- open a day\n- cook a recipe.", month),
			Actions: []ChatAction{
				{Type: "SHOW_GROCERY_LIST", Payload: map[string]interface{}{"month": month}},
				{Type: "SHOW_DAY", Payload: map[string]interface{}{"date": month + "-01"}},
			},
			Data: map[string]interface{}{"month": month},
		}

	case "grocery", "list":
		month := currentMonth()
		if len(parts) > 1 {
			month = parts[1]
		}
		items, err := c.service.Grocery(ctx, month)
		if err != nil {
			return &ChatMessageResponse{Reply: replyForError(err)}
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Groceries for %s (rounded quantities):", month)
		for _, it := range items {
			fmt.Fprintf(&b, "\n- %s: %s (approx. use %.1f g)", it.Name, it.RoundedPurchaseQty, it.TotalGrams)
		}
		return &ChatMessageResponse{
			Reply:   b.String(),
			Actions: []ChatAction{{Type: "SHOW_GROCERY_LIST", Payload: map[string]interface{}{"month": month}}},
			Data:    map[string]interface{}{"month": month},
		}

	case "day":
		date := time.Now().Format("2006-01-02")
		if len(parts) > 1 {
			date = parts[1]
		}
		if len(date) < 7 {
			return &ChatMessageResponse{Reply: "Format: day YYYY-MM-DD"}
		}
		day, err := c.service.Day(ctx, date[:7], date)
		if err != nil {
			return &ChatMessageResponse{Reply: replyForError(err)}
		}
		return &ChatMessageResponse{
			Reply: fmt.Sprintf("%s\n- breakfast: %s (serv %g)\n- lunch: %s (serv %g)\n- dinner: %s (serv %g)",
				date,
				day.Breakfast.RecipeID, day.Breakfast.Servings,
				day.Lunch.RecipeID, day.Lunch.Servings,
				day.Dinner.RecipeID, day.Dinner.Servings),
			Actions: []ChatAction{{Type: "SHOW_DAY", Payload: map[string]interface{}{"date": date}}},
		}

	case "cook", "recipe":
		if len(parts) < 3 {
			return &ChatMessageResponse{Reply: "Format: cook YYYY-MM-DD (breakfast|lunch|dinner)"}
		}
		date := parts[1]
		meal := strings.ToLower(parts[2])
		switch meal {
		case recipe.MealBreakfast, recipe.MealLunch, recipe.MealDinner:
		default:
			return &ChatMessageResponse{Reply: "Invalid meal: use breakfast/lunch/dinner"}
		}
		resp, err := c.service.Cook(ctx, date, meal)
		if err != nil {
			return &ChatMessageResponse{Reply: replyForError(err)}
		}
		return &ChatMessageResponse{
			Reply: resp.RecipeText,
			Data:  map[string]interface{}{"recipe_id": resp.RecipeID, "date": date, "meal": meal},
		}
	}

	return &ChatMessageResponse{Reply: chatUsage}
}

func currentMonth() string {
	return time.Now().Format("2006-01")
}

func replyForError(err error) string {
	switch {
	case errors.Is(err, ErrMonthNotStarted):
		return "Month not initialized. Use: plan YYYY-MM"
	case errors.Is(err, ErrDateNotFound):
		return "Date not found in month plan."
	default:
		return fmt.Sprintf("Something went wrong: %v", err)
	}
}
