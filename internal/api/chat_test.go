package api

import (
	"context"
	"strings"
	"testing"
)

func TestChatHandleMessage(t *testing.T) {
	ctx := context.Background()
	chat := NewChat(newTestService(t))

	t.Run("empty message", func(t *testing.T) {
		resp := chat.HandleMessage(ctx, &ChatMessageRequest{})
		if !strings.Contains(resp.Reply, "plan 2026-03") {
			t.Errorf("Reply = %q, want usage hint", resp.Reply)
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		resp := chat.HandleMessage(ctx, &ChatMessageRequest{Message: "frobnicate"})
		if resp.Reply != chatUsage {
			t.Errorf("Reply = %q, want %q", resp.Reply, chatUsage)
		}
	})

	t.Run("grocery before plan", func(t *testing.T) {
		resp := chat.HandleMessage(ctx, &ChatMessageRequest{Message: "grocery 2026-03"})
		if !strings.Contains(resp.Reply, "Month not initialized") {
			t.Errorf("Reply = %q, want month-not-initialized hint", resp.Reply)
		}
	})

	t.Run("plan", func(t *testing.T) {
		resp := chat.HandleMessage(ctx, &ChatMessageRequest{Message: "plan 2026-03"})
		if !strings.Contains(resp.Reply, "2026-03") {
			t.Errorf("Reply = %q, want month confirmation", resp.Reply)
		}
		if len(resp.Actions) != 2 {
			t.Fatalf("Actions = %d, want 2", len(resp.Actions))
		}
		if resp.Actions[0].Type != "SHOW_GROCERY_LIST" || resp.Actions[1].Type != "SHOW_DAY" {
			t.Errorf("Actions = %+v, want SHOW_GROCERY_LIST then SHOW_DAY", resp.Actions)
		}
	})

	t.Run("grocery", func(t *testing.T) {
		resp := chat.HandleMessage(ctx, &ChatMessageRequest{Message: "grocery 2026-03"})
		if !strings.Contains(resp.Reply, "Groceries for 2026-03") {
			t.Errorf("Reply = %q, want grocery header", resp.Reply)
		}
		if !strings.Contains(resp.Reply, "\n- ") {
			t.Errorf("Reply = %q, want item lines", resp.Reply)
		}
	})

	t.Run("day", func(t *testing.T) {
		resp := chat.HandleMessage(ctx, &ChatMessageRequest{Message: "day 2026-03-05"})
		for _, want := range []string{"breakfast:", "lunch:", "dinner:"} {
			if !strings.Contains(resp.Reply, want) {
				t.Errorf("Reply = %q, missing %q", resp.Reply, want)
			}
		}
	})

	t.Run("cook missing args", func(t *testing.T) {
		resp := chat.HandleMessage(ctx, &ChatMessageRequest{Message: "cook 2026-03-05"})
		if !strings.Contains(resp.Reply, "Format:") {
			t.Errorf("Reply = %q, want format hint", resp.Reply)
		}
	})

	t.Run("cook invalid meal", func(t *testing.T) {
		resp := chat.HandleMessage(ctx, &ChatMessageRequest{Message: "cook 2026-03-05 brunch"})
		if !strings.Contains(resp.Reply, "Invalid meal") {
			t.Errorf("Reply = %q, want invalid-meal hint", resp.Reply)
		}
	})

	t.Run("cook", func(t *testing.T) {
		resp := chat.HandleMessage(ctx, &ChatMessageRequest{Message: "cook 2026-03-05 dinner"})
		if !strings.Contains(resp.Reply, "Ingredients:") {
			t.Errorf("Reply = %q, want rendered recipe", resp.Reply)
		}
		if resp.Data["date"] != "2026-03-05" || resp.Data["meal"] != "dinner" {
			t.Errorf("Data = %+v, want date and meal echoed", resp.Data)
		}
	})

	t.Run("legacy text field", func(t *testing.T) {
		resp := chat.HandleMessage(ctx, &ChatMessageRequest{Text: "day 2026-03-05"})
		if !strings.Contains(resp.Reply, "2026-03-05") {
			t.Errorf("Reply = %q, want day summary from legacy field", resp.Reply)
		}
	})
}
