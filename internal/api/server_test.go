package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mealbot/internal/planner"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := newTestService(t)
	srv := NewServer("0", svc, NewChat(svc), nil, t.TempDir())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestServerStartMonth(t *testing.T) {
	ts := newTestServer(t)

	t.Run("success", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/start_month", StartMonthRequest{Month: "2026-03"})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var body StartMonthResponse
		decode(t, resp, &body)
		if len(body.MonthPlan.Days) != 31 {
			t.Errorf("plan has %d days, want 31", len(body.MonthPlan.Days))
		}
		if len(body.GroceryList.Items) == 0 {
			t.Error("grocery list is empty")
		}
	})

	t.Run("missing month", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/start_month", map[string]string{})
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("malformed month", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/start_month", StartMonthRequest{Month: "2026-13"})
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("custom profile", func(t *testing.T) {
		profile := planner.DefaultProfile()
		profile.Preferences.DairyLimitLevel = planner.DairyNone
		resp := postJSON(t, ts.URL+"/start_month", StartMonthRequest{Month: "2026-04", UserProfile: &profile})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var body StartMonthResponse
		decode(t, resp, &body)
		if len(body.MonthPlan.Days) != 30 {
			t.Errorf("plan has %d days, want 30", len(body.MonthPlan.Days))
		}
	})
}

func TestServerGetDay(t *testing.T) {
	ts := newTestServer(t)

	t.Run("month not started", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/day/2026-03/2026-03-05")
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})

	postJSON(t, ts.URL+"/start_month", StartMonthRequest{Month: "2026-03"}).Body.Close()

	t.Run("success", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/day/2026-03/2026-03-05")
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var day planner.DayPlan
		decode(t, resp, &day)
		if day.Date != "2026-03-05" {
			t.Errorf("date = %s, want 2026-03-05", day.Date)
		}
	})

	t.Run("date outside month", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/day/2026-03/2026-04-01")
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})
}

func TestServerCook(t *testing.T) {
	ts := newTestServer(t)
	postJSON(t, ts.URL+"/start_month", StartMonthRequest{Month: "2026-03"}).Body.Close()

	t.Run("success", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/cook", CookMealRequest{Date: "2026-03-01", Meal: "dinner"})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var body CookMealResponse
		decode(t, resp, &body)
		if body.RecipeID == "" || body.RecipeText == "" {
			t.Errorf("incomplete cook response: %+v", body)
		}
		for k, v := range body.InventoryAfter {
			if v < 0 {
				t.Errorf("inventory[%s] = %v, want >= 0", k, v)
			}
		}
	})

	t.Run("invalid meal", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/cook", CookMealRequest{Date: "2026-03-01", Meal: "brunch"})
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("month not started", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/cook", CookMealRequest{Date: "2026-05-01", Meal: "lunch"})
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})
}

func TestServerChatMessage(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/chat/message", ChatMessageRequest{Message: "plan 2026-03"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body ChatMessageResponse
	decode(t, resp, &body)
	if len(body.Actions) != 2 {
		t.Errorf("actions = %d, want 2", len(body.Actions))
	}
}

func TestServerHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]interface{}
	decode(t, resp, &body)
	if body["status"] != "ok" {
		t.Errorf("status field = %v, want ok", body["status"])
	}
}
