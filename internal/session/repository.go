package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sessiondb "mealbot/internal/session/session_db"
)

// Repository persists session snapshots to SQLite. Each month maps to
// one row; profile, plan, and ledger are stored as JSON blobs.
type Repository struct {
	queries *sessiondb.Queries
	db      *sql.DB
}

// NewRepository creates a Repository over an existing database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		queries: sessiondb.New(db),
		db:      db,
	}
}

// Save upserts the snapshot for the session's month.
func (r *Repository) Save(ctx context.Context, s *Session) error {
	profileJSON, err := json.Marshal(s.Profile)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}
	planJSON, err := json.Marshal(s.Plan)
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}
	ledgerJSON, err := json.Marshal(s.Ledger)
	if err != nil {
		return fmt.Errorf("marshaling ledger: %w", err)
	}

	now := time.Now().UTC()
	return r.queries.UpsertPlanSession(ctx, sessiondb.UpsertPlanSessionParams{
		Month:         s.Month,
		ProfileData:   string(profileJSON),
		PlanData:      string(planJSON),
		InventoryData: string(ledgerJSON),
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

// Load retrieves the snapshot for a month. Returns (nil, nil) when no
// snapshot exists.
func (r *Repository) Load(ctx context.Context, month string) (*Session, error) {
	row, err := r.queries.GetPlanSessionByMonth(ctx, month)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	s := &Session{Month: row.Month}
	if err := json.Unmarshal([]byte(row.ProfileData), &s.Profile); err != nil {
		return nil, fmt.Errorf("unmarshaling profile: %w", err)
	}
	if err := json.Unmarshal([]byte(row.PlanData), &s.Plan); err != nil {
		return nil, fmt.Errorf("unmarshaling plan: %w", err)
	}
	if err := json.Unmarshal([]byte(row.InventoryData), &s.Ledger); err != nil {
		return nil, fmt.Errorf("unmarshaling ledger: %w", err)
	}
	return s, nil
}

// Months lists the months with a stored snapshot, sorted ascending.
func (r *Repository) Months(ctx context.Context) ([]string, error) {
	return r.queries.ListPlanSessionMonths(ctx)
}

// Delete removes the snapshot for a month.
func (r *Repository) Delete(ctx context.Context, month string) error {
	return r.queries.DeletePlanSessionByMonth(ctx, month)
}
