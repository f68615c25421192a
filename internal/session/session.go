package session

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"mealbot/internal/inventory"
	"mealbot/internal/planner"
)

// Session is the working state for one planned month: the profile the
// plan was built from, the plan itself, and the remaining-inventory
// ledger that /cook draws down.
type Session struct {
	Month   string              `json:"month"`
	Profile planner.UserProfile `json:"profile"`
	Plan    *planner.MonthPlan  `json:"plan"`
	Ledger  inventory.Ledger    `json:"ledger"`
}

// Manager keeps sessions in memory, keyed by month, and writes every
// mutation through to the repository. A nil repository keeps sessions
// purely in memory.
type Manager struct {
	mu       sync.Mutex
	repo     *Repository
	sessions map[string]*Session
}

// NewManager creates a Manager backed by repo. repo may be nil.
func NewManager(repo *Repository) *Manager {
	return &Manager{
		repo:     repo,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for a month, loading it from the repository
// on a cache miss. Returns (nil, nil) when no session exists.
func (m *Manager) Get(ctx context.Context, month string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[month]; ok {
		return s, nil
	}
	if m.repo == nil {
		return nil, nil
	}

	s, err := m.repo.Load(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("loading session for %s: %w", month, err)
	}
	if s != nil {
		m.sessions[month] = s
	}
	return s, nil
}

// Put stores a session and persists it.
func (m *Manager) Put(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[s.Month] = s
	if m.repo == nil {
		return nil
	}
	if err := m.repo.Save(ctx, s); err != nil {
		return fmt.Errorf("saving session for %s: %w", s.Month, err)
	}
	return nil
}

// Delete removes a session from memory and from the repository.
func (m *Manager) Delete(ctx context.Context, month string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, month)
	if m.repo == nil {
		return nil
	}
	return m.repo.Delete(ctx, month)
}

// Months lists the months with a stored session, sorted ascending.
func (m *Manager) Months(ctx context.Context) ([]string, error) {
	if m.repo == nil {
		m.mu.Lock()
		defer m.mu.Unlock()
		months := make([]string, 0, len(m.sessions))
		for month := range m.sessions {
			months = append(months, month)
		}
		sort.Strings(months)
		return months, nil
	}
	return m.repo.Months(ctx)
}
