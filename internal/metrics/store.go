package metrics

import (
	"context"
	"database/sql"
	"time"

	metricsdb "mealbot/internal/metrics/metrics_db"
)

// CommandMetric records metadata for a single handled command.
type CommandMetric struct {
	Command   string
	Month     string
	LatencyMS int64
	Timestamp time.Time
}

// Store handles persistence of command metrics to SQLite.
type Store struct {
	queries *metricsdb.Queries
	db      *sql.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{
		queries: metricsdb.New(db),
		db:      db,
	}
}

// Record saves a metric to the database.
func (s *Store) Record(m CommandMetric) error {
	ts := m.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	return s.queries.InsertCommandMetric(context.Background(), metricsdb.InsertCommandMetricParams{
		Command:   m.Command,
		Month:     m.Month,
		LatencyMs: m.LatencyMS,
		Timestamp: ts,
	})
}

// DailyUsage represents command totals for a single day.
type DailyUsage struct {
	Date           string
	Commands       int
	TotalLatencyMS int64
}

// GetDailyUsage retrieves usage for the last N days.
func (s *Store) GetDailyUsage(days int) ([]DailyUsage, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := s.queries.GetDailyCommandUsage(context.Background(), since)
	if err != nil {
		return nil, err
	}

	var results []DailyUsage
	for _, r := range rows {
		u := DailyUsage{
			Commands: int(r.Count),
		}

		if day, ok := r.Day.(string); ok {
			u.Date = day
		} else {
			u.Date = "Unknown"
		}

		if r.TotalLatencyMs.Valid {
			u.TotalLatencyMS = int64(r.TotalLatencyMs.Float64)
		}

		results = append(results, u)
	}
	return results, nil
}

// Cleanup removes records older than the specified number of days.
func (s *Store) Cleanup(olderThanDays int) error {
	threshold := time.Now().UTC().AddDate(0, 0, -olderThanDays)
	return s.queries.CleanupCommandMetrics(context.Background(), threshold)
}
