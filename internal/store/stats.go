package store

import (
	"context"
	"fmt"
	"time"
)

// Visitor is one recorded page view.
type Visitor struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Count is a value with how often it was seen.
type Count struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors     int64     `json:"total_visitors"`
	UniqueVisitors    int64     `json:"unique_visitors"`
	VisitorsToday     int64     `json:"visitors_today"`
	VisitorsThisWeek  int64     `json:"visitors_this_week"`
	TotalInteractions int64     `json:"total_interactions"`
	TopFilters        []Count   `json:"top_filters"`
	TopExpanded       []Count   `json:"top_expanded"`
	TopPaths          []Count   `json:"top_paths"`
	RecentVisitors    []Visitor `json:"recent_visitors"`
}

// Stats gathers the dashboard summary.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	week := now.Add(-7 * 24 * time.Hour)

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{today.Unix()}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{week.Unix()}},
		{&stats.TotalInteractions, `SELECT COUNT(*) FROM interactions`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	var err error
	if stats.TopFilters, err = s.topInteractions(ctx, WidgetProjects, ActionFilter, 10); err != nil {
		return nil, err
	}
	if stats.TopExpanded, err = s.topInteractions(ctx, WidgetCompanies, ActionToggle, 10); err != nil {
		return nil, err
	}
	if stats.TopPaths, err = s.topPaths(ctx, 10); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.RecentVisitors(ctx, 50); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *Store) topInteractions(ctx context.Context, widget, action string, limit int) ([]Count, error) {
	return s.counts(ctx, `
		SELECT value, COUNT(*) AS n
		FROM interactions
		WHERE widget = ? AND action = ?
		GROUP BY value
		ORDER BY n DESC, value ASC
		LIMIT ?
	`, widget, action, limit)
}

func (s *Store) topPaths(ctx context.Context, limit int) ([]Count, error) {
	return s.counts(ctx, `
		SELECT path, COUNT(*) AS n
		FROM visitors
		GROUP BY path
		ORDER BY n DESC, path ASC
		LIMIT ?
	`, limit)
}

func (s *Store) counts(ctx context.Context, query string, args ...any) ([]Count, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	defer rows.Close()

	var out []Count
	for rows.Next() {
		var c Count
		if err := rows.Scan(&c.Value, &c.Count); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// RecentVisitors returns the latest page views, newest first.
func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]Visitor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visitors: %w", err)
	}
	defer rows.Close()

	var visitors []Visitor
	for rows.Next() {
		var v Visitor
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("recent visitors: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}
