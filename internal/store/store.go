// Package store keeps privacy-conscious site analytics in SQLite: page visits
// with hashed addresses and widget interactions.
package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Widgets and actions recorded as interactions.
const (
	WidgetProjects  = "projects"
	WidgetCompanies = "companies"
	WidgetBlog      = "blog"

	ActionFilter = "filter"
	ActionReveal = "reveal"
	ActionToggle = "toggle"
)

// Store is the analytics database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the SQLite database at path and applies
// pending migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite allows one writer; tracking writes come from goroutines.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return New(db), nil
}

// New wraps an already migrated database.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func runMigrations(db *sql.DB) error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	dbDriver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create migration db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordVisit stores one page view. hashedIP must already be anonymized.
func (s *Store) RecordVisit(ctx context.Context, hashedIP, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, hashedIP, userAgent, path, s.now().Unix())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// RecordInteraction stores one widget interaction, e.g. a filter chip click.
func (s *Store) RecordInteraction(ctx context.Context, widget, action, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO interactions (widget, action, value, timestamp)
		VALUES (?, ?, ?, ?)
	`, widget, action, value, s.now().Unix())
	if err != nil {
		return fmt.Errorf("record interaction: %w", err)
	}
	return nil
}

// CleanupVisitors deletes visitor rows older than retention and returns how
// many were removed.
func (s *Store) CleanupVisitors(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention).Unix()
	result, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup visitors: %w", err)
	}
	n, _ := result.RowsAffected()
	return n, nil
}
