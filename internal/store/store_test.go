package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	s.now = fixedClock(now.Add(-30 * 24 * time.Hour))
	require.NoError(t, s.RecordVisit(ctx, "aaa", "ua", "/"))

	s.now = fixedClock(now.Add(-3 * 24 * time.Hour))
	require.NoError(t, s.RecordVisit(ctx, "bbb", "ua", "/blog"))

	s.now = fixedClock(now.Add(-time.Hour))
	require.NoError(t, s.RecordVisit(ctx, "aaa", "ua", "/"))
	require.NoError(t, s.RecordInteraction(ctx, WidgetProjects, ActionFilter, "ml"))
	require.NoError(t, s.RecordInteraction(ctx, WidgetProjects, ActionFilter, "web3"))
	require.NoError(t, s.RecordInteraction(ctx, WidgetProjects, ActionFilter, "ml"))
	require.NoError(t, s.RecordInteraction(ctx, WidgetProjects, ActionReveal, ""))
	require.NoError(t, s.RecordInteraction(ctx, WidgetCompanies, ActionToggle, "lbank"))

	s.now = fixedClock(now)
	stats, err := s.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalVisitors)
	assert.Equal(t, int64(2), stats.UniqueVisitors)
	assert.Equal(t, int64(1), stats.VisitorsToday)
	assert.Equal(t, int64(2), stats.VisitorsThisWeek)
	assert.Equal(t, int64(5), stats.TotalInteractions)
	assert.Equal(t, []Count{{"ml", 2}, {"web3", 1}}, stats.TopFilters)
	assert.Equal(t, []Count{{"lbank", 1}}, stats.TopExpanded)
	assert.Equal(t, []Count{{"/", 2}, {"/blog", 1}}, stats.TopPaths)

	require.Len(t, stats.RecentVisitors, 3)
	assert.Equal(t, "aaa", stats.RecentVisitors[0].HashedIP)
	assert.Equal(t, now.Add(-time.Hour), stats.RecentVisitors[0].Timestamp)
	assert.Equal(t, "/blog", stats.RecentVisitors[1].Path)
}

func TestCleanupVisitors(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	s.now = fixedClock(now.AddDate(-2, 0, 0))
	require.NoError(t, s.RecordVisit(ctx, "old", "ua", "/"))
	s.now = fixedClock(now.AddDate(0, -1, 0))
	require.NoError(t, s.RecordVisit(ctx, "new", "ua", "/"))

	s.now = fixedClock(now)
	n, err := s.CleanupVisitors(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	visitors, err := s.RecentVisitors(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visitors, 1)
	assert.Equal(t, "new", visitors[0].HashedIP)
}

func TestStatsQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled expectations: %v", err)
		}
		db.Close()
	})

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM visitors`).WillReturnError(errors.New("disk I/O error"))

	_, err = New(db).Stats(context.Background())
	assert.ErrorContains(t, err, "disk I/O error")
}

func TestRecordVisitError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectExec("INSERT INTO visitors").
		WithArgs("hash", "ua", "/", sqlmock.AnyArg()).
		WillReturnError(errors.New("database is locked"))

	err = New(db).RecordVisit(context.Background(), "hash", "ua", "/")
	assert.ErrorContains(t, err, "record visit")
	assert.NoError(t, mock.ExpectationsWereMet())
}
