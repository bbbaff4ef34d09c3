// Package testutil holds helpers shared by package tests.
package testutil

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdtree/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/store"
	"github.com/footprint-tools/cmdtree/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	_, err = migrations.Up(db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// NewTestStore wraps NewTestDB in a store.Store.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// SeedDispatches records one handled, successful dispatch per label, one
// second apart starting at start.
func SeedDispatches(t *testing.T, s *store.Store, start time.Time, labels ...string) {
	t.Helper()

	for i, label := range labels {
		err := s.Record(dispatchers.DispatchRecord{
			ActorID:   "seed",
			ActorKind: dispatchers.ActorInteractive,
			Label:     label,
			Handled:   true,
			Success:   true,
			At:        start.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err, "failed to seed dispatch %q", label)
	}
}
