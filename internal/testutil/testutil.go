// Package testutil provides shared test helpers.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/araselthenilo/latihan-backend-uts/internal/infrastructure/db/sqlstore"
	"github.com/araselthenilo/latihan-backend-uts/internal/pkg/config"
)

// TestDB opens a migrated SQLite database in a temp directory. It is closed
// when the test ends.
func TestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlstore.Connect(context.Background(), config.DBConfig{
		Driver:       config.DriverSQLite,
		Path:         filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 1,
	})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := sqlstore.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}
