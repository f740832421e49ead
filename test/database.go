package test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/expense-tracker/backend/internal/database"
	"github.com/google/uuid"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// SQLiteTarget returns a target for a SQLite database that does not exist yet.
// The data directory is removed after the test.
func SQLiteTarget(t *testing.T) database.Target {
	return database.Target{
		Name:           "expense_tracker",
		DataDir:        TmpFile(t),
		ConnectTimeout: 5 * time.Second,
		QueryTimeout:   5 * time.Second,
	}
}

// Provider returns a provider for a fresh SQLite database in a temporary
// directory. The database is created on first use.
func Provider(t *testing.T) *database.Provider {
	return database.NewProvider(database.SQLite{}, SQLiteTarget(t), database.NewBootstrapState())
}
