package database

import (
	"errors"
	"fmt"
	"os"
	"strings"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// sqliteCantOpen is SQLITE_CANTOPEN, returned when a database file opened
// with mode=rw does not exist.
const sqliteCantOpen = 14

// SQLite stores the expense database in a single file.
//
// The file is opened with mode=rw so that a missing file is reported as
// an unknown database instead of silently creating an empty one.
type SQLite struct{}

func (SQLite) Name() string {
	return "sqlite"
}

func (SQLite) Dialector(t Target, schema bool) gorm.Dialector {
	if !schema {
		return sqlite.Open(":memory:")
	}

	dsn := fmt.Sprintf("file:%s?mode=rw&_pragma=foreign_keys(1)", t.File())
	if t.QueryTimeout > 0 {
		dsn = fmt.Sprintf("%s&_pragma=busy_timeout(%d)", dsn, t.QueryTimeout.Milliseconds())
	}

	return sqlite.Open(dsn)
}

// CreateSchema creates the database file by attaching it to the
// in-memory server connection.
func (SQLite) CreateSchema(db *gorm.DB, t Target) error {
	if t.DataDir != "" {
		if err := os.MkdirAll(t.DataDir, 0o750); err != nil {
			return err
		}
	}

	err := db.Exec("ATTACH DATABASE ? AS bootstrap", t.File()).Error
	if err != nil {
		return err
	}

	return db.Exec("DETACH DATABASE bootstrap").Error
}

func (SQLite) IsUnknownDatabase(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr *go_sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqliteCantOpen
	}

	return strings.Contains(err.Error(), "unable to open database file")
}

func (SQLite) Address(t Target) string {
	return "sqlite://" + t.File()
}
