package database

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PostgreSQL error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgInvalidCatalogName = "3D000"
	pgDuplicateDatabase  = "42P04"
)

// maintenanceDatabase is used for server level connections.
const maintenanceDatabase = "postgres"

// Postgres connects to a PostgreSQL server through lib/pq.
type Postgres struct{}

func (Postgres) Name() string {
	return "postgres"
}

func (p Postgres) Dialector(t Target, schema bool) gorm.Dialector {
	name := maintenanceDatabase
	if schema {
		name = t.Name
	}

	return postgres.New(postgres.Config{
		DriverName: "postgres",
		DSN:        p.dsn(t, name),
	})
}

// dsn builds a lib/pq connection URL. Parameters lib/pq does not know,
// like statement_timeout, are sent to the server as run-time parameters.
func (Postgres) dsn(t Target, name string) string {
	query := url.Values{}
	sslMode := t.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	query.Set("sslmode", sslMode)

	if t.ConnectTimeout > 0 {
		// lib/pq only supports whole seconds, with a minimum of 2
		seconds := int(t.ConnectTimeout.Seconds())
		query.Set("connect_timeout", strconv.Itoa(max(seconds, 2)))
	}

	if t.QueryTimeout > 0 {
		query.Set("statement_timeout", strconv.FormatInt(t.QueryTimeout.Milliseconds(), 10))
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(t.User, t.Password),
		Host:     net.JoinHostPort(t.Host, strconv.Itoa(t.Port)),
		Path:     "/" + name,
		RawQuery: query.Encode(),
	}

	return u.String()
}

func (Postgres) CreateSchema(db *gorm.DB, t Target) error {
	var exists bool
	err := db.Raw("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = ?)", t.Name).Scan(&exists).Error
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	// CREATE DATABASE does not support IF NOT EXISTS, a concurrent
	// creation shows up as duplicate_database instead
	err = db.Exec(fmt.Sprintf("CREATE DATABASE %s", pq.QuoteIdentifier(t.Name))).Error
	return ignoreDuplicateDatabase(err)
}

// ignoreDuplicateDatabase drops the error of a CREATE DATABASE that lost
// the race against another process.
func ignoreDuplicateDatabase(err error) error {
	if pqCode(err) == pgDuplicateDatabase {
		return nil
	}

	return err
}

func (Postgres) IsUnknownDatabase(err error) bool {
	if err == nil {
		return false
	}

	if pqCode(err) == pgInvalidCatalogName {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database") && strings.Contains(msg, "does not exist")
}

func (Postgres) Address(t Target) string {
	return fmt.Sprintf("postgres://%s/%s", net.JoinHostPort(t.Host, strconv.Itoa(t.Port)), t.Name)
}

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}
