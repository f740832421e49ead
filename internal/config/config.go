// Package config loads the settings of the backend from flags, environment
// variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/expense-tracker/backend/internal/database"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/rs/zerolog"
)

// EnvVarPrefix is prepended to the upper case flag name to get the
// environment variable, e.g. EXPENSE_DB_HOST for --db-host.
const EnvVarPrefix = "EXPENSE"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var (
	ErrUnknownDriver    = errors.New("unknown database driver, must be one of postgres, sqlite")
	ErrUnknownLogFormat = errors.New("unknown log format, must be one of json, human")
	ErrInvalidTimeout   = errors.New("timeouts must be positive")
	ErrNoDatabaseName   = errors.New("the database name must not be empty")
	ErrInvalidPort      = errors.New("the database port must be between 1 and 65535")
	ErrInvalidAPIURL    = errors.New("the API URL must be an absolute URL")
)

type Config struct {
	Listen           string
	APIURL           *url.URL
	LogFormat        string
	LogLevel         zerolog.Level
	CORSAllowOrigins []string // Glob patterns of allowed origins. CORS is disabled if empty.
	EnablePprof      bool
	Driver           string
	Database         database.Target
}

// Load reads the configuration. Values from args take precedence over
// environment variables, which take precedence over the .env file in the
// working directory.
//
// If args request the help text, the returned error wraps ff.ErrHelp.
func Load(args []string) (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("reading .env file: %w", err)
	}

	flags := ff.NewFlagSet("expense-tracker")
	var (
		listen         = flags.StringLong("listen", ":8080", "address the HTTP server listens on")
		apiURL         = flags.StringLong("api-url", "http://localhost:8080", "public URL of the API, used for links")
		logFormat      = flags.StringLong("log-format", "json", "log format, 'json' or 'human'")
		logLevel       = flags.StringLong("log-level", "info", "minimum level of log messages")
		corsOrigins    = flags.StringLong("cors-allow-origins", "", "space separated glob patterns of origins allowed for CORS")
		enablePprof    = flags.BoolLong("enable-pprof", "serve profiling data on /debug/pprof")
		driver         = flags.StringLong("db-driver", DriverPostgres, "database driver, 'postgres' or 'sqlite'")
		host           = flags.StringLong("db-host", database.LocalHost, "database host")
		port           = flags.IntLong("db-port", 5432, "database port")
		name           = flags.StringLong("db-name", "expense_tracker", "database name")
		user           = flags.StringLong("db-user", "", "database user")
		password       = flags.StringLong("db-password", "", "database password")
		sslMode        = flags.StringLong("db-sslmode", "disable", "PostgreSQL sslmode")
		dataDir        = flags.StringLong("db-data-dir", "data", "directory for the database file, sqlite only")
		connectTimeout = flags.DurationLong("db-connect-timeout", 5*time.Second, "timeout for establishing a connection")
		queryTimeout   = flags.DurationLong("db-query-timeout", 5*time.Second, "timeout for a single statement")
	)

	err = ff.Parse(flags, args, ff.WithEnvVarPrefix(EnvVarPrefix))
	if err != nil {
		return Config{}, fmt.Errorf("%s\n%w", ffhelp.Flags(flags), err)
	}

	level, err := zerolog.ParseLevel(strings.ToLower(*logLevel))
	if err != nil {
		return Config{}, fmt.Errorf("parsing log level: %w", err)
	}

	u, err := url.Parse(strings.TrimSuffix(*apiURL, "/"))
	if err != nil {
		return Config{}, fmt.Errorf("parsing API URL: %w", err)
	}

	c := Config{
		Listen:           *listen,
		APIURL:           u,
		LogFormat:        *logFormat,
		LogLevel:         level,
		CORSAllowOrigins: strings.Fields(*corsOrigins),
		EnablePprof:      *enablePprof,
		Driver:           *driver,
		Database: database.Target{
			Host:           *host,
			Port:           *port,
			Name:           *name,
			User:           *user,
			Password:       *password,
			SSLMode:        *sslMode,
			DataDir:        *dataDir,
			ConnectTimeout: *connectTimeout,
			QueryTimeout:   *queryTimeout,
		},
	}

	return c, c.Validate()
}

// Validate checks the configuration for values that cannot work.
func (c Config) Validate() error {
	if c.Driver != DriverPostgres && c.Driver != DriverSQLite {
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Driver)
	}

	if c.LogFormat != "json" && c.LogFormat != "human" {
		return fmt.Errorf("%w: %q", ErrUnknownLogFormat, c.LogFormat)
	}

	if c.APIURL == nil || !c.APIURL.IsAbs() {
		return ErrInvalidAPIURL
	}

	if strings.TrimSpace(c.Database.Name) == "" {
		return ErrNoDatabaseName
	}

	if c.Driver == DriverPostgres && (c.Database.Port < 1 || c.Database.Port > 65535) {
		return fmt.Errorf("%w, got %d", ErrInvalidPort, c.Database.Port)
	}

	if c.Database.ConnectTimeout <= 0 || c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("%w, got connect timeout %s and query timeout %s", ErrInvalidTimeout, c.Database.ConnectTimeout, c.Database.QueryTimeout)
	}

	return nil
}

// DatabaseDriver returns the driver for the configured database.
func (c Config) DatabaseDriver() database.Driver {
	if c.Driver == DriverSQLite {
		return database.SQLite{}
	}

	return database.Postgres{}
}
