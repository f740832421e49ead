// Package database obtains connections to the expense database.
//
// A Provider opens a fresh connection for every operation. On first use it
// creates the database and the expenses table if the database does not
// exist yet, and it retries once via the loopback address when "localhost"
// cannot be reached.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Provider hands out database handles for a fixed target.
type Provider struct {
	driver    Driver
	target    Target
	bootstrap *BootstrapState
}

// NewProvider returns a provider for the target. If state is nil, the
// provider tracks bootstrap on its own.
func NewProvider(driver Driver, target Target, state *BootstrapState) *Provider {
	if state == nil {
		state = NewBootstrapState()
	}

	return &Provider{
		driver:    driver,
		target:    target,
		bootstrap: state,
	}
}

// Address returns the printable address of the primary target.
func (p *Provider) Address() string {
	return p.driver.Address(p.target)
}

// Handle is an open connection scoped to a single operation.
// It must be released after use.
type Handle struct {
	DB      *gorm.DB
	Address string // Address the connection was established to

	queryTimeout time.Duration
}

// Query returns a session bound to ctx. Statements on the session are
// cancelled after the configured query timeout.
func (h *Handle) Query(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	if h.queryTimeout <= 0 {
		return h.DB.WithContext(ctx), func() {}
	}

	ctx, cancel := context.WithTimeout(ctx, h.queryTimeout)
	return h.DB.WithContext(ctx), cancel
}

// Release closes the connection.
func (h *Handle) Release() error {
	sqlDB, err := h.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Acquire opens a connection to the target database.
//
// If the database does not exist and has not been bootstrapped by this
// provider's state, the database and the expenses table are created and
// the connection is retried once. Otherwise, if the target host is
// "localhost", the connection is retried once via 127.0.0.1.
//
// All failures are returned as *ConnectError. Failures that led to a
// recovery attempt are kept in ConnectError.Suppressed.
func (p *Provider) Acquire(ctx context.Context) (*Handle, error) {
	// Read before connecting so that a concurrent bootstrap finishing
	// after the first attempt still leads to a retry here
	bootstrapped := p.bootstrap.Done()

	h, first := p.open(ctx, p.target, true)
	if first == nil {
		return h, nil
	}

	address := p.driver.Address(p.target)

	if p.driver.IsUnknownDatabase(first) && !bootstrapped {
		log.Info().Str("target", address).Msg("database does not exist, bootstrapping it")

		err := p.bootstrapSchema(ctx)
		if err != nil {
			return nil, newConnectError(address, err, first)
		}

		h, err := p.open(ctx, p.target, true)
		if err != nil {
			return nil, newConnectError(address, err, first)
		}

		return h, nil
	}

	if p.target.Host == LocalHost {
		fallback := p.target.WithHost(LoopbackHost)
		fallbackAddress := p.driver.Address(fallback)

		log.Warn().Err(first).Str("target", address).Str("fallback", fallbackAddress).Msg("connection failed, retrying via loopback address")

		h, err := p.open(ctx, fallback, true)
		if err != nil {
			return nil, newConnectError(fallbackAddress, err, first)
		}

		return h, nil
	}

	return nil, newConnectError(address, first)
}

// open connects to the target and verifies the connection. With schema
// set to false, the connection does not select the target database.
func (p *Provider) open(ctx context.Context, t Target, schema bool) (*Handle, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC, with the precision PostgreSQL stores
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC).Truncate(time.Microsecond)
		},
		Logger:               newQueryLogger(log.Logger, p.driver.Address(t), t.QueryTimeout/2),
		DisableAutomaticPing: true,
	}

	db, err := gorm.Open(p.driver.Dialector(t, schema), config)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Handles are used for one operation only, pooling happens nowhere
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	pingCtx := ctx
	if t.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, t.ConnectTimeout)
		defer cancel()
	}

	err = sqlDB.PingContext(pingCtx)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	return &Handle{
		DB:           db,
		Address:      p.driver.Address(t),
		queryTimeout: t.QueryTimeout,
	}, nil
}

// bootstrapSchema creates the target database and the expenses table.
// Both steps are idempotent so that redundant runs from other processes
// are harmless.
func (p *Provider) bootstrapSchema(ctx context.Context) error {
	return p.bootstrap.run(func() error {
		server, err := p.open(ctx, p.target, false)
		if err != nil {
			return fmt.Errorf("connecting to the database server: %w", err)
		}

		session, cancel := server.Query(ctx)
		err = p.driver.CreateSchema(session, p.target)
		cancel()
		server.Release()
		if err != nil {
			return fmt.Errorf("creating database %s: %w", p.target.Name, err)
		}

		schema, err := p.open(ctx, p.target, true)
		if err != nil {
			return fmt.Errorf("connecting to the new database: %w", err)
		}
		defer schema.Release()

		session, cancel = schema.Query(ctx)
		defer cancel()

		err = createTable(session)
		if err != nil {
			return fmt.Errorf("creating the expenses table: %w", err)
		}

		log.Info().Str("target", p.driver.Address(p.target)).Msg("database bootstrapped")
		return nil
	})
}

// createTable creates the expenses table unless it exists. A table created
// concurrently between the check and the creation is not an error.
func createTable(db *gorm.DB) error {
	migrator := db.Migrator()
	if migrator.HasTable(&models.Expense{}) {
		return nil
	}

	err := migrator.CreateTable(&models.Expense{})
	if err != nil && !migrator.HasTable(&models.Expense{}) {
		return err
	}

	return nil
}
