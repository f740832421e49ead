package database

import (
	"gorm.io/gorm"
)

// Driver adapts the provider to one database server type.
type Driver interface {
	// Name is the name of the driver as used in the configuration.
	Name() string

	// Dialector returns the gorm dialector for the target. If schema is
	// false, the connection must not select the target database so that
	// it can be used to create it.
	Dialector(t Target, schema bool) gorm.Dialector

	// CreateSchema creates the target database on a server level
	// connection. It must succeed if the database already exists.
	CreateSchema(db *gorm.DB, t Target) error

	// IsUnknownDatabase reports whether err was caused by the target
	// database not existing.
	IsUnknownDatabase(err error) bool

	// Address returns a printable address for the target without credentials.
	Address(t Target) string
}
