package database

import (
	"path/filepath"
	"time"
)

const (
	// LocalHost is the symbolic name that triggers the loopback fallback.
	LocalHost = "localhost"

	// LoopbackHost is tried when connecting via LocalHost fails.
	LoopbackHost = "127.0.0.1"
)

// Target describes where the expense database lives.
//
// For PostgreSQL, Host, Port, User, Password and SSLMode address the server
// and Name is the database. For SQLite, the database is the file
// Name + ".db" in DataDir and the server fields are ignored.
type Target struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
	DataDir  string

	ConnectTimeout time.Duration // Bound for establishing a connection
	QueryTimeout   time.Duration // Bound for a single statement
}

// WithHost returns a copy of the target pointing at another host.
func (t Target) WithHost(host string) Target {
	t.Host = host
	return t
}

// File returns the path of the SQLite database file.
func (t Target) File() string {
	return filepath.Join(t.DataDir, t.Name+".db")
}
