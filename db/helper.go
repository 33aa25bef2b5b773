package db

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// Helper wraps a SQL connection for the application. It is a thin
// connect/disconnect layer: nothing in the UI queries it directly, only
// the auth service's readiness hook touches it at startup.
type Helper struct {
	driver string
	dsn    string
	conn   *sql.DB
	log    *slog.Logger
}

// NewHelper prepares a helper for the given driver ("sqlite3" or
// "mysql") and data source name. No connection is made until Connect.
func NewHelper(driver, dsn string, log *slog.Logger) *Helper {
	return &Helper{driver: driver, dsn: dsn, log: log}
}

// Connect opens and pings the database. Failures are logged and
// reported as false; callers treat the database as optional.
func (h *Helper) Connect() bool {
	conn, err := sql.Open(h.driver, h.dsn)
	if err != nil {
		h.log.Error("error connecting to database", "driver", h.driver, "err", err)
		return false
	}
	if err := conn.Ping(); err != nil {
		h.log.Error("error connecting to database", "driver", h.driver, "err", err)
		conn.Close()
		return false
	}
	h.conn = conn
	return true
}

// Connected reports whether Connect has succeeded and Disconnect has
// not been called since.
func (h *Helper) Connected() bool {
	return h.conn != nil
}

// Disconnect closes the connection if one is open. Safe to call twice.
func (h *Helper) Disconnect() {
	if h.conn == nil {
		return
	}
	if err := h.conn.Close(); err != nil {
		h.log.Error("error closing database", "err", err)
	}
	h.conn = nil
}

// EnsureSchema creates the users table when missing. This is the only
// statement the application ever executes; the table stays empty until
// registration grows real persistence.
func (h *Helper) EnsureSchema() error {
	if h.conn == nil {
		return fmt.Errorf("not connected")
	}
	_, err := h.conn.Exec(
		`CREATE TABLE IF NOT EXISTS users (
            id INTEGER PRIMARY KEY,
            username VARCHAR(64) NOT NULL,
            password_hash BLOB,
            salt BLOB,
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        )`)
	if err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	return nil
}
