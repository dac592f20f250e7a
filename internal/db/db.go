package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // The database driver
)

// Store is the handle to the persistent store. It is constructed once in
// main and passed explicitly to everything that needs it; there is no
// package-level connection.
type Store struct {
	db *sqlx.DB
}

// New connects to Postgres and verifies the connection.
func New(databaseURL string) (*Store, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is not set")
	}

	conn, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: conn}, nil
}

// NewWithDB wraps an existing connection. Used by tests with sqlmock.
func NewWithDB(conn *sqlx.DB) *Store {
	return &Store{db: conn}
}

// Ping checks store liveness for the healthcheck endpoint.
func (s *Store) Ping() error {
	return s.db.Ping()
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
