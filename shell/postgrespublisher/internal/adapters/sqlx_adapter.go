package adapters

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// SQLXAdapter implements DBAdapter for sqlx.DB
type SQLXAdapter struct {
	db *sqlx.DB
}

// NewSQLXAdapter creates a new SQLX adapter
func NewSQLXAdapter(db *sqlx.DB) *SQLXAdapter {
	return &SQLXAdapter{db: db}
}

// Exec executes a statement using the sqlx.DB.
func (s *SQLXAdapter) Exec(ctx context.Context, query string) (DBResult, error) {
	return s.db.ExecContext(ctx, query)
}

// Ping checks the connection.
func (s *SQLXAdapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database handle.
func (s *SQLXAdapter) Close() error {
	return s.db.Close()
}
