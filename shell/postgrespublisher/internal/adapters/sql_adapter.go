package adapters

import (
	"context"
	"database/sql"
)

// SQLAdapter implements DBAdapter for sql.DB
type SQLAdapter struct {
	db *sql.DB
}

// NewSQLAdapter creates a new SQL adapter
func NewSQLAdapter(db *sql.DB) *SQLAdapter {
	return &SQLAdapter{db: db}
}

func (s *SQLAdapter) Exec(ctx context.Context, query string) (DBResult, error) {
	return s.db.ExecContext(ctx, query)
}

func (s *SQLAdapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLAdapter) Close() error {
	return s.db.Close()
}
