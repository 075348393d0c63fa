package adapters

import "context"

// DBAdapter defines the database operations the event publisher needs.
type DBAdapter interface {
	Exec(ctx context.Context, query string) (DBResult, error)
	Ping(ctx context.Context) error
	Close() error
}

// DBResult defines the interface for execution results.
type DBResult interface {
	RowsAffected() (int64, error)
}
