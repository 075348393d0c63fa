package postgrespublisher

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

// Adapter names accepted by Open.
const (
	AdapterPGX  = "pgx"
	AdapterSQL  = "sql"
	AdapterSQLX = "sqlx"
)

const (
	driverPostgres         = "postgres"
	defaultMaxOpenConns    = 4
	defaultMaxIdleConns    = 1
	defaultMaxConnLifetime = time.Hour
	defaultMaxConnIdleTime = 5 * time.Minute
)

// Open connects to dsn with the named adapter, checks the connection, and creates the events table.
// An empty adapter name selects pgx.
func Open(ctx context.Context, adapter, dsn string, options ...Option) (*Publisher, error) {
	p, err := connect(ctx, adapter, dsn, options...)
	if err != nil {
		return nil, err
	}

	if err = p.db.Ping(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to connect to events database: %w", err), p.Close())
	}

	if err = p.EnsureTable(ctx); err != nil {
		return nil, errors.Join(err, p.Close())
	}

	return p, nil
}

func connect(ctx context.Context, adapter, dsn string, options ...Option) (*Publisher, error) {
	switch adapter {
	case AdapterPGX, "":
		cfg, err := pgxpool.ParseConfig(dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to parse events database dsn: %w", err)
		}

		cfg.MaxConns = defaultMaxOpenConns
		cfg.MaxConnLifetime = defaultMaxConnLifetime
		cfg.MaxConnIdleTime = defaultMaxConnIdleTime

		pool, err := pgxpool.NewWithConfig(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create pgx pool: %w", err)
		}

		return NewPublisherFromPGXPool(pool, options...)

	case AdapterSQL:
		db, err := sql.Open(driverPostgres, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open events database: %w", err)
		}

		configurePool(db)

		return NewPublisherFromSQLDB(db, options...)

	case AdapterSQLX:
		db, err := sqlx.Open(driverPostgres, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open events database: %w", err)
		}

		configurePool(db.DB)

		return NewPublisherFromSQLX(db, options...)

	default:
		return nil, fmt.Errorf("%w: %q (supported: pgx, sql, sqlx)", ErrUnknownAdapter, adapter)
	}
}

func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(defaultMaxOpenConns)
	db.SetMaxIdleConns(defaultMaxIdleConns)
	db.SetConnMaxLifetime(defaultMaxConnLifetime)
	db.SetConnMaxIdleTime(defaultMaxConnIdleTime)
}
