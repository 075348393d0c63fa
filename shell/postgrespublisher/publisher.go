package postgrespublisher

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/library-lending-go/shell"
	"github.com/AntonStoeckl/library-lending-go/shell/postgrespublisher/internal/adapters"
)

const (
	defaultTableName         = "library_events"
	dialectPostgres          = "postgres"
	colEventType             = "event_type"
	colOccurredAt            = "occurred_at"
	colIsError               = "is_error"
	colPayload               = "payload"
	colMetadata              = "metadata"
	castText                 = "?::text"
	castTimestamp            = "?::timestamp with time zone"
	castBoolean              = "?::boolean"
	castJsonb                = "?::jsonb"
	logMsgBuildInsertFailed  = "failed to build insert query"
	logMsgDBExecFailed       = "database execution failed during event publish"
	logMsgEventPublished     = "event published to postgres"
	logAttrError             = "error"
	logAttrEventType         = "event_type"
	logAttrQuery             = "query"
	logAttrDurationMS        = "duration_ms"
	createTableStatementTmpl = `CREATE TABLE IF NOT EXISTS %s (
	sequence_number BIGSERIAL PRIMARY KEY,
	event_type TEXT NOT NULL,
	occurred_at TIMESTAMP WITH TIME ZONE NOT NULL,
	is_error BOOLEAN NOT NULL DEFAULT FALSE,
	payload JSONB NOT NULL,
	metadata JSONB NOT NULL
)`
)

// ErrNilDatabaseConnection is returned when a constructor receives a nil connection.
var ErrNilDatabaseConnection = errors.New("database connection must not be nil")

// ErrEmptyTableName is returned when WithTableName receives an empty name.
var ErrEmptyTableName = errors.New("events table name must not be empty")

// ErrBuildingQueryFailed is returned when the insert statement cannot be rendered.
var ErrBuildingQueryFailed = errors.New("building the insert query failed")

// ErrUnknownAdapter is returned by Open for an adapter name other than pgx, sql, or sqlx.
var ErrUnknownAdapter = errors.New("unknown database adapter")

// Publisher implements shell.EventPublisher by inserting one row per event.
type Publisher struct {
	db        adapters.DBAdapter
	tableName string
	logger    shell.Logger
}

// Option defines a functional option for configuring a Publisher.
type Option func(*Publisher) error

// WithTableName sets the events table.
func WithTableName(tableName string) Option {
	return func(p *Publisher) error {
		if tableName == "" {
			return ErrEmptyTableName
		}

		p.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger. Inserted statements are logged at debug level, failures at error level.
func WithLogger(logger shell.Logger) Option {
	return func(p *Publisher) error {
		p.logger = logger
		return nil
	}
}

// NewPublisherFromPGXPool creates a Publisher on a pgx pool.
func NewPublisherFromPGXPool(pool *pgxpool.Pool, options ...Option) (*Publisher, error) {
	if pool == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newPublisher(adapters.NewPGXAdapter(pool), options...)
}

// NewPublisherFromSQLDB creates a Publisher on a database/sql handle.
func NewPublisherFromSQLDB(db *sql.DB, options ...Option) (*Publisher, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newPublisher(adapters.NewSQLAdapter(db), options...)
}

// NewPublisherFromSQLX creates a Publisher on an sqlx handle.
func NewPublisherFromSQLX(db *sqlx.DB, options ...Option) (*Publisher, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newPublisher(adapters.NewSQLXAdapter(db), options...)
}

func newPublisher(db adapters.DBAdapter, options ...Option) (*Publisher, error) {
	p := &Publisher{
		db:        db,
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// EnsureTable creates the events table when it does not exist yet.
func (p *Publisher) EnsureTable(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, fmt.Sprintf(createTableStatementTmpl, pgx.Identifier{p.tableName}.Sanitize())); err != nil {
		return fmt.Errorf("failed to create events table: %w", err)
	}

	return nil
}

// Publish implements shell.EventPublisher.
func (p *Publisher) Publish(ctx context.Context, envelope shell.EventEnvelope) error {
	serialized, err := shell.SerializedEventFrom(envelope)
	if err != nil {
		return errors.Join(shell.ErrPublishingEventFailed, err)
	}

	query, err := p.buildInsertQuery(serialized)
	if err != nil {
		return errors.Join(shell.ErrPublishingEventFailed, err)
	}

	start := time.Now()

	if _, err = p.db.Exec(ctx, query); err != nil {
		p.logError(logMsgDBExecFailed, logAttrError, err.Error(), logAttrEventType, serialized.EventType)
		return errors.Join(shell.ErrPublishingEventFailed, err)
	}

	p.logDebug(logMsgEventPublished,
		logAttrEventType, serialized.EventType,
		logAttrQuery, query,
		logAttrDurationMS, time.Since(start).Milliseconds(),
	)

	return nil
}

// Close releases the underlying connection.
func (p *Publisher) Close() error {
	return p.db.Close()
}

func (p *Publisher) buildInsertQuery(event shell.SerializedEvent) (string, error) {
	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(p.tableName).
		Cols(colEventType, colOccurredAt, colIsError, colPayload, colMetadata).
		Vals(goqu.Vals{
			goqu.L(castText, event.EventType),
			goqu.L(castTimestamp, event.OccurredAt),
			goqu.L(castBoolean, event.IsError),
			goqu.L(castJsonb, string(event.Payload)),
			goqu.L(castJsonb, string(event.Metadata)),
		})

	query, _, err := insertStmt.ToSQL()
	if err != nil {
		p.logError(logMsgBuildInsertFailed, logAttrError, err.Error(), logAttrEventType, event.EventType)
		return "", errors.Join(ErrBuildingQueryFailed, err)
	}

	return query, nil
}

func (p *Publisher) logDebug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *Publisher) logError(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Error(msg, args...)
	}
}
