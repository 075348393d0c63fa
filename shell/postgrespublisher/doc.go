// Package postgrespublisher appends published domain events to a PostgreSQL table.
//
// The table is an outbound audit log. The library never reads it back, so its state still lives
// only in process memory. The publisher runs on pgxpool.Pool, sql.DB (lib/pq), or sqlx.DB.
package postgrespublisher
