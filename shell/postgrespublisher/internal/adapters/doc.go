// Package adapters lets the postgres event publisher run on pgxpool.Pool, sql.DB, or sqlx.DB
// through one DBAdapter interface.
package adapters
