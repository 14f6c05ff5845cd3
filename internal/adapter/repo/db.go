// Package repo implements the domain repository interfaces on PostgreSQL.
// All SQL lives in internal/sqlinline and runs through the marker-checking
// executor, so queries stay greppable and logged by marker.
package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the query surface repos need. Both *pgxpool.Pool and the logging
// SQLRunner satisfy it.
type DB interface {
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
}
