//go:build unit || e2e

package dbtest

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBLike is what fixtures need; *pgxpool.Pool and pgx.Tx both satisfy it.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NopDB satisfies sqlc.DBTX for unit tests whose repositories are mocked and
// only pass the handle through. Any real call returns zero values.
type NopDB struct{}

func (NopDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (NopDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (NopDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}
