package api

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBOps is the subset of pgxpool.Pool methods the store uses.
// This allows us to inject a mock for testing.
type DBOps interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// Store issues parameterized queries for every entity family and raises
// typed ClientErrors on row-count and constraint violations. It also owns the
// like-count cache, so invalidation stays inside the same logical mutation.
type Store struct {
	db       DBOps
	cache    Cache
	likesTTL time.Duration
}

func NewStore(db DBOps, cache Cache, likesTTL time.Duration) *Store {
	return &Store{
		db:       db,
		cache:    cache,
		likesTTL: likesTTL,
	}
}

// newID builds the opaque prefixed identifiers used for every entity,
// e.g. "album-1b4d9e58-...".
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
