package api

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// Refresh tokens are persisted verbatim so they can be revoked; a token that
// is no longer stored is treated as invalid regardless of its signature.

func (st *Store) AddRefreshToken(ctx context.Context, token string) error {
	_, err := st.db.Exec(ctx,
		`INSERT INTO authentications (token) VALUES ($1)`, token,
	)
	return err
}

func (st *Store) VerifyRefreshToken(ctx context.Context, token string) error {
	var stored string
	err := st.db.QueryRow(ctx,
		`SELECT token FROM authentications WHERE token = $1`, token,
	).Scan(&stored)
	if errors.Is(err, pgx.ErrNoRows) {
		return errInvariant("refresh token is not valid")
	}
	return err
}

func (st *Store) DeleteRefreshToken(ctx context.Context, token string) error {
	_, err := st.db.Exec(ctx,
		`DELETE FROM authentications WHERE token = $1`, token,
	)
	return err
}
