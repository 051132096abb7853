package api

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// AccessRole tags how a user is allowed to touch a playlist.
type AccessRole int

const (
	RoleOwner AccessRole = iota
	RoleCollaborator
)

// VerifyPlaylistOwner is the strict check used for delete-playlist, managing
// collaborators and exports: only the owner passes, there is no collaborator
// fallback.
func (st *Store) VerifyPlaylistOwner(ctx context.Context, playlistID, userID string) error {
	var owner string
	err := st.db.QueryRow(ctx,
		`SELECT owner FROM playlists WHERE id = $1`, playlistID,
	).Scan(&owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return errNotFound("playlist not found")
	}
	if err != nil {
		return err
	}
	if owner != userID {
		return errForbidden("you are not authorized to access this resource")
	}
	return nil
}

// ResolveAccess allows the owner outright, and otherwise falls back to a
// collaborator lookup. When both checks fail the error from the owner check
// is the one surfaced: callers must see the owner-mismatch message even
// though the collaborator lookup ran last. A missing playlist short-circuits
// as not-found.
func (st *Store) ResolveAccess(ctx context.Context, playlistID, userID string) (AccessRole, error) {
	ownerErr := st.VerifyPlaylistOwner(ctx, playlistID, userID)
	if ownerErr == nil {
		return RoleOwner, nil
	}

	var ce *ClientError
	if !errors.As(ownerErr, &ce) || ce.Status != 403 {
		return 0, ownerErr
	}

	var collabID string
	err := st.db.QueryRow(ctx,
		`SELECT id FROM collaborations WHERE playlist_id = $1 AND user_id = $2`,
		playlistID, userID,
	).Scan(&collabID)
	if err == nil {
		return RoleCollaborator, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ownerErr
	}
	return 0, err
}
