package api

import "context"

// AddCollaboration grants a non-owner write access to a playlist. The
// (playlist, user) pair is unique; a duplicate grant is rejected.
func (st *Store) AddCollaboration(ctx context.Context, playlistID, userID string) (string, error) {
	id := newID("collab")

	_, err := st.db.Exec(ctx,
		`INSERT INTO collaborations (id, playlist_id, user_id) VALUES ($1, $2, $3)`,
		id, playlistID, userID,
	)
	if isUniqueViolation(err) {
		return "", errInvariant("user is already a collaborator on this playlist")
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (st *Store) DeleteCollaboration(ctx context.Context, playlistID, userID string) error {
	tag, err := st.db.Exec(ctx,
		`DELETE FROM collaborations WHERE playlist_id = $1 AND user_id = $2`,
		playlistID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errInvariant("failed to delete collaboration")
	}
	return nil
}
