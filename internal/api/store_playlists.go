package api

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

func (st *Store) AddPlaylist(ctx context.Context, name, owner string) (string, error) {
	id := newID("playlist")

	_, err := st.db.Exec(ctx,
		`INSERT INTO playlists (id, name, owner) VALUES ($1, $2, $3)`,
		id, name, owner,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListPlaylists returns the playlists the user owns plus the ones they
// collaborate on, each with the owner's username.
func (st *Store) ListPlaylists(ctx context.Context, userID string) ([]Playlist, error) {
	rows, err := st.db.Query(ctx, `
		SELECT p.id, p.name, u.username
		FROM playlists p
		LEFT JOIN collaborations c ON c.playlist_id = p.id
		LEFT JOIN users u ON u.id = p.owner
		WHERE p.owner = $1 OR c.user_id = $1
		GROUP BY p.id, u.username
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	playlists := []Playlist{}
	for rows.Next() {
		var pl Playlist
		if err := rows.Scan(&pl.ID, &pl.Name, &pl.Username); err != nil {
			return nil, err
		}
		playlists = append(playlists, pl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return playlists, nil
}

func (st *Store) GetPlaylistByID(ctx context.Context, id string) (Playlist, error) {
	var pl Playlist
	err := st.db.QueryRow(ctx, `
		SELECT p.id, p.name, u.username
		FROM playlists p
		LEFT JOIN users u ON u.id = p.owner
		WHERE p.id = $1
	`, id).Scan(&pl.ID, &pl.Name, &pl.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return Playlist{}, errNotFound("playlist not found")
	}
	if err != nil {
		return Playlist{}, err
	}
	return pl, nil
}

func (st *Store) DeletePlaylist(ctx context.Context, id string) error {
	tag, err := st.db.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("failed to delete playlist: id not found")
	}
	return nil
}

func (st *Store) GetPlaylistSongs(ctx context.Context, playlistID string) ([]SongRef, error) {
	rows, err := st.db.Query(ctx, `
		SELECT s.id, s.title, s.performer
		FROM songs s
		LEFT JOIN playlist_songs ps ON ps.song_id = s.id
		WHERE ps.playlist_id = $1
	`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	songs, err := scanSongRefs(rows)
	if err != nil {
		return nil, err
	}
	if len(songs) == 0 {
		return nil, errNotFound("no songs found in playlist")
	}
	return songs, nil
}

// AddPlaylistSong inserts the membership row and its "add" activity entry in
// one transaction, so the log can never miss a successful membership change.
func (st *Store) AddPlaylistSong(ctx context.Context, playlistID, songID, userID string) error {
	tx, err := st.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`INSERT INTO playlist_songs (id, playlist_id, song_id) VALUES ($1, $2, $3)`,
		newID("ps"), playlistID, songID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errInvariant("failed to add song to playlist")
	}

	if err := recordActivityTx(ctx, tx, playlistID, songID, userID, activityAdd); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// RemovePlaylistSong deletes the membership row and records the "delete"
// activity entry in one transaction.
func (st *Store) RemovePlaylistSong(ctx context.Context, playlistID, songID, userID string) error {
	tx, err := st.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`DELETE FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2`,
		playlistID, songID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("song not found in playlist")
	}

	if err := recordActivityTx(ctx, tx, playlistID, songID, userID, activityDelete); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// recordActivityTx appends one immutable log row; the timestamp is assigned
// by the database. There is no update or delete path for activities.
func recordActivityTx(ctx context.Context, tx pgx.Tx, playlistID, songID, userID, action string) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO playlist_song_activities (id, playlist_id, song_id, user_id, action)
		 VALUES ($1, $2, $3, $4, $5)`,
		newID("activity"), playlistID, songID, userID, action,
	)
	return err
}

func (st *Store) ListPlaylistActivities(ctx context.Context, playlistID string) ([]Activity, error) {
	rows, err := st.db.Query(ctx, `
		SELECT u.username, s.title, pa.action, pa.time
		FROM playlist_song_activities pa
		LEFT JOIN users u ON u.id = pa.user_id
		LEFT JOIN songs s ON s.id = pa.song_id
		WHERE pa.playlist_id = $1
		ORDER BY pa.time ASC
	`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []Activity{}
	for rows.Next() {
		var ac Activity
		if err := rows.Scan(&ac.Username, &ac.Title, &ac.Action, &ac.Time); err != nil {
			return nil, err
		}
		activities = append(activities, ac)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		return nil, errNotFound("playlist activities not found")
	}
	return activities, nil
}
