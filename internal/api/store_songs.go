package api

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

func (st *Store) AddSong(ctx context.Context, song Song) (string, error) {
	id := newID("song")

	_, err := st.db.Exec(ctx,
		`INSERT INTO songs (id, title, year, genre, performer, duration, album_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, song.Title, song.Year, song.Genre, song.Performer, song.Duration, song.AlbumID,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListSongs filters by case-insensitive substring on title and performer;
// both filters are optional and AND-combined.
func (st *Store) ListSongs(ctx context.Context, title, performer string) ([]SongRef, error) {
	conditions := []string{}
	values := []any{}

	if title != "" {
		values = append(values, "%"+strings.ToLower(title)+"%")
		conditions = append(conditions, fmt.Sprintf("LOWER(title) LIKE $%d", len(values)))
	}
	if performer != "" {
		values = append(values, "%"+strings.ToLower(performer)+"%")
		conditions = append(conditions, fmt.Sprintf("LOWER(performer) LIKE $%d", len(values)))
	}

	query := `SELECT id, title, performer FROM songs`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := st.db.Query(ctx, query, values...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSongRefs(rows)
}

func (st *Store) ListSongsByAlbum(ctx context.Context, albumID string) ([]SongRef, error) {
	rows, err := st.db.Query(ctx,
		`SELECT id, title, performer FROM songs WHERE album_id = $1`,
		albumID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSongRefs(rows)
}

func (st *Store) GetSongByID(ctx context.Context, id string) (Song, error) {
	var sg Song
	err := st.db.QueryRow(ctx,
		`SELECT id, title, year, genre, performer, duration, album_id FROM songs WHERE id = $1`,
		id,
	).Scan(&sg.ID, &sg.Title, &sg.Year, &sg.Genre, &sg.Performer, &sg.Duration, &sg.AlbumID)
	if errors.Is(err, pgx.ErrNoRows) {
		return Song{}, errNotFound("song not found")
	}
	if err != nil {
		return Song{}, err
	}
	return sg, nil
}

func (st *Store) UpdateSong(ctx context.Context, id string, song Song) error {
	tag, err := st.db.Exec(ctx,
		`UPDATE songs SET title = $1, year = $2, genre = $3, performer = $4, duration = $5, album_id = $6
		 WHERE id = $7`,
		song.Title, song.Year, song.Genre, song.Performer, song.Duration, song.AlbumID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("failed to update song: id not found")
	}
	return nil
}

func (st *Store) DeleteSong(ctx context.Context, id string) error {
	tag, err := st.db.Exec(ctx, `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("failed to delete song: id not found")
	}
	return nil
}

func (st *Store) verifySongExists(ctx context.Context, id string) error {
	var found string
	err := st.db.QueryRow(ctx, `SELECT id FROM songs WHERE id = $1`, id).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return errNotFound("song not found")
	}
	return err
}

func scanSongRefs(rows pgx.Rows) ([]SongRef, error) {
	songs := []SongRef{}
	for rows.Next() {
		var ref SongRef
		if err := rows.Scan(&ref.ID, &ref.Title, &ref.Performer); err != nil {
			return nil, err
		}
		songs = append(songs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return songs, nil
}
