package api

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
)

func likesCacheKey(albumID string) string {
	return "likes:" + albumID
}

func (st *Store) AddAlbum(ctx context.Context, name string, year int) (string, error) {
	id := newID("album")

	_, err := st.db.Exec(ctx,
		`INSERT INTO albums (id, name, year) VALUES ($1, $2, $3)`,
		id, name, year,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (st *Store) GetAlbumByID(ctx context.Context, id string) (Album, error) {
	var al Album
	err := st.db.QueryRow(ctx,
		`SELECT id, name, year, cover_url FROM albums WHERE id = $1`,
		id,
	).Scan(&al.ID, &al.Name, &al.Year, &al.CoverURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return Album{}, errNotFound("album not found")
	}
	if err != nil {
		return Album{}, err
	}
	return al, nil
}

func (st *Store) UpdateAlbum(ctx context.Context, id, name string, year int) error {
	tag, err := st.db.Exec(ctx,
		`UPDATE albums SET name = $1, year = $2 WHERE id = $3`,
		name, year, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("failed to update album: id not found")
	}
	return nil
}

// DeleteAlbum removes the album (songs and likes go with it via cascade) and
// drops the cached like count as part of the same logical operation.
func (st *Store) DeleteAlbum(ctx context.Context, id string) error {
	tag, err := st.db.Exec(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("failed to delete album: id not found")
	}
	return st.cache.Del(ctx, likesCacheKey(id))
}

func (st *Store) SetAlbumCover(ctx context.Context, id, coverURL string) error {
	tag, err := st.db.Exec(ctx,
		`UPDATE albums SET cover_url = $1 WHERE id = $2`,
		coverURL, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("failed to update album cover: id not found")
	}
	return nil
}

// GetAlbumLikes serves the like count cache-aside: a cache hit is returned
// as-is (source "cache"), any cache error falls through to a recount from the
// database, which repopulates the key with the configured TTL.
func (st *Store) GetAlbumLikes(ctx context.Context, albumID string) (int, string, error) {
	key := likesCacheKey(albumID)

	if raw, err := st.cache.Get(ctx, key); err == nil {
		likes, convErr := strconv.Atoi(raw)
		if convErr == nil {
			return likes, "cache", nil
		}
		// Unparseable value: fall through and recompute.
	}

	var exists bool
	err := st.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM albums WHERE id = $1)`,
		albumID,
	).Scan(&exists)
	if err != nil {
		return 0, "", err
	}
	if !exists {
		return 0, "", errNotFound("album not found")
	}

	var likes int
	err = st.db.QueryRow(ctx,
		`SELECT COUNT(1) FROM user_album_likes WHERE album_id = $1`,
		albumID,
	).Scan(&likes)
	if err != nil {
		return 0, "", err
	}

	if err := st.cache.Set(ctx, key, strconv.Itoa(likes), st.likesTTL); err != nil {
		return 0, "", err
	}
	return likes, "database", nil
}

// LikeAlbum records a like. Uniqueness of the (user, album) pair is enforced
// by the unique constraint; a conflict is translated to the invariant error
// instead of being pre-checked, so concurrent likes cannot slip through.
func (st *Store) LikeAlbum(ctx context.Context, userID, albumID string) error {
	if _, err := st.GetAlbumByID(ctx, albumID); err != nil {
		return err
	}

	_, err := st.db.Exec(ctx,
		`INSERT INTO user_album_likes (id, user_id, album_id) VALUES ($1, $2, $3)`,
		newID("like"), userID, albumID,
	)
	if isUniqueViolation(err) {
		return errInvariant("you have already liked this album")
	}
	if err != nil {
		return err
	}
	return st.cache.Del(ctx, likesCacheKey(albumID))
}

func (st *Store) UnlikeAlbum(ctx context.Context, userID, albumID string) error {
	tag, err := st.db.Exec(ctx,
		`DELETE FROM user_album_likes WHERE user_id = $1 AND album_id = $2`,
		userID, albumID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("failed to delete like: like not found")
	}
	return st.cache.Del(ctx, likesCacheKey(albumID))
}
