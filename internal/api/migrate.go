package api

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AutoMigrate bootstraps the schema. Cascading deletes live in the foreign
// keys, so removing an album takes its songs along and removing a playlist
// takes memberships, collaborations and activities with it.
func AutoMigrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS albums (
			id        TEXT PRIMARY KEY,
			name      TEXT NOT NULL,
			year      SMALLINT NOT NULL,
			cover_url TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS songs (
			id        TEXT PRIMARY KEY,
			title     TEXT NOT NULL,
			year      SMALLINT NOT NULL,
			genre     TEXT NOT NULL,
			performer TEXT NOT NULL,
			duration  SMALLINT,
			album_id  TEXT REFERENCES albums(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_songs_album ON songs(album_id)`,
		`CREATE TABLE IF NOT EXISTS users (
			id       TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			fullname TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS authentications (
			token TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS playlists (
			id    TEXT PRIMARY KEY,
			name  TEXT NOT NULL,
			owner TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS collaborations (
			id          TEXT PRIMARY KEY,
			playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
			user_id     TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			UNIQUE (playlist_id, user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS playlist_songs (
			id          TEXT PRIMARY KEY,
			playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
			song_id     TEXT NOT NULL REFERENCES songs(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_playlist_songs_playlist ON playlist_songs(playlist_id)`,
		`CREATE TABLE IF NOT EXISTS playlist_song_activities (
			id          TEXT PRIMARY KEY,
			playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
			song_id     TEXT NOT NULL REFERENCES songs(id) ON DELETE CASCADE,
			user_id     TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			action      TEXT NOT NULL,
			time        TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_playlist ON playlist_song_activities(playlist_id)`,
		`CREATE TABLE IF NOT EXISTS user_album_likes (
			id       TEXT PRIMARY KEY,
			user_id  TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			album_id TEXT NOT NULL REFERENCES albums(id) ON DELETE CASCADE,
			UNIQUE (user_id, album_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_likes_album ON user_album_likes(album_id)`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Printf("openmusic-api: migrate: %v", err)
			return err
		}
	}
	return nil
}
