package api

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestGetPlaylistSongsEmptyIsNotFound(t *testing.T) {
	st := newTestStore(&MockDB{}, nil)

	_, err := st.GetPlaylistSongs(context.Background(), "playlist-1")
	var ce *ClientError
	if !errors.As(err, &ce) || ce.Status != 404 {
		t.Fatalf("expected 404 for playlist with no songs, got %v", err)
	}
}

func TestListPlaylistsIncludesCollaborations(t *testing.T) {
	var gotSQL string
	var gotArgs []any
	db := &MockDB{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			gotSQL = sql
			gotArgs = args
			return &MockRows{Idx: -1, Data: [][]any{
				{"playlist-1", "Morning Mix", "alice"},
			}}, nil
		},
	}
	st := newTestStore(db, nil)

	playlists, err := st.ListPlaylists(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(playlists) != 1 || playlists[0].ID != "playlist-1" {
		t.Fatalf("unexpected playlists: %v", playlists)
	}
	if !strings.Contains(gotSQL, "collaborations") {
		t.Errorf("expected query to join collaborations, got: %s", gotSQL)
	}
	if len(gotArgs) != 1 || gotArgs[0] != "user-2" {
		t.Errorf("expected user id argument, got %v", gotArgs)
	}
}
