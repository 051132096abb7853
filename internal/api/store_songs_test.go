package api

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestListSongsFilterBuilding(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		performer string
		wantSQL   []string
		wantArgs  []any
	}{
		{
			name:     "No Filters",
			wantSQL:  []string{"SELECT id, title, performer FROM songs"},
			wantArgs: []any{},
		},
		{
			name:     "Title Only",
			title:    "Life",
			wantSQL:  []string{"LOWER(title) LIKE $1"},
			wantArgs: []any{"%life%"},
		},
		{
			name:      "Both Filters",
			title:     "Life",
			performer: "Coldplay",
			wantSQL:   []string{"LOWER(title) LIKE $1", "AND", "LOWER(performer) LIKE $2"},
			wantArgs:  []any{"%life%", "%coldplay%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotSQL string
			var gotArgs []any
			db := &MockDB{
				QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
					gotSQL = sql
					gotArgs = args
					return &MockRows{Idx: -1}, nil
				},
			}
			st := newTestStore(db, nil)

			if _, err := st.ListSongs(context.Background(), tt.title, tt.performer); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for _, frag := range tt.wantSQL {
				if !strings.Contains(gotSQL, frag) {
					t.Errorf("expected query to contain %q, got: %s", frag, gotSQL)
				}
			}
			if len(gotArgs) != len(tt.wantArgs) {
				t.Fatalf("expected args %v, got %v", tt.wantArgs, gotArgs)
			}
			for i := range tt.wantArgs {
				if gotArgs[i] != tt.wantArgs[i] {
					t.Errorf("arg %d: expected %v, got %v", i, tt.wantArgs[i], gotArgs[i])
				}
			}
		})
	}
}

func TestListSongsEmptyResultIsNotAnError(t *testing.T) {
	st := newTestStore(&MockDB{}, nil)

	songs, err := st.ListSongs(context.Background(), "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if songs == nil || len(songs) != 0 {
		t.Errorf("expected empty slice, got %v", songs)
	}
}
