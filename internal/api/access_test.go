package api

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
)

func newTestStore(db *MockDB, cache *MockCache) *Store {
	if cache == nil {
		cache = &MockCache{}
	}
	return NewStore(db, cache, 30*time.Minute)
}

// routeOwnerAndCollab wires a MockDB where the playlist exists with the given
// owner and the collaborations table holds the given pairs.
func routeOwnerAndCollab(owner string, collabUserIDs ...string) *MockDB {
	return &MockDB{
		QueryRowFunc: func(ctx context.Context, sql string, args ...any) pgx.Row {
			switch {
			case strings.Contains(sql, "FROM playlists"):
				return &MockRow{ScanFunc: func(dest ...any) error {
					*dest[0].(*string) = owner
					return nil
				}}
			case strings.Contains(sql, "FROM collaborations"):
				userID := args[1].(string)
				for _, id := range collabUserIDs {
					if id == userID {
						return &MockRow{ScanFunc: func(dest ...any) error {
							*dest[0].(*string) = "collab-1"
							return nil
						}}
					}
				}
				return &MockRow{ScanFunc: func(dest ...any) error {
					return pgx.ErrNoRows
				}}
			}
			return &MockRow{ScanFunc: func(dest ...any) error {
				return errors.New("unexpected query: " + sql)
			}}
		},
	}
}

func TestResolveAccessOwner(t *testing.T) {
	st := newTestStore(routeOwnerAndCollab("user-1"), nil)

	role, err := st.ResolveAccess(context.Background(), "playlist-1", "user-1")
	if err != nil {
		t.Fatalf("expected owner to pass, got %v", err)
	}
	if role != RoleOwner {
		t.Errorf("expected RoleOwner, got %v", role)
	}
}

func TestResolveAccessCollaborator(t *testing.T) {
	st := newTestStore(routeOwnerAndCollab("user-1", "user-2"), nil)

	role, err := st.ResolveAccess(context.Background(), "playlist-1", "user-2")
	if err != nil {
		t.Fatalf("expected collaborator to pass, got %v", err)
	}
	if role != RoleCollaborator {
		t.Errorf("expected RoleCollaborator, got %v", role)
	}
}

// A non-owner non-collaborator must see the owner-check failure, not a
// collaborator-specific message, even though the collaborator lookup ran last.
func TestResolveAccessDeniedSurfacesOwnerError(t *testing.T) {
	st := newTestStore(routeOwnerAndCollab("user-1", "user-2"), nil)

	_, err := st.ResolveAccess(context.Background(), "playlist-1", "user-3")
	if err == nil {
		t.Fatal("expected denial")
	}

	var ce *ClientError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ClientError, got %T", err)
	}
	if ce.Status != 403 {
		t.Errorf("expected 403, got %d", ce.Status)
	}
	if ce.Message != "you are not authorized to access this resource" {
		t.Errorf("expected owner-mismatch message, got %q", ce.Message)
	}
}

func TestResolveAccessMissingPlaylist(t *testing.T) {
	db := &MockDB{
		QueryRowFunc: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &MockRow{ScanFunc: func(dest ...any) error {
				return pgx.ErrNoRows
			}}
		},
	}
	st := newTestStore(db, nil)

	_, err := st.ResolveAccess(context.Background(), "playlist-missing", "user-1")

	var ce *ClientError
	if !errors.As(err, &ce) || ce.Status != 404 {
		t.Fatalf("expected 404 ClientError, got %v", err)
	}
}

func TestVerifyPlaylistOwnerRejectsCollaborator(t *testing.T) {
	st := newTestStore(routeOwnerAndCollab("user-1", "user-2"), nil)

	err := st.VerifyPlaylistOwner(context.Background(), "playlist-1", "user-2")

	var ce *ClientError
	if !errors.As(err, &ce) || ce.Status != 403 {
		t.Fatalf("expected strict owner check to fail with 403, got %v", err)
	}
}
