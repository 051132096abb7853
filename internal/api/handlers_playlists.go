package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handlePostPlaylist(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		writeFail(w, errUnauthenticated("unauthorized"), "post playlist")
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFail(w, errInvariant("invalid JSON body"), "post playlist")
		return
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		writeFail(w, errInvariant("name is required"), "post playlist")
		return
	}

	playlistID, err := s.store.AddPlaylist(r.Context(), body.Name, userID)
	if err != nil {
		writeFail(w, err, "post playlist")
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"playlistId": playlistID})
}

func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		writeFail(w, errUnauthenticated("unauthorized"), "list playlists")
		return
	}

	playlists, err := s.store.ListPlaylists(r.Context(), userID)
	if err != nil {
		writeFail(w, err, "list playlists")
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"playlists": playlists})
}

// Deleting a playlist is owner-only; collaborators cannot delete.
func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		writeFail(w, errUnauthenticated("unauthorized"), "delete playlist")
		return
	}
	playlistID := chi.URLParam(r, "id")

	if err := s.store.VerifyPlaylistOwner(r.Context(), playlistID, userID); err != nil {
		writeFail(w, err, "delete playlist")
		return
	}
	if err := s.store.DeletePlaylist(r.Context(), playlistID); err != nil {
		writeFail(w, err, "delete playlist")
		return
	}

	writeMessage(w, http.StatusOK, "playlist deleted")
}

func (s *Server) handlePostPlaylistSong(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		writeFail(w, errUnauthenticated("unauthorized"), "post playlist song")
		return
	}
	playlistID := chi.URLParam(r, "id")

	var body struct {
		SongID string `json:"songId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFail(w, errInvariant("invalid JSON body"), "post playlist song")
		return
	}
	if body.SongID == "" {
		writeFail(w, errInvariant("songId is required"), "post playlist song")
		return
	}

	if _, err := s.store.ResolveAccess(r.Context(), playlistID, userID); err != nil {
		writeFail(w, err, "post playlist song")
		return
	}
	if err := s.store.verifySongExists(r.Context(), body.SongID); err != nil {
		writeFail(w, err, "post playlist song")
		return
	}

	if err := s.store.AddPlaylistSong(r.Context(), playlistID, body.SongID, userID); err != nil {
		writeFail(w, err, "post playlist song")
		return
	}

	writeMessage(w, http.StatusCreated, "song added to playlist")
}

func (s *Server) handleGetPlaylistSongs(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		writeFail(w, errUnauthenticated("unauthorized"), "get playlist songs")
		return
	}
	playlistID := chi.URLParam(r, "id")

	if _, err := s.store.ResolveAccess(r.Context(), playlistID, userID); err != nil {
		writeFail(w, err, "get playlist songs")
		return
	}

	playlist, err := s.store.GetPlaylistByID(r.Context(), playlistID)
	if err != nil {
		writeFail(w, err, "get playlist songs")
		return
	}
	songs, err := s.store.GetPlaylistSongs(r.Context(), playlistID)
	if err != nil {
		writeFail(w, err, "get playlist songs")
		return
	}
	playlist.Songs = songs

	writeSuccess(w, http.StatusOK, map[string]any{"playlist": playlist})
}

func (s *Server) handleDeletePlaylistSong(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		writeFail(w, errUnauthenticated("unauthorized"), "delete playlist song")
		return
	}
	playlistID := chi.URLParam(r, "id")

	var body struct {
		SongID string `json:"songId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFail(w, errInvariant("invalid JSON body"), "delete playlist song")
		return
	}
	if body.SongID == "" {
		writeFail(w, errInvariant("songId is required"), "delete playlist song")
		return
	}

	if _, err := s.store.ResolveAccess(r.Context(), playlistID, userID); err != nil {
		writeFail(w, err, "delete playlist song")
		return
	}

	if err := s.store.RemovePlaylistSong(r.Context(), playlistID, body.SongID, userID); err != nil {
		writeFail(w, err, "delete playlist song")
		return
	}

	writeMessage(w, http.StatusOK, "song removed from playlist")
}

func (s *Server) handleGetPlaylistActivities(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		writeFail(w, errUnauthenticated("unauthorized"), "get activities")
		return
	}
	playlistID := chi.URLParam(r, "id")

	if _, err := s.store.ResolveAccess(r.Context(), playlistID, userID); err != nil {
		writeFail(w, err, "get activities")
		return
	}

	activities, err := s.store.ListPlaylistActivities(r.Context(), playlistID)
	if err != nil {
		writeFail(w, err, "get activities")
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"playlistId": playlistID,
		"activities": activities,
	})
}
