package api

import (
	"encoding/json"
	"net/http"
)

type collaborationPayload struct {
	PlaylistID string `json:"playlistId"`
	UserID     string `json:"userId"`
}

func decodeCollaboration(r *http.Request) (collaborationPayload, error) {
	var body collaborationPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return body, errInvariant("invalid JSON body")
	}
	if body.PlaylistID == "" || body.UserID == "" {
		return body, errInvariant("playlistId and userId are required")
	}
	return body, nil
}

// Managing collaborators is owner-only.
func (s *Server) handlePostCollaboration(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		writeFail(w, errUnauthenticated("unauthorized"), "post collaboration")
		return
	}

	body, err := decodeCollaboration(r)
	if err != nil {
		writeFail(w, err, "post collaboration")
		return
	}

	if err := s.store.VerifyPlaylistOwner(r.Context(), body.PlaylistID, userID); err != nil {
		writeFail(w, err, "post collaboration")
		return
	}
	if _, err := s.store.GetUserByID(r.Context(), body.UserID); err != nil {
		writeFail(w, err, "post collaboration")
		return
	}

	collaborationID, err := s.store.AddCollaboration(r.Context(), body.PlaylistID, body.UserID)
	if err != nil {
		writeFail(w, err, "post collaboration")
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"collaborationId": collaborationID})
}

func (s *Server) handleDeleteCollaboration(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		writeFail(w, errUnauthenticated("unauthorized"), "delete collaboration")
		return
	}

	body, err := decodeCollaboration(r)
	if err != nil {
		writeFail(w, err, "delete collaboration")
		return
	}

	if err := s.store.VerifyPlaylistOwner(r.Context(), body.PlaylistID, userID); err != nil {
		writeFail(w, err, "delete collaboration")
		return
	}

	if err := s.store.DeleteCollaboration(r.Context(), body.PlaylistID, body.UserID); err != nil {
		writeFail(w, err, "delete collaboration")
		return
	}

	writeMessage(w, http.StatusOK, "collaboration deleted")
}
