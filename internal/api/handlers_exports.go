package api

import (
	"encoding/json"
	"net/http"
	"net/mail"

	"github.com/go-chi/chi/v5"
)

const exportQueue = "export:playlist"

type exportMessage struct {
	PlaylistID  string `json:"playlistId"`
	UserID      string `json:"userId"`
	TargetEmail string `json:"targetEmail"`
}

// POST /export/playlists/{playlistId}: enqueue an export job and return
// immediately; a worker on the other side of the queue does the actual export.
func (s *Server) handleExportPlaylist(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		writeFail(w, errUnauthenticated("unauthorized"), "export playlist")
		return
	}
	playlistID := chi.URLParam(r, "playlistId")

	var body struct {
		TargetEmail string `json:"targetEmail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFail(w, errInvariant("invalid JSON body"), "export playlist")
		return
	}
	if _, err := mail.ParseAddress(body.TargetEmail); err != nil {
		writeFail(w, errInvariant("targetEmail must be a valid email address"), "export playlist")
		return
	}

	if err := s.store.VerifyPlaylistOwner(r.Context(), playlistID, userID); err != nil {
		writeFail(w, err, "export playlist")
		return
	}

	payload, err := json.Marshal(exportMessage{
		PlaylistID:  playlistID,
		UserID:      userID,
		TargetEmail: body.TargetEmail,
	})
	if err != nil {
		writeFail(w, err, "export playlist marshal")
		return
	}

	if err := s.queue.Push(r.Context(), exportQueue, payload); err != nil {
		writeFail(w, err, "export playlist enqueue")
		return
	}

	writeMessage(w, http.StatusCreated, "your request is in the queue")
}
