package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type songPayload struct {
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Genre     string  `json:"genre"`
	Performer string  `json:"performer"`
	Duration  *int    `json:"duration"`
	AlbumID   *string `json:"albumId"`
}

func (p *songPayload) validate() error {
	p.Title = strings.TrimSpace(p.Title)
	p.Genre = strings.TrimSpace(p.Genre)
	p.Performer = strings.TrimSpace(p.Performer)

	if p.Title == "" {
		return errInvariant("title is required")
	}
	if p.Year <= 0 {
		return errInvariant("year must be a positive number")
	}
	if p.Genre == "" {
		return errInvariant("genre is required")
	}
	if p.Performer == "" {
		return errInvariant("performer is required")
	}
	if p.Duration != nil && *p.Duration < 0 {
		return errInvariant("duration must not be negative")
	}
	return nil
}

func (p *songPayload) toSong() Song {
	return Song{
		Title:     p.Title,
		Year:      p.Year,
		Genre:     p.Genre,
		Performer: p.Performer,
		Duration:  p.Duration,
		AlbumID:   p.AlbumID,
	}
}

func (s *Server) handlePostSong(w http.ResponseWriter, r *http.Request) {
	var body songPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFail(w, errInvariant("invalid JSON body"), "post song")
		return
	}
	if err := body.validate(); err != nil {
		writeFail(w, err, "post song")
		return
	}

	songID, err := s.store.AddSong(r.Context(), body.toSong())
	if err != nil {
		writeFail(w, err, "post song")
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"songId": songID})
}

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	performer := r.URL.Query().Get("performer")

	songs, err := s.store.ListSongs(r.Context(), title, performer)
	if err != nil {
		writeFail(w, err, "list songs")
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"songs": songs})
}

func (s *Server) handleGetSong(w http.ResponseWriter, r *http.Request) {
	song, err := s.store.GetSongByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeFail(w, err, "get song")
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"song": song})
}

func (s *Server) handlePutSong(w http.ResponseWriter, r *http.Request) {
	var body songPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFail(w, errInvariant("invalid JSON body"), "put song")
		return
	}
	if err := body.validate(); err != nil {
		writeFail(w, err, "put song")
		return
	}

	if err := s.store.UpdateSong(r.Context(), chi.URLParam(r, "id"), body.toSong()); err != nil {
		writeFail(w, err, "put song")
		return
	}

	writeMessage(w, http.StatusOK, "song updated")
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteSong(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeFail(w, err, "delete song")
		return
	}

	writeMessage(w, http.StatusOK, "song deleted")
}
