package api

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

type albumPayload struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

func (p *albumPayload) validate() error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return errInvariant("name is required")
	}
	if p.Year <= 0 {
		return errInvariant("year must be a positive number")
	}
	return nil
}

func (s *Server) handlePostAlbum(w http.ResponseWriter, r *http.Request) {
	var body albumPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFail(w, errInvariant("invalid JSON body"), "post album")
		return
	}
	if err := body.validate(); err != nil {
		writeFail(w, err, "post album")
		return
	}

	albumID, err := s.store.AddAlbum(r.Context(), body.Name, body.Year)
	if err != nil {
		writeFail(w, err, "post album")
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"albumId": albumID})
}

func (s *Server) handleGetAlbum(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	album, err := s.store.GetAlbumByID(r.Context(), id)
	if err != nil {
		writeFail(w, err, "get album")
		return
	}

	songs, err := s.store.ListSongsByAlbum(r.Context(), id)
	if err != nil {
		writeFail(w, err, "get album songs")
		return
	}
	album.Songs = songs

	writeSuccess(w, http.StatusOK, map[string]any{"album": album})
}

func (s *Server) handlePutAlbum(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body albumPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFail(w, errInvariant("invalid JSON body"), "put album")
		return
	}
	if err := body.validate(); err != nil {
		writeFail(w, err, "put album")
		return
	}

	if err := s.store.UpdateAlbum(r.Context(), id, body.Name, body.Year); err != nil {
		writeFail(w, err, "put album")
		return
	}

	writeMessage(w, http.StatusOK, "album updated")
}

func (s *Server) handleDeleteAlbum(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.store.DeleteAlbum(r.Context(), id); err != nil {
		writeFail(w, err, "delete album")
		return
	}

	writeMessage(w, http.StatusOK, "album deleted")
}

const maxCoverSize = 512 * 1024

func (s *Server) handlePostAlbumCover(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, maxCoverSize)
	if err := r.ParseMultipartForm(maxCoverSize); err != nil {
		writeFail(w, errInvariant("cover is too large or the form is invalid"), "post cover")
		return
	}

	file, header, err := r.FormFile("cover")
	if err != nil {
		writeFail(w, errInvariant("cover file is required"), "post cover")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
	default:
		writeFail(w, errInvariant("unsupported cover type (allowed: png, jpg, jpeg, webp)"), "post cover")
		return
	}

	// The part's declared type must be an image too; the extension alone is
	// trivially forged.
	switch header.Header.Get("Content-Type") {
	case "image/png", "image/jpeg", "image/webp":
	default:
		writeFail(w, errInvariant("cover must be an image"), "post cover")
		return
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		writeFail(w, err, "post cover mkdir")
		return
	}

	filename := strconv.FormatInt(time.Now().UnixNano(), 10) + ext
	dst, err := os.Create(filepath.Join(s.uploadDir, filename))
	if err != nil {
		writeFail(w, err, "post cover create")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		writeFail(w, err, "post cover write")
		return
	}

	coverURL := s.baseURL + "/upload/covers/" + filename
	if err := s.store.SetAlbumCover(r.Context(), id, coverURL); err != nil {
		writeFail(w, err, "post cover")
		return
	}

	writeMessage(w, http.StatusCreated, "cover uploaded")
}

func (s *Server) handleGetAlbumLikes(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	likes, source, err := s.store.GetAlbumLikes(r.Context(), id)
	if err != nil {
		writeFail(w, err, "get album likes")
		return
	}

	if source == "cache" {
		w.Header().Set("X-Data-Source", "cache")
	}
	writeSuccess(w, http.StatusOK, map[string]any{"likes": likes})
}

func (s *Server) handlePostAlbumLike(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID, ok := userIDFromContext(r)
	if !ok {
		writeFail(w, errUnauthenticated("unauthorized"), "post like")
		return
	}

	if err := s.store.LikeAlbum(r.Context(), userID, id); err != nil {
		writeFail(w, err, "post like")
		return
	}

	writeMessage(w, http.StatusCreated, "album liked")
}

func (s *Server) handleDeleteAlbumLike(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID, ok := userIDFromContext(r)
	if !ok {
		writeFail(w, errUnauthenticated("unauthorized"), "delete like")
		return
	}

	if err := s.store.UnlikeAlbum(r.Context(), userID, id); err != nil {
		writeFail(w, err, "delete like")
		return
	}

	writeMessage(w, http.StatusOK, "album unliked")
}
