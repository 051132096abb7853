package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	store     *Store
	queue     Queue
	tokens    *TokenManager
	uploadDir string
	baseURL   string
}

type Config struct {
	UploadDir string
	BaseURL   string
}

func NewServer(store *Store, queue Queue, tokens *TokenManager, cfg Config) *Server {
	return &Server{
		store:     store,
		queue:     queue,
		tokens:    tokens,
		uploadDir: cfg.UploadDir,
		baseURL:   cfg.BaseURL,
	}
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/", s.handleRoot)

	r.Post("/albums", s.handlePostAlbum)
	r.Get("/albums/{id}", s.handleGetAlbum)
	r.Put("/albums/{id}", s.handlePutAlbum)
	r.Delete("/albums/{id}", s.handleDeleteAlbum)
	r.Post("/albums/{id}/covers", s.handlePostAlbumCover)
	r.Get("/albums/{id}/likes", s.handleGetAlbumLikes)
	r.Handle("/upload/covers/*",
		http.StripPrefix("/upload/covers/", http.FileServer(http.Dir(s.uploadDir))))

	r.Post("/songs", s.handlePostSong)
	r.Get("/songs", s.handleListSongs)
	r.Get("/songs/{id}", s.handleGetSong)
	r.Put("/songs/{id}", s.handlePutSong)
	r.Delete("/songs/{id}", s.handleDeleteSong)

	r.Post("/users", s.handlePostUser)
	r.Get("/users", s.handleSearchUsers)
	r.Get("/users/{id}", s.handleGetUser)

	r.Post("/authentications", s.handlePostAuthentication)
	r.Put("/authentications", s.handlePutAuthentication)
	r.Delete("/authentications", s.handleDeleteAuthentication)

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Post("/albums/{id}/likes", s.handlePostAlbumLike)
		r.Delete("/albums/{id}/likes", s.handleDeleteAlbumLike)

		r.Post("/playlists", s.handlePostPlaylist)
		r.Get("/playlists", s.handleListPlaylists)
		r.Delete("/playlists/{id}", s.handleDeletePlaylist)
		r.Post("/playlists/{id}/songs", s.handlePostPlaylistSong)
		r.Get("/playlists/{id}/songs", s.handleGetPlaylistSongs)
		r.Delete("/playlists/{id}/songs", s.handleDeletePlaylistSong)
		r.Get("/playlists/{id}/activities", s.handleGetPlaylistActivities)

		r.Post("/collaborations", s.handlePostCollaboration)
		r.Delete("/collaborations", s.handleDeleteCollaboration)

		r.Post("/export/playlists/{playlistId}", s.handleExportPlaylist)
	})

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "OpenMusic API",
		"version": "3.0.0",
	})
}
