package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handlePostUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Fullname string `json:"fullname"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFail(w, errInvariant("invalid JSON body"), "post user")
		return
	}

	body.Username = strings.TrimSpace(body.Username)
	body.Fullname = strings.TrimSpace(body.Fullname)
	if body.Username == "" || body.Password == "" || body.Fullname == "" {
		writeFail(w, errInvariant("username, password and fullname are required"), "post user")
		return
	}
	if len(body.Username) > 50 {
		writeFail(w, errInvariant("username must be at most 50 characters"), "post user")
		return
	}

	userID, err := s.store.AddUser(r.Context(), body.Username, body.Password, body.Fullname)
	if err != nil {
		writeFail(w, err, "post user")
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"userId": userID})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.store.GetUserByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeFail(w, err, "get user")
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"user": user})
}

func (s *Server) handleSearchUsers(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")

	users, err := s.store.FindUsersByUsername(r.Context(), username)
	if err != nil {
		writeFail(w, err, "search users")
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"users": users})
}
