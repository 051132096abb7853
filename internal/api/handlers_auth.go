package api

import (
	"encoding/json"
	"net/http"
)

// POST /authentications: login. On success both tokens are issued and the
// refresh token is persisted for later revocation.
func (s *Server) handlePostAuthentication(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFail(w, errInvariant("invalid JSON body"), "login")
		return
	}
	if body.Username == "" || body.Password == "" {
		writeFail(w, errInvariant("username and password are required"), "login")
		return
	}

	userID, err := s.store.VerifyUserCredential(r.Context(), body.Username, body.Password)
	if err != nil {
		writeFail(w, err, "login")
		return
	}

	accessToken, err := s.tokens.IssueAccessToken(userID)
	if err != nil {
		writeFail(w, err, "login issue access")
		return
	}
	refreshToken, err := s.tokens.IssueRefreshToken(userID)
	if err != nil {
		writeFail(w, err, "login issue refresh")
		return
	}

	if err := s.store.AddRefreshToken(r.Context(), refreshToken); err != nil {
		writeFail(w, err, "login persist refresh")
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// PUT /authentications: exchange a refresh token for a fresh access token.
// The token must verify and still be persisted (i.e. not revoked).
func (s *Server) handlePutAuthentication(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := decodeRefreshToken(r)
	if err != nil {
		writeFail(w, err, "refresh")
		return
	}

	userID, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		writeFail(w, err, "refresh")
		return
	}
	if err := s.store.VerifyRefreshToken(r.Context(), refreshToken); err != nil {
		writeFail(w, err, "refresh")
		return
	}

	accessToken, err := s.tokens.IssueAccessToken(userID)
	if err != nil {
		writeFail(w, err, "refresh issue access")
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"accessToken": accessToken})
}

// DELETE /authentications: revoke a refresh token.
func (s *Server) handleDeleteAuthentication(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := decodeRefreshToken(r)
	if err != nil {
		writeFail(w, err, "logout")
		return
	}

	if err := s.store.VerifyRefreshToken(r.Context(), refreshToken); err != nil {
		writeFail(w, err, "logout")
		return
	}
	if err := s.store.DeleteRefreshToken(r.Context(), refreshToken); err != nil {
		writeFail(w, err, "logout")
		return
	}

	writeMessage(w, http.StatusOK, "refresh token revoked")
}

func decodeRefreshToken(r *http.Request) (string, error) {
	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return "", errInvariant("invalid JSON body")
	}
	if body.RefreshToken == "" {
		return "", errInvariant("refreshToken is required")
	}
	return body.RefreshToken, nil
}
