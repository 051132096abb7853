package api

import (
	"context"
	"net/http"
	"strings"
)

type ctxUserIDKey struct{}

// authMiddleware requires a Bearer access token and puts the verified user id
// on the request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			writeFail(w, errUnauthenticated("missing Authorization header"), "auth")
			return
		}
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			writeFail(w, errUnauthenticated("invalid Authorization header"), "auth")
			return
		}

		userID, err := s.tokens.VerifyAccessToken(parts[1])
		if err != nil {
			writeFail(w, errUnauthenticated("invalid access token"), "auth")
			return
		}

		ctx := context.WithValue(r.Context(), ctxUserIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userIDFromContext(r *http.Request) (string, bool) {
	v := r.Context().Value(ctxUserIDKey{})
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
