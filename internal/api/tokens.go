package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenClaims struct {
	UserID    string `json:"id"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies access and refresh tokens. Both are HS256
// over one secret; the "typ" claim keeps them from being used interchangeably.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(secret []byte, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (tm *TokenManager) sign(userID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
}

func (tm *TokenManager) IssueAccessToken(userID string) (string, error) {
	return tm.sign(userID, "access", tm.accessTTL)
}

func (tm *TokenManager) IssueRefreshToken(userID string) (string, error) {
	return tm.sign(userID, "refresh", tm.refreshTTL)
}

// VerifyAccessToken returns the user id carried by a valid access token.
func (tm *TokenManager) VerifyAccessToken(raw string) (string, error) {
	return tm.verify(raw, "access", errUnauthenticated("invalid access token"))
}

// VerifyRefreshToken checks signature and type only; whether the token is
// still honored is decided against the persisted copy.
func (tm *TokenManager) VerifyRefreshToken(raw string) (string, error) {
	return tm.verify(raw, "refresh", errInvariant("refresh token is not valid"))
}

func (tm *TokenManager) verify(raw, tokenType string, failure *ClientError) (string, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return tm.secret, nil
	})
	if err != nil || !token.Valid || claims.TokenType != tokenType {
		return "", failure
	}
	return claims.UserID, nil
}
