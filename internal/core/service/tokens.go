package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

// sessionTokens exposes a session's tokens to the API client and writes a
// refreshed access token back to the store.
type sessionTokens struct {
	store ports.SessionStore
	sess  *domain.Session
}

var _ ports.TokenSource = (*sessionTokens)(nil)

func tokensFor(store ports.SessionStore, sess *domain.Session) *sessionTokens {
	return &sessionTokens{store: store, sess: sess}
}

func (t *sessionTokens) Tokens() (string, string) {
	return t.sess.AccessToken, t.sess.RefreshToken
}

func (t *sessionTokens) UpdateAccessToken(ctx context.Context, access string) error {
	t.sess.AccessToken = access
	return t.store.Save(ctx, t.sess)
}

// tokenExpiry reads the exp claim of a JWT without verifying its signature;
// the API owns verification. Zero is returned for opaque tokens.
func tokenExpiry(token string) time.Time {
	if token == "" {
		return time.Time{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// sessionExpiry bounds a session by the token that keeps it alive: the
// refresh token when there is one, otherwise the access token.
func sessionExpiry(access, refresh string) time.Time {
	if refresh != "" {
		return tokenExpiry(refresh)
	}
	return tokenExpiry(access)
}
