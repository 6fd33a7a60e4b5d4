package domain

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// Session is the server-side auth session: the tokens issued by the API and
// a snapshot of the signed-in user.
type Session struct {
	ID           string    `json:"id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	User         User      `json:"user"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Expired reports whether the session lifetime has passed at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// AuthSnapshot mirrors the auth store into a cookie so the route guard can
// make decisions without a store round trip.
type AuthSnapshot struct {
	State AuthState `json:"state"`
}

// AuthState is the persisted part of the auth store.
type AuthState struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
}

// NewAuthSnapshot builds the cookie payload for an authenticated user.
func NewAuthSnapshot(u User) AuthSnapshot {
	return AuthSnapshot{State: AuthState{User: &u, IsAuthenticated: true}}
}

// Encode renders the snapshot as a URL-escaped JSON cookie value.
func (a AuthSnapshot) Encode() (string, error) {
	raw, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("encode auth snapshot: %w", err)
	}
	return url.QueryEscape(string(raw)), nil
}

// DecodeAuthSnapshot parses a cookie value produced by Encode. Values that
// were never escaped are accepted as-is.
func DecodeAuthSnapshot(value string) (AuthSnapshot, error) {
	var snap AuthSnapshot
	raw, err := url.QueryUnescape(value)
	if err != nil {
		raw = value
	}
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return AuthSnapshot{}, fmt.Errorf("decode auth snapshot: %w", err)
	}
	return snap, nil
}

// ToastVariant selects how a notification is styled.
type ToastVariant string

const (
	ToastDefault     ToastVariant = "default"
	ToastDestructive ToastVariant = "destructive"
)

// Toast is a transient user-facing notification.
type Toast struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Variant     ToastVariant `json:"variant"`
}

// SuccessToast builds a default-variant toast.
func SuccessToast(title, description string) Toast {
	return Toast{Title: title, Description: description, Variant: ToastDefault}
}

// ErrorToast builds a destructive toast titled "Error".
func ErrorToast(description string) Toast {
	return Toast{Title: "Error", Description: description, Variant: ToastDestructive}
}
