package domain

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("invalid role")
	ErrPreferenceNotFound = errors.New("theme preference not found")
	ErrInvalidTheme       = errors.New("invalid theme")
	ErrUpstream           = errors.New("upstream api error")
	ErrOAuthTokenMissing  = errors.New("no_token")
	ErrOAuthFailed        = errors.New("oauth_failed")
)
