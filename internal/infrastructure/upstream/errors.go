package upstream

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/jobzen/dashboard/internal/core/domain"
)

// APIError is a non-2xx answer from the Jobzen API.
type APIError struct {
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream: status %d", e.Status)
	}
	return fmt.Sprintf("upstream: status %d: %s", e.Status, e.Message)
}

// Unwrap exposes the domain error matching the status code.
func (e *APIError) Unwrap() error { return e.kind }

// UserMessage is the message the API meant for the end user.
func (e *APIError) UserMessage() string { return e.Message }

// errorBody covers the API's error envelope; message is either a string or a
// list of validation messages.
type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

// maxRawMessage caps a non-JSON error body that ends up in a toast.
const maxRawMessage = 200

// truncateRunes cuts s to at most n runes, never inside a UTF-8 sequence.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func parseErrorResponse(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, kind: kindForStatus(status)}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		apiErr.Message = truncateRunes(strings.TrimSpace(string(body)), maxRawMessage)
		return apiErr
	}

	var single string
	var many []string
	switch {
	case json.Unmarshal(eb.Message, &single) == nil && single != "":
		apiErr.Message = single
	case json.Unmarshal(eb.Message, &many) == nil && len(many) > 0:
		apiErr.Message = strings.Join(many, "; ")
	default:
		apiErr.Message = eb.Error
	}
	return apiErr
}

func kindForStatus(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrUserNotFound
	case http.StatusConflict:
		return domain.ErrUserExists
	default:
		return domain.ErrUpstream
	}
}

// StatusCode is the HTTP status the API answered with.
func (e *APIError) StatusCode() int { return e.Status }
