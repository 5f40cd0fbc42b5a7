package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/nfrund/bcard/internal/domain"
)

// Error is returned when the remote API rejects a request. Message carries the
// API's own explanation, which is what users get to see.
type Error struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Operation, e.StatusCode, e.Message)
}

// Is maps HTTP statuses onto domain sentinels so callers can use errors.Is.
func (e *Error) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return target == domain.ErrValidation
	case http.StatusUnauthorized:
		return target == domain.ErrUnauthorized
	case http.StatusForbidden:
		return target == domain.ErrForbidden
	case http.StatusNotFound:
		return target == domain.ErrNotFound
	}
	return false
}

// Message returns the text to show a user for err: the API's message when the
// API rejected the request, otherwise fallback.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// errorMessage extracts a human-readable message from an error body. The API
// answers with plain text, a JSON string, or occasionally {"message": "..."}.
func errorMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}
	var s string
	if err := json.Unmarshal([]byte(text), &s); err == nil {
		return s
	}
	var obj struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(text), &obj); err == nil {
		if obj.Message != "" {
			return obj.Message
		}
		if obj.Error != "" {
			return obj.Error
		}
	}
	return text
}
