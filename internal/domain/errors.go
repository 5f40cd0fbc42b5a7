package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common failures, whether they were detected locally or reported
// by the remote API.
var (
	ErrNotFound     = errors.New("requested resource not found")
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("operation not permitted")
	ErrInvalidToken = errors.New("token could not be decoded")
	ErrValidation   = errors.New("input failed validation")
	ErrUnavailable  = errors.New("remote service unavailable")
)
