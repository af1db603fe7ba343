// Package common defines shared sentinel errors used across the service
// layers of MatchPredictor. Callers should use errors.Is to match these
// values; the HTTP layer owns the mapping to status codes.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors surfaced by the auth controller.
	ErrCredentialsRequired = errors.New("email and password are required")
	ErrInvalidEmailFormat  = errors.New("invalid email format")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")

	// Credential / account errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")

	// Token lifecycle errors (invalid signature, expired, unparseable).
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrMalformedToken = errors.New("malformed token")
)
