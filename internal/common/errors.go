// Package common defines sentinel errors shared across the client layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")

	// Token errors (malformed or contract-violating tokens).
	ErrInvalidToken = errors.New("invalid token")

	// Transport errors (non-2xx responses without specific handling).
	ErrRequestFailed = errors.New("request failed")
)
