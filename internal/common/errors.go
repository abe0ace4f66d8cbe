// Package common defines shared constants and sentinel errors used across
// the FlyZone client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrMissingToken   = errors.New("missing token")

	// Flow-control errors.
	ErrBusy = errors.New("operation already in progress")

	// Input errors.
	ErrValidation = errors.New("validation error")
)
