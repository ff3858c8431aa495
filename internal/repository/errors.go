package repository

import "errors"

// Sentinel errors shared by every storage backend so services and handlers
// never depend on backend-specific error types.
var (
	ErrNotFound          = errors.New("record not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUnknownSize       = errors.New("unknown size")
	ErrUnavailable       = errors.New("storage unavailable")
)
