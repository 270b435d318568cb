package usecase

import "errors"

// Service errors. Handlers map these onto HTTP status codes with errors.Is,
// so every service failure must wrap exactly one of them.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
	ErrInvalidState    = errors.New("invalid state")
	ErrForbidden       = errors.New("forbidden")
)
