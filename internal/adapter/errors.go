package adapter

import "errors"

// Sentinel errors mapped from media service HTTP status codes.
var (
	ErrBadRequest          = errors.New("media service rejected request")
	ErrUnauthorized        = errors.New("media client unauthorized")
	ErrForbidden           = errors.New("media client forbidden")
	ErrNotFound            = errors.New("media object not found")
	ErrInternalServerError = errors.New("media service internal error")
)
