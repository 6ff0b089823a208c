package service

import "errors"

var (
	ErrMissingFields    = errors.New("please fill in all fields")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrUsernameTooShort = errors.New("username must be at least 3 characters")

	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password. Keeping one sentinel for both cases means the API cannot be
	// used to probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNotBookOwner is returned when a user attempts to delete a book that
	// belongs to somebody else.
	ErrNotBookOwner = errors.New("not authorized to modify this book")

	// ErrImageUploadFailed wraps media store failures during book creation.
	ErrImageUploadFailed = errors.New("image upload failed")
)
