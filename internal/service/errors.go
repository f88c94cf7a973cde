package service

import "errors"

// Sentinel errors translated to HTTP status codes at the handler layer.
// Raw store errors never cross the service boundary.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password
	// so a caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken signals a duplicate email on registration.
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidToken signals a token with a bad signature or past expiry.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrUserNotFound signals that the authenticated user no longer exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrEntryNotFound signals a (user, movie) pair absent from every list.
	ErrEntryNotFound = errors.New("movie not found in any list")

	// ErrTooManyAttempts signals a locked-out login subject.
	ErrTooManyAttempts = errors.New("too many failed login attempts")
)
