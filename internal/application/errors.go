package application

import "errors"

// Sentinel errors surfaced by the application services. Handlers map
// these to HTTP status codes; anything else becomes a 500.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidResetCode   = errors.New("invalid or expired code")

	ErrCourseNotFound  = errors.New("course not found")
	ErrInvalidCategory = errors.New("invalid course category")

	ErrCourseInCart     = errors.New("course already in cart")
	ErrCartItemNotFound = errors.New("course not found in cart")

	ErrJobNotFound = errors.New("job not found")
	ErrNotAllowed  = errors.New("not allowed")
)
