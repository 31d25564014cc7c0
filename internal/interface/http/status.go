package handlers

import (
	"errors"
	"net/http"

	"github.com/webcraft-academy/elearn-api/internal/application"
)

// statusFor maps application errors onto the HTTP error taxonomy.
// Unknown errors become 500s; nothing is allowed to escape a handler.
func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrCourseNotFound),
		errors.Is(err, application.ErrCartItemNotFound),
		errors.Is(err, application.ErrJobNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrEmailTaken),
		errors.Is(err, application.ErrCourseInCart),
		errors.Is(err, application.ErrInvalidRole),
		errors.Is(err, application.ErrInvalidCategory),
		errors.Is(err, application.ErrInvalidResetCode):
		return http.StatusBadRequest
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, application.ErrNotAllowed):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// message returns the user-facing message for an error: the sentinel
// text for known errors, a generic one for the rest.
func message(err error, status int) string {
	if status == http.StatusInternalServerError {
		return "server error"
	}
	return err.Error()
}
