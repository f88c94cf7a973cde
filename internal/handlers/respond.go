// Package handlers contains HTTP request handlers for the movie service.
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/service"
)

// ErrorResponse is the JSON body for all error statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondError writes a JSON error body with the given status.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// RespondServiceError translates service sentinel errors to status
// codes. Unexpected errors are logged server-side and reported as a
// generic 500 with no internal detail.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrInvalidToken):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrEntryNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrTooManyAttempts):
		RespondError(c, http.StatusTooManyRequests, err.Error())
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		RespondError(c, http.StatusInternalServerError, "internal server error")
	}
}
