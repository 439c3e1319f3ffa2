package v1

import (
	"errors"
	"net/http"

	"github.com/smartrisk-ai/backend/internal/auth"
	"github.com/smartrisk-ai/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, auth.ErrTokenInvalid) || errors.Is(err, errCredentialsInvalid) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

// Auth errors
var (
	errCredentialsInvalid = errors.New("the email or password is incorrect")
	errPasswordLength     = errors.New("the password must be 8-100 characters")
	errEmailInvalid       = errors.New("the email address is invalid")
	errNameNotSet         = errors.New("the name field must be set")
)

// Cleanup errors
var errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")

// Ingest errors
var errAccountIDParameter = errors.New("the accountId field must be set")
