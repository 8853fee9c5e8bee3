// Package server provides the HTTP REST API for the resume-fit pipeline.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-fit/internal/ranking"
	"github.com/jonathan/resume-fit/internal/selection"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates the requested record does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrTrackingDisabled indicates a run endpoint was called on a server
// started without a database
type ErrTrackingDisabled struct{}

func (e *ErrTrackingDisabled) Error() string {
	return "run tracking is not configured"
}

// ErrNoCandidate indicates neither the request nor the server supplied a
// candidate profile
type ErrNoCandidate struct{}

func (e *ErrNoCandidate) Error() string {
	return "candidate profile is required: include one in the request or start the server with --candidate"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		notFoundErr   *ErrNotFound
		disabledErr   *ErrTrackingDisabled
		noCandidate   *ErrNoCandidate
		selectionErr  *selection.Error
		contractErr   *ranking.ContractError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &noCandidate), errors.As(err, &selectionErr):
		return http.StatusBadRequest
	case errors.As(err, &contractErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &disabledErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
