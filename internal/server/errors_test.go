package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-fit/internal/pipeline"
	"github.com/jonathan/resume-fit/internal/ranking"
	"github.com/jonathan/resume-fit/internal/selection"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "text", Message: "is required"}
	assert.Equal(t, "validation error: text - is required", err.Error())
	assert.Equal(t, "validation error: bad body", (&ErrValidation{Message: "bad body"}).Error())
}

func TestErrNotFound(t *testing.T) {
	err := &ErrNotFound{Resource: "run", ID: "abc"}
	assert.Equal(t, "run not found: abc", err.Error())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", &ErrValidation{Field: "text", Message: "required"}, http.StatusBadRequest},
		{"no candidate", &ErrNoCandidate{}, http.StatusBadRequest},
		{"selection", &selection.Error{Message: "job profile is required"}, http.StatusBadRequest},
		{"contract", &ranking.ContractError{Message: "document is required"}, http.StatusUnprocessableEntity},
		{"not found", &ErrNotFound{Resource: "run", ID: "x"}, http.StatusNotFound},
		{"tracking disabled", &ErrTrackingDisabled{}, http.StatusServiceUnavailable},
		{"wrapped in stage error", &pipeline.StageError{Stage: pipeline.StageScore, Cause: &ranking.ContractError{Message: "x"}}, http.StatusUnprocessableEntity},
		{"wrapped with fmt", fmt.Errorf("lookup: %w", &ErrNotFound{Resource: "artifact", ID: "y"}), http.StatusNotFound},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
