// Package server provides the HTTP REST API for the green project matcher.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/verdant/green-matcher/internal/matching"
)

// ErrInvestorNotFound indicates no investor has the requested name
type ErrInvestorNotFound struct {
	Name string
}

func (e *ErrInvestorNotFound) Error() string {
	return fmt.Sprintf("investor not found: %s", e.Name)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Data-quality errors on investor records map to 422: the request was
// well-formed but the stored data cannot be matched.
func HTTPStatus(err error) int {
	var notFound *ErrInvestorNotFound
	var validation *ErrValidation
	var badMinInvestment *matching.ErrInvalidMinInvestment

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &badMinInvestment):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
