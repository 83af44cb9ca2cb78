// Package server provides the HTTP REST API over the workspace document
// store.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-workspace/internal/schemas"
	"github.com/jonathan/resume-workspace/internal/store"
)

// HTTPStatus returns the appropriate HTTP status code for an error coming
// out of the store or the interchange validators.
func HTTPStatus(err error) int {
	var (
		notFound    *store.NotFoundError
		outOfRange  *store.IndexOutOfRangeError
		badSection  *store.InvalidSectionError
		badField    *store.UnknownFieldError
		badMove     *store.InvalidDirectionError
		badState    *store.InvalidStateError
		badPayload  *schemas.ValidationError
		brokenShape *schemas.SchemaLoadError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &outOfRange),
		errors.As(err, &badSection),
		errors.As(err, &badField),
		errors.As(err, &badMove),
		errors.As(err, &badState),
		errors.As(err, &badPayload):
		return http.StatusBadRequest
	case errors.As(err, &brokenShape):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
