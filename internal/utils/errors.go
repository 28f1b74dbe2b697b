package utils

import (
	"errors"
	"net/http"

	"github.com/gcharris/writers-factory-app-sub009/internal/engine"
)

// HTTPStatus maps engine errors to response codes: configuration errors are
// the caller's fault, an exhausted catalog means the engine cannot serve.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, engine.ErrInvalidConfiguration):
		return http.StatusBadRequest
	case errors.Is(err, engine.ErrNoAvailableModel):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
