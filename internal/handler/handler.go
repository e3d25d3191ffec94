package handler

import (
	"errors"
	"net/http"

	"invoicer/internal/apiclient"
	"invoicer/internal/draft"
	"invoicer/internal/service"
)

// statusFor maps service and backend errors onto the HTTP status this app
// answers with. Backend API errors pass their status through; transport
// failures surface as 502 because the fault is between us and the backend.
func statusFor(err error) int {
	var apiErr *apiclient.APIError
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, draft.ErrLastLine):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, apiclient.ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.As(err, &apiErr):
		return apiErr.Status
	default:
		return http.StatusBadGateway
	}
}
