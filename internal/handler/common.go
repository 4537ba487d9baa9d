package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/modgate/internal/domain"
)

type ErrorResponse struct {
	BaseResponse
	Error          string    `json:"error"`
	Details        *[]string `json:"details,omitempty"`
	Decision       string    `json:"decision,omitempty"`
	PermissionType string    `json:"permission_type,omitempty"`
	Required       string    `json:"required,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// handleError maps domain errors onto HTTP status codes
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var forbidden *domain.ForbiddenError
	switch {
	case errors.As(err, &forbidden):
		respondWithJSON(w, http.StatusForbidden, ErrorResponse{
			Error:          "Access denied",
			Decision:       "deny",
			PermissionType: forbidden.PermissionType,
			Required:       forbidden.Requirement,
		})
	case errors.Is(err, domain.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidPermissionType):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrModuleNotFound):
		respondWithError(w, http.StatusNotFound, "Module not found")
	case errors.Is(err, domain.ErrOrganizationNotFound):
		respondWithError(w, http.StatusNotFound, "Organization not found")
	case errors.Is(err, domain.ErrUserNotFound):
		respondWithError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found")
	default:
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
