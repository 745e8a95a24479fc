package apiErrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ArshadAliDS/Amazon/internal/domain"
)

// Error codes returned to API clients.
const (
	// Authentication (AUTH_*)
	ErrInvalidCredentials = "AUTH_001"
	ErrInvalidToken       = "AUTH_002"
	ErrExpiredToken       = "AUTH_003"
	ErrRefreshRejected    = "AUTH_004" // marketplace refused the refresh token

	// Validation (VAL_*)
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"

	// Server / pipeline (SRV_*)
	ErrInternalServer  = "SRV_001"
	ErrExternalService = "SRV_002"
	ErrJobFailed       = "SRV_003" // report job terminal failure or poll timeout
	ErrMissingConfig   = "SRV_004"
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrRefreshRejected:     http.StatusBadGateway,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrJobFailed:           http.StatusBadGateway,
	ErrMissingConfig:       http.StatusUnprocessableEntity,
}

// APIError is the standardized error body.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes a standardized error response.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// WriteFailure maps a pipeline failure to an API error by its kind.
func WriteFailure(w http.ResponseWriter, err error) {
	code := ErrInternalServer
	var details any

	switch domain.KindOf(err) {
	case domain.FailureConfig:
		code = ErrMissingConfig
	case domain.FailureAuth:
		code = ErrRefreshRejected
	case domain.FailureJob:
		code = ErrJobFailed
	case domain.FailureTransport:
		code = ErrExternalService
	}

	var f *domain.Failure
	if errors.As(err, &f) && f.Diagnostic != "" {
		details = f.Diagnostic
	}

	WriteError(w, code, err.Error(), details)
}
