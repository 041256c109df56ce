package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"golang-ethmgr/internal/ethernet"
)

// ErrorCode is a machine-readable error category.
type ErrorCode string

const (
	ErrCodeInvalidRequest    ErrorCode = "invalid_request"
	ErrCodeNotFound          ErrorCode = "not_found"
	ErrCodeInternalError     ErrorCode = "internal_error"
	ErrCodeValidationFailed  ErrorCode = "validation_failed"
	ErrCodeSourceUnavailable ErrorCode = "source_unavailable"
)

// APIError is the body of an error response.
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse wraps an APIError.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// WriteError writes err with statusCode.
func WriteError(w http.ResponseWriter, statusCode int, code ErrorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: APIError{Code: code, Message: message}})
}

func WriteInvalidRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, ErrCodeInvalidRequest, message)
}

func WriteNotFound(w http.ResponseWriter, resource string) {
	WriteError(w, http.StatusNotFound, ErrCodeNotFound, resource+" not found")
}

func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// writeManagerError maps a manager error to a response. Source failures
// are reported as 503.
func writeManagerError(w http.ResponseWriter, err error) {
	if errors.Is(err, ethernet.ErrRemoteUnavailable) {
		WriteError(w, http.StatusServiceUnavailable, ErrCodeSourceUnavailable, err.Error())
		return
	}
	WriteInternalError(w, err.Error())
}
