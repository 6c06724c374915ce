package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"pdf-reader-api/internal/domain"
	apperrors "pdf-reader-api/pkg/errors"
)

type contextKey string

const requestIDContextKey contextKey = "request_id"

// RequestIDHeader carries the per-request correlation ID
const RequestIDHeader = "X-Request-ID"

// GetRequestIDFromContext extracts the request ID set by RequestIDMiddleware
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey).(string)
	return id, ok
}

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes {"error": message, "success": false}
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, domain.ErrorResponse{Error: message, Success: false})
}

// writeAPIError maps any error onto its API status and message
func writeAPIError(w http.ResponseWriter, err error) {
	apiErr := apperrors.AsAPIError(err)
	writeError(w, apiErr.StatusCode, apiErr.Message)
}
