package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pdf-reader-api/internal/domain"
	apperrors "pdf-reader-api/pkg/errors"

	"github.com/google/uuid"
)

// RequestIDMiddleware propagates X-Request-ID, generating one when absent
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

// LoggingMiddleware writes one access log line per request
type LoggingMiddleware struct {
	logger domain.Logger
}

// NewLoggingMiddleware creates a new access log middleware
func NewLoggingMiddleware(logger domain.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{logger: logger}
}

// Middleware returns the HTTP middleware function
func (m *LoggingMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		requestID, _ := GetRequestIDFromContext(r.Context())
		fields := []interface{}{
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", rec.bytes,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", requestID,
		}
		if r.Context().Err() != nil {
			fields = append(fields, "client_gone", true)
		}
		if status >= http.StatusInternalServerError {
			m.logger.Warn("HTTP request", fields...)
			return
		}
		m.logger.Info("HTTP request", fields...)
	})
}

// RecoveryMiddleware turns handler panics into a JSON 500 without exposing the panic
type RecoveryMiddleware struct {
	logger domain.Logger
}

// NewRecoveryMiddleware creates a new panic recovery middleware
func NewRecoveryMiddleware(logger domain.Logger) *RecoveryMiddleware {
	return &RecoveryMiddleware{logger: logger}
}

// Middleware returns the HTTP middleware function
func (m *RecoveryMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			requestID, _ := GetRequestIDFromContext(r.Context())
			m.logger.Error("Recovered from handler panic", fmt.Errorf("%v", rec), "path", r.URL.Path, "request_id", requestID)
			writeAPIError(w, apperrors.NewUnknownError(errors.New("unexpected internal error")))
		}()
		next.ServeHTTP(w, r)
	})
}
