package handler

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type recordingLogger struct {
	mu     sync.Mutex
	infos  []string
	warns  []string
	errors []string
}

func (l *recordingLogger) Info(msg string, fields ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Error(msg string, err error, fields ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg+": "+err.Error())
}

func (l *recordingLogger) Debug(msg string, fields ...interface{}) {}

func (l *recordingLogger) Warn(msg string, fields ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func TestRequestIDMiddleware_Generates(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetRequestIDFromContext(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatalf("expected request id in context")
	}
	if rr.Header().Get(RequestIDHeader) != seen {
		t.Fatalf("expected response header %q, got %q", seen, rr.Header().Get(RequestIDHeader))
	}
}

func TestRequestIDMiddleware_Propagates(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetRequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if seen != "abc-123" {
		t.Fatalf("expected propagated id abc-123, got %q", seen)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	logger := &recordingLogger{}
	h := NewRecoveryMiddleware(logger).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map write in /srv/internal/secret.go:42")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/pymupdf/read-pdf", nil))

	assertAPIError(t, rr, http.StatusInternalServerError, "Error processing PDF: unexpected internal error")
	if len(logger.errors) != 1 {
		t.Fatalf("expected panic to be logged once, got %v", logger.errors)
	}
}

func TestLoggingMiddleware(t *testing.T) {
	logger := &recordingLogger{}
	mw := NewLoggingMiddleware(logger).Middleware

	ok := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}))
	failing := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "boom")
	}))

	ok.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	failing.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/x", nil))

	if len(logger.infos) != 1 || logger.infos[0] != "HTTP request" {
		t.Fatalf("expected one info access line, got %v", logger.infos)
	}
	if len(logger.warns) != 1 {
		t.Fatalf("expected 5xx to be logged at warn, got %v", logger.warns)
	}
}
