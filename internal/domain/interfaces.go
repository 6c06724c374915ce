package domain

import (
	"context"
	"time"
)

// Document is an opened PDF owned by an external parsing engine.
// Pages are 0-indexed. Close releases engine resources and must be called once.
type Document interface {
	NumPage() int
	Text(page int) (string, error)
	Close() error
}

// DocumentOpener opens a PDF held entirely in memory
type DocumentOpener interface {
	Open(data []byte) (Document, error)
}

// TextExtractor turns a validated PDF buffer into per-page text
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (*ExtractionResult, error)
}

// PDFReader is the request-level operation behind a read-pdf endpoint
type PDFReader interface {
	ReadPDF(ctx context.Context, upload *UploadRequest) (*ReadPDFResponse, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetLogFormat() string
	GetAllowedOrigins() []string
	GetReadTimeout() time.Duration
	GetReadHeaderTimeout() time.Duration
	GetWriteTimeout() time.Duration
	GetIdleTimeout() time.Duration
	GetExtractTimeout() time.Duration
}
