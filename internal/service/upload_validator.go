package service

import (
	"fmt"
	"net/http"
	"strings"

	"pdf-reader-api/internal/domain"
	apperrors "pdf-reader-api/pkg/errors"
)

const (
	pdfExtension   = ".pdf"
	pdfContentType = "application/pdf"
	bytesPerMB     = 1024 * 1024
)

// UploadValidator rejects uploads before any parsing is attempted
type UploadValidator struct {
	maxFileSize int64
}

// NewUploadValidator creates a validator with an inclusive size limit in bytes
func NewUploadValidator(maxFileSize int64) *UploadValidator {
	if maxFileSize <= 0 {
		maxFileSize = domain.DefaultMaxFileSize
	}
	return &UploadValidator{maxFileSize: maxFileSize}
}

// MaxFileSize returns the inclusive upload limit in bytes
func (v *UploadValidator) MaxFileSize() int64 {
	return v.maxFileSize
}

// Validate runs the upload checks in order and returns the first failure
// as an *apperrors.APIError.
func (v *UploadValidator) Validate(upload *domain.UploadRequest) error {
	if upload == nil {
		return apperrors.NewValidationError(http.StatusBadRequest, "No file provided")
	}

	checks := []func(*domain.UploadRequest) error{
		requireFilename,
		requirePDFExtension,
		requirePDFContentType,
		v.requireWithinLimit,
		requireNonEmpty,
	}
	for _, check := range checks {
		if err := check(upload); err != nil {
			return err
		}
	}
	return nil
}

func requireFilename(upload *domain.UploadRequest) error {
	if upload.Filename == "" {
		return apperrors.NewValidationError(http.StatusBadRequest, "No file provided")
	}
	return nil
}

func requirePDFExtension(upload *domain.UploadRequest) error {
	if !strings.HasSuffix(strings.ToLower(upload.Filename), pdfExtension) {
		return apperrors.NewValidationError(http.StatusBadRequest,
			"Invalid file type. Expected PDF, got: "+upload.Filename)
	}
	return nil
}

func requirePDFContentType(upload *domain.UploadRequest) error {
	if upload.ContentType != "" && upload.ContentType != pdfContentType {
		return apperrors.NewValidationError(http.StatusBadRequest,
			"Invalid content type. Expected application/pdf, got: "+upload.ContentType)
	}
	return nil
}

func (v *UploadValidator) requireWithinLimit(upload *domain.UploadRequest) error {
	size := uploadSize(upload)
	if size > v.maxFileSize {
		return apperrors.NewValidationError(http.StatusRequestEntityTooLarge, fmt.Sprintf(
			"File too large. Maximum size is %.0fMB, got %.2fMB",
			float64(v.maxFileSize)/bytesPerMB, float64(size)/bytesPerMB,
		))
	}
	return nil
}

func requireNonEmpty(upload *domain.UploadRequest) error {
	if uploadSize(upload) == 0 {
		return apperrors.NewValidationError(http.StatusBadRequest, "File is empty")
	}
	return nil
}

// uploadSize prefers the counted size and falls back to the buffer length
func uploadSize(upload *domain.UploadRequest) int64 {
	if upload.Size > 0 {
		return upload.Size
	}
	return int64(len(upload.Data))
}
