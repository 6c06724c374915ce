package service

import (
	"context"
	"time"

	"pdf-reader-api/internal/domain"
	apperrors "pdf-reader-api/pkg/errors"
)

// PDFService implements the read-pdf pipeline: validate, extract, shape
type PDFService struct {
	validator      *UploadValidator
	extractor      domain.TextExtractor
	extractTimeout time.Duration
	logger         domain.Logger
}

// NewPDFService creates a new PDF service instance.
// A zero extractTimeout leaves extraction bounded only by the request context.
func NewPDFService(
	validator *UploadValidator,
	extractor domain.TextExtractor,
	extractTimeout time.Duration,
	logger domain.Logger,
) *PDFService {
	return &PDFService{
		validator:      validator,
		extractor:      extractor,
		extractTimeout: extractTimeout,
		logger:         logger,
	}
}

// ReadPDF validates the upload, extracts its text and builds the success body.
// Every returned error is an *apperrors.APIError.
func (s *PDFService) ReadPDF(ctx context.Context, upload *domain.UploadRequest) (*domain.ReadPDFResponse, error) {
	if err := s.validator.Validate(upload); err != nil {
		s.logger.Info("PDF upload rejected", "reason", err.Error(), "status", apperrors.GetStatusCode(err))
		return nil, err
	}

	if s.extractTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.extractTimeout)
		defer cancel()
	}

	start := time.Now()
	result, err := s.extractor.Extract(ctx, upload.Data)
	if err != nil {
		apiErr := apperrors.AsAPIError(err)
		if apiErr.StatusCode >= 500 {
			s.logger.Error("PDF extraction failed", apiErr, "filename", upload.Filename, "size", upload.Size)
		} else {
			s.logger.Info("PDF could not be opened", "filename", upload.Filename, "reason", apiErr.Message)
		}
		return nil, apiErr
	}

	s.logger.Info("PDF extracted",
		"filename", upload.Filename,
		"size", upload.Size,
		"pages", result.PageCount,
		"total_pages", result.TotalPages,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return domain.NewReadPDFResponse(upload.Filename, result), nil
}
