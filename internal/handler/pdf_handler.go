package handler

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"pdf-reader-api/internal/domain"
	apperrors "pdf-reader-api/pkg/errors"
)

const uploadFieldName = "file"

// PDFHandler serves one read-pdf endpoint backed by a single engine
type PDFHandler struct {
	path        string
	description string
	reader      domain.PDFReader
	maxFileSize int64
	logger      domain.Logger
}

// NewPDFHandler creates a new PDF handler instance.
// maxFileSize bounds how much of an upload is buffered in memory.
func NewPDFHandler(path, description string, reader domain.PDFReader, maxFileSize int64, logger domain.Logger) *PDFHandler {
	if maxFileSize <= 0 {
		maxFileSize = domain.DefaultMaxFileSize
	}
	return &PDFHandler{
		path:        path,
		description: description,
		reader:      reader,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Path returns the route the handler is mounted on
func (h *PDFHandler) Path() string {
	return h.path
}

// Description is shown in the root endpoint map
func (h *PDFHandler) Description() string {
	return h.description
}

// ReadPDF handles multipart PDF uploads and returns the extracted text
func (h *PDFHandler) ReadPDF(w http.ResponseWriter, r *http.Request) {
	upload, err := readUpload(r, h.maxFileSize)
	if err != nil {
		requestID, _ := GetRequestIDFromContext(r.Context())
		h.logger.Warn("Failed to read upload", "path", h.path, "request_id", requestID, "error", err)
		writeAPIError(w, err)
		return
	}

	resp, err := h.reader.ReadPDF(r.Context(), upload)
	if err != nil {
		writeAPIError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// readUpload buffers the "file" part, or else the first part carrying a filename.
// A fallback part is held until the body ends in case a "file" part follows it.
// At most maxFileSize+1 bytes are kept per part; the rest of an oversized part
// is counted and discarded so Size always reports what the client sent.
func readUpload(r *http.Request, maxFileSize int64) (*domain.UploadRequest, error) {
	noFile := apperrors.NewValidationError(http.StatusBadRequest, "No file provided")

	mr, err := r.MultipartReader()
	if err != nil {
		return nil, noFile
	}

	var fallback *domain.UploadRequest
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			if fallback != nil {
				return fallback, nil
			}
			return nil, noFile
		}
		if err != nil {
			return nil, apperrors.NewValidationError(http.StatusBadRequest, "Failed to read upload: "+err.Error())
		}

		named := part.FormName() == uploadFieldName
		filename := partFilename(part)
		if !named && (filename == "" || fallback != nil) {
			_ = part.Close()
			continue
		}

		upload, err := bufferPart(part, filename, maxFileSize)
		_ = part.Close()
		if err != nil {
			return nil, apperrors.NewValidationError(http.StatusBadRequest, "Failed to read upload: "+err.Error())
		}
		if named {
			return upload, nil
		}
		fallback = upload
	}
}

// partFilename returns the filename parameter exactly as the client sent it.
// multipart.Part.FileName strips directories, so the disposition is parsed here.
func partFilename(part *multipart.Part) string {
	_, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
	if err != nil {
		return part.FileName()
	}
	return params["filename"]
}

func bufferPart(part *multipart.Part, filename string, maxFileSize int64) (*domain.UploadRequest, error) {
	upload := &domain.UploadRequest{
		Filename:    filename,
		ContentType: part.Header.Get("Content-Type"),
	}

	data, err := io.ReadAll(io.LimitReader(part, maxFileSize+1))
	if err != nil {
		return nil, err
	}
	upload.Size = int64(len(data))

	if upload.Size > maxFileSize {
		rest, err := io.Copy(io.Discard, part)
		if err != nil {
			return nil, err
		}
		upload.Size += rest
		data = nil
	}
	upload.Data = data
	return upload, nil
}
