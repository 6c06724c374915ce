package domain

import "strings"

// PageSeparator joins the text of consecutive extracted pages
const PageSeparator = "\n\n"

// DefaultMaxFileSize is the upload limit used when none is configured (100 MiB)
const DefaultMaxFileSize int64 = 100 * 1024 * 1024

// UploadRequest is a buffered multipart upload.
// Size is the number of bytes the client sent for the file. Data holds the
// complete upload whenever Size is within the configured limit.
type UploadRequest struct {
	Filename    string
	ContentType string
	Data        []byte
	Size        int64
}

// ExtractedPage is the text of one page that had non-blank content
type ExtractedPage struct {
	PageNumber int    `json:"page"` // 1-indexed
	Text       string `json:"text"`
}

// ExtractionResult holds the non-blank pages of a document in page order
type ExtractionResult struct {
	Pages      []ExtractedPage `json:"pages"`
	PageCount  int             `json:"page_count"`
	TotalPages int             `json:"total_pages"`
}

// AddPage appends a page when its trimmed text is non-empty.
// The stored text is left untrimmed.
func (r *ExtractionResult) AddPage(pageNumber int, text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	r.Pages = append(r.Pages, ExtractedPage{PageNumber: pageNumber, Text: text})
	r.PageCount = len(r.Pages)
	return true
}

// Text joins all page texts with PageSeparator
func (r *ExtractionResult) Text() string {
	texts := make([]string, 0, len(r.Pages))
	for _, p := range r.Pages {
		texts = append(texts, p.Text)
	}
	return strings.Join(texts, PageSeparator)
}

// ReadPDFResponse is the success body of a read-pdf request
type ReadPDFResponse struct {
	Success  bool   `json:"success"`
	Text     string `json:"text"`
	Pages    int    `json:"pages"`
	Filename string `json:"filename"`
}

// NewReadPDFResponse shapes an extraction result for the wire
func NewReadPDFResponse(filename string, result *ExtractionResult) *ReadPDFResponse {
	resp := &ReadPDFResponse{
		Success:  true,
		Filename: filename,
	}
	if result != nil {
		resp.Text = result.Text()
		resp.Pages = len(result.Pages)
	}
	return resp
}

// ErrorResponse is the failure body of every endpoint
type ErrorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}
