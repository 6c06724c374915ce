package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"pdf-reader-api/internal/domain"
	apperrors "pdf-reader-api/pkg/errors"
)

// PDFExtractor extracts per-page text through a pluggable PDF engine
type PDFExtractor struct {
	opener domain.DocumentOpener
	engine string
	logger domain.Logger
}

// NewPDFExtractor creates a new extractor for the given engine
func NewPDFExtractor(engine string, opener domain.DocumentOpener, logger domain.Logger) *PDFExtractor {
	return &PDFExtractor{
		opener: opener,
		engine: engine,
		logger: logger,
	}
}

// Engine returns the engine name used in logs
func (p *PDFExtractor) Engine() string {
	return p.engine
}

// Extract opens data as a PDF and collects the text of every non-blank page.
// Open failures are parse errors; anything after a successful open is an
// extraction error. The document is closed exactly once on every path,
// including cancellation of ctx while a page is being read.
func (p *PDFExtractor) Extract(ctx context.Context, data []byte) (result *domain.ExtractionResult, err error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewExtractionError(err)
	}

	doc, err := p.open(data)
	if err != nil {
		return nil, apperrors.NewParseError(err)
	}

	guard := &documentGuard{doc: doc}
	stop := context.AfterFunc(ctx, func() {
		if cerr := guard.release(); cerr != nil {
			p.logger.Warn("Failed to close PDF document after cancellation", "engine", p.engine, "error", cerr)
		}
	})
	defer func() {
		stop()
		if cerr := guard.release(); cerr != nil {
			p.logger.Warn("Failed to close PDF document", "engine", p.engine, "error", cerr)
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = apperrors.NewExtractionError(fmt.Errorf("panic during text extraction: %v", r))
		}
	}()

	numPages, err := guard.numPage()
	if err != nil {
		return nil, apperrors.NewExtractionError(err)
	}

	result = &domain.ExtractionResult{TotalPages: numPages}
	for pageNum := 0; pageNum < numPages; pageNum++ {
		if cerr := ctx.Err(); cerr != nil {
			return nil, apperrors.NewExtractionError(cerr)
		}

		p.logger.Debug("PDF processing page", "engine", p.engine, "page", pageNum+1, "total", numPages)
		text, terr := guard.text(pageNum)
		if terr != nil {
			if errors.Is(terr, domain.ErrDocumentClosed) && ctx.Err() != nil {
				terr = ctx.Err()
			}
			return nil, apperrors.NewExtractionError(fmt.Errorf("page %d: %w", pageNum+1, terr))
		}
		result.AddPage(pageNum+1, text)
	}

	return result, nil
}

// open calls the engine, turning engine panics into errors
func (p *PDFExtractor) open(data []byte) (doc domain.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("%v", r)
		}
	}()

	doc, err = p.opener.Open(data)
	if err != nil {
		if doc != nil {
			_ = doc.Close()
		}
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("engine returned no document")
	}
	return doc, nil
}

// documentGuard serialises access to a document and closes it once
type documentGuard struct {
	mu       sync.Mutex
	doc      domain.Document
	closed   bool
	once     sync.Once
	closeErr error
}

func (g *documentGuard) numPage() (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return 0, domain.ErrDocumentClosed
	}
	return g.doc.NumPage(), nil
}

func (g *documentGuard) text(page int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return "", domain.ErrDocumentClosed
	}
	return g.doc.Text(page)
}

// release waits for an in-flight page read before closing
func (g *documentGuard) release() error {
	g.once.Do(func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		g.closed = true
		g.closeErr = g.doc.Close()
	})
	return g.closeErr
}
