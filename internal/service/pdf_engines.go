package service

import (
	"bytes"

	"pdf-reader-api/internal/domain"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

// FitzOpener opens documents with MuPDF through go-fitz
type FitzOpener struct{}

// NewFitzOpener creates a MuPDF-backed opener
func NewFitzOpener() *FitzOpener {
	return &FitzOpener{}
}

// Open implements domain.DocumentOpener.
// *fitz.Document already satisfies domain.Document.
func (FitzOpener) Open(data []byte) (domain.Document, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// LedongthucOpener opens documents with the pure Go ledongthuc/pdf reader
type LedongthucOpener struct{}

// NewLedongthucOpener creates a pure Go opener
func NewLedongthucOpener() *LedongthucOpener {
	return &LedongthucOpener{}
}

// Open implements domain.DocumentOpener
func (LedongthucOpener) Open(data []byte) (domain.Document, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	return &ledongthucDocument{reader: reader}, nil
}

type ledongthucDocument struct {
	reader *pdf.Reader
}

func (d *ledongthucDocument) NumPage() int {
	if d.reader == nil {
		return 0
	}
	return d.reader.NumPage()
}

// Text extracts plain text from a 0-indexed page
func (d *ledongthucDocument) Text(page int) (string, error) {
	if d.reader == nil {
		return "", domain.ErrDocumentClosed
	}
	p := d.reader.Page(page + 1)
	if p.V.IsNull() {
		return "", nil
	}
	return p.GetPlainText(nil)
}

// Close drops the reader; the library holds no native resources
func (d *ledongthucDocument) Close() error {
	d.reader = nil
	return nil
}
