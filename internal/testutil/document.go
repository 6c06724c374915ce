package testutil

import (
	"errors"
	"sync"

	"pdf-reader-api/internal/domain"
)

// FakeDocument is an in-memory domain.Document that counts Close calls.
// PageErrors and PagePanics are keyed by 0-indexed page.
type FakeDocument struct {
	Pages      []string
	PageErrors map[int]error
	PagePanics map[int]interface{}
	CloseErr   error
	// OnText runs before a page is read, outside any lock held by the fake.
	OnText func(page int)

	mu         sync.Mutex
	closeCalls int
	textCalls  int
}

func (d *FakeDocument) NumPage() int {
	return len(d.Pages)
}

func (d *FakeDocument) Text(page int) (string, error) {
	if d.OnText != nil {
		d.OnText(page)
	}
	d.mu.Lock()
	d.textCalls++
	closed := d.closeCalls > 0
	d.mu.Unlock()

	if closed {
		return "", errors.New("text read after close")
	}
	if v, ok := d.PagePanics[page]; ok {
		panic(v)
	}
	if err, ok := d.PageErrors[page]; ok {
		return "", err
	}
	return d.Pages[page], nil
}

func (d *FakeDocument) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closeCalls++
	return d.CloseErr
}

// CloseCalls reports how many times Close was called
func (d *FakeDocument) CloseCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closeCalls
}

// TextCalls reports how many pages were read
func (d *FakeDocument) TextCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.textCalls
}

// FakeOpener hands out a fresh FakeDocument per Open and records them
type FakeOpener struct {
	NewDocument func() *FakeDocument
	OpenErr     error
	OpenPanic   interface{}

	mu     sync.Mutex
	opened []*FakeDocument
}

// Open implements domain.DocumentOpener
func (o *FakeOpener) Open(data []byte) (domain.Document, error) {
	if o.OpenPanic != nil {
		panic(o.OpenPanic)
	}
	if o.OpenErr != nil {
		return nil, o.OpenErr
	}
	doc := o.NewDocument()
	o.mu.Lock()
	o.opened = append(o.opened, doc)
	o.mu.Unlock()
	return doc, nil
}

// Opened returns every document handed out so far
func (o *FakeOpener) Opened() []*FakeDocument {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]*FakeDocument(nil), o.opened...)
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Info(msg string, fields ...interface{})             {}
func (NopLogger) Error(msg string, err error, fields ...interface{}) {}
func (NopLogger) Debug(msg string, fields ...interface{})            {}
func (NopLogger) Warn(msg string, fields ...interface{})             {}
