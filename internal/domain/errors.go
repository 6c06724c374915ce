package domain

import "errors"

// Domain errors
var (
	ErrDocumentClosed = errors.New("document is closed")
)
