// Package ocr provides OCR (Optical Character Recognition) for single page
// images of scanned invoices.
//
// Two backends are available: a local Tesseract engine via gosseract
// (default, requires tesseract to be installed with the eng/deu/spa
// training data) and Google Cloud Vision document text detection.
//
// OCR is never language-gated: every call carries the full set of
// supported languages as hints, and only the downstream field extraction
// branches per language.
package ocr

import (
	"context"

	"invoscan/internal/lang"
)

// Service defines the interface for OCR text extraction backends.
type Service interface {
	// Recognize extracts the raw text of one page image (PNG, JPEG or
	// TIFF encoded). languageHints is the set of languages the text may
	// be written in; backends map the codes to their own vocabulary.
	Recognize(ctx context.Context, image []byte, languageHints []lang.Code) (string, error)

	// Close releases backend resources.
	Close() error
}
