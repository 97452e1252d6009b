package document

import "errors"

// Common document processing errors
var (
	// ErrUnsupportedFormat is returned when the source file extension is
	// not one of .pdf, .jpg, .jpeg or .png. The run terminates with no
	// partial output.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrNoPages is returned when loading the source yields no page images.
	ErrNoPages = errors.New("document has no pages")
)
