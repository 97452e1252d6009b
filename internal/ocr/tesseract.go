package ocr

import (
	"context"

	"github.com/otiai10/gosseract/v2"
	"invoscan/internal/lang"
)

// tesseractLangs maps language codes to Tesseract training-data names.
var tesseractLangs = map[lang.Code]string{
	lang.English: "eng",
	lang.German:  "deu",
	lang.Spanish: "spa",
}

// TesseractService implements Service with a local Tesseract engine.
// The underlying client is stateful, so a service instance must not be
// shared across concurrent documents; create one per document run.
type TesseractService struct {
	client *gosseract.Client
}

// NewTesseractService creates a Tesseract-backed OCR service. Tesseract
// must be installed on the system (apt-get install tesseract-ocr plus the
// tesseract-ocr-deu and tesseract-ocr-spa language packs).
func NewTesseractService() (*TesseractService, error) {
	return &TesseractService{client: gosseract.NewClient()}, nil
}

// Recognize runs Tesseract over one page image with the given language hints.
func (s *TesseractService) Recognize(ctx context.Context, image []byte, languageHints []lang.Code) (string, error) {
	const op = "Recognize"

	if err := ctx.Err(); err != nil {
		return "", WrapOCRError(op, err, "")
	}

	langs := make([]string, 0, len(languageHints))
	for _, hint := range languageHints {
		if tl, ok := tesseractLangs[hint]; ok {
			langs = append(langs, tl)
		}
	}
	if len(langs) == 0 {
		langs = []string{tesseractLangs[lang.English]}
	}

	if err := s.client.SetLanguage(langs...); err != nil {
		return "", WrapOCRError(op, err, "failed to set languages")
	}
	if err := s.client.SetImageFromBytes(image); err != nil {
		return "", WrapOCRError(op, ErrInvalidImage, err.Error())
	}

	text, err := s.client.Text()
	if err != nil {
		return "", WrapOCRError(op, ErrOCRFailed, err.Error())
	}
	return text, nil
}

// Close releases the Tesseract client.
func (s *TesseractService) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
