package lang

import (
	"github.com/pemistahl/lingua-go"
)

// LinguaDetector implements Detector on top of the lingua n-gram models.
// Building the detector loads the models for all supported languages, so
// construct it once at startup and share it across documents; detection
// itself is read-only and safe for concurrent use.
type LinguaDetector struct {
	detector lingua.LanguageDetector
}

// NewLinguaDetector builds a detector restricted to the supported language set.
func NewLinguaDetector() *LinguaDetector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.German, lingua.Spanish).
		Build()
	return &LinguaDetector{detector: detector}
}

// Detect identifies the language of text. Degenerate input (empty text,
// bare digits) yields ErrUndetermined rather than a guess.
func (d *LinguaDetector) Detect(text string) (Code, error) {
	detected, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", ErrUndetermined
	}

	switch detected {
	case lingua.English:
		return English, nil
	case lingua.German:
		return German, nil
	case lingua.Spanish:
		return Spanish, nil
	}
	return "", ErrUndetermined
}
