// Package lang defines the closed set of languages the extraction engine
// understands and the boundary to the statistical language detector.
//
// Every page is assigned exactly one Code. Rule packs are keyed by Code;
// anything outside the supported set is handled through the English
// fallback, so callers never have to branch on unknown languages.
package lang

import "errors"

// Code identifies a supported document language.
type Code string

const (
	English Code = "en"
	German  Code = "de"
	Spanish Code = "es"

	// Default is the wildcard used by the rule registry for languages
	// without a dedicated pack.
	Default Code = "default"
)

// Supported returns the closed set of languages with dedicated rule packs.
func Supported() []Code {
	return []Code{English, German, Spanish}
}

// ErrUndetermined is returned by a Detector when the input gives no usable
// signal (empty or too-short text). Callers recover by defaulting to English;
// the error never propagates past the page processor.
var ErrUndetermined = errors.New("language could not be determined")

// Detector is the boundary to the statistical language-identification model.
type Detector interface {
	Detect(text string) (Code, error)
}
