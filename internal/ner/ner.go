// Package ner is the boundary to the statistical named-entity model. The
// model is a black box to the extraction engine: it takes page text and
// yields person/organization-class entity strings in match order.
package ner

import (
	"context"

	"invoscan/internal/lang"
)

// Recognizer extracts person/organization-class entities from page text.
// Implementations may fail on degenerate input; callers treat a failure as
// "no entities" and keep processing the page.
type Recognizer interface {
	Entities(ctx context.Context, text string, code lang.Code) ([]string, error)
}
