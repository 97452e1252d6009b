package ner

import (
	"context"

	"github.com/jdkato/prose/v2"
	"invoscan/internal/lang"
)

// entityLabels are the prose labels treated as person/organization-class.
var entityLabels = map[string]struct{}{
	"PERSON": {},
	"GPE":    {},
	"ORG":    {},
}

// ProseRecognizer implements Recognizer with the prose statistical model.
// The bundled model is trained on English text; German and Spanish pages
// still go through it (the contract makes no language promise), but on
// those pages the labeled-field rules carry most of the recall.
type ProseRecognizer struct{}

func NewProseRecognizer() *ProseRecognizer {
	return &ProseRecognizer{}
}

// Entities runs the model over text and keeps person/organization-class
// entities in their original order.
func (r *ProseRecognizer) Entities(ctx context.Context, text string, code lang.Code) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, err
	}

	var out []string
	for _, ent := range doc.Entities() {
		if _, ok := entityLabels[ent.Label]; ok {
			out = append(out, ent.Text)
		}
	}
	return out, nil
}
