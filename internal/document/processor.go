package document

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"invoscan/internal/extract"
	"invoscan/internal/lang"
	"invoscan/internal/logger"
	"invoscan/internal/ner"
)

// PageResult is the per-page outcome: the raw OCR text, the detected
// language and the extracted fields.
type PageResult struct {
	Number int            `json:"page"`
	Lang   lang.Code      `json:"lang"`
	Text   string         `json:"-"`
	Fields extract.Result `json:"fields"`
}

// Processor runs language detection, the five field extractors and entity
// fusion over one page of raw text. It holds no mutable state across
// calls; the result is a pure function of (text, detector, recognizer).
type Processor struct {
	detector   lang.Detector
	recognizer ner.Recognizer
	opts       extract.Options
	log        zerolog.Logger
}

// NewProcessor creates a page processor with injected collaborators.
func NewProcessor(detector lang.Detector, recognizer ner.Recognizer, opts extract.Options) *Processor {
	return &Processor{
		detector:   detector,
		recognizer: recognizer,
		opts:       opts,
		log:        logger.WithComponent("page"),
	}
}

// ProcessPage extracts all fields from one page of raw text. Detector
// failure falls back to English and never propagates; recognizer failure
// degrades to rule-only names.
func (p *Processor) ProcessPage(ctx context.Context, number int, text string) PageResult {
	code, err := p.detector.Detect(text)
	if err != nil {
		if !errors.Is(err, lang.ErrUndetermined) {
			p.log.Warn().Err(err).Int("page", number).Msg("language detection failed, defaulting to en")
		}
		code = lang.English
	}
	p.log.Info().Int("page", number).Str("lang", string(code)).Msg("language detected")

	entities, err := p.recognizer.Entities(ctx, text, code)
	if err != nil {
		p.log.Warn().Err(err).Int("page", number).Msg("entity recognition failed, using rule-derived names only")
		entities = nil
	}

	fields := extract.Result{
		InvoiceNumber: extract.InvoiceNumber(text, code),
		Dates:         extract.Dates(text, code),
		IBANs:         extract.IBANs(text),
		Names:         extract.Names(text, code, entities, p.opts),
		Amounts:       extract.Amounts(text, code),
	}

	return PageResult{
		Number: number,
		Lang:   code,
		Text:   text,
		Fields: fields,
	}
}
