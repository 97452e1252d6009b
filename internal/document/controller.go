// Package document orchestrates the page-by-page extraction pipeline:
// load pages, enhance, OCR, extract, and stop early once any field has
// been found or the page ceiling is reached.
package document

import (
	"context"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"invoscan/internal/extract"
	"invoscan/internal/lang"
	"invoscan/internal/logger"
	"invoscan/internal/ocr"
	"invoscan/internal/preprocess"
	"invoscan/internal/raster"
)

// StopReason tells why page iteration ended.
type StopReason string

const (
	// StopFieldsFound: the current page produced at least one non-empty field.
	StopFieldsFound StopReason = "fields_found"
	// StopPageCeiling: the configured page ceiling was reached.
	StopPageCeiling StopReason = "page_ceiling"
	// StopExhausted: every page was processed without an early stop.
	StopExhausted StopReason = "exhausted"
)

// Config bounds a controller run.
type Config struct {
	// MaxPages is the hard page-count ceiling. Iteration never goes past
	// it regardless of the stop condition. Relevant invoice fields sit on
	// page 1 or 2 in the common case, so the default trades recall on
	// later pages for bounded latency.
	MaxPages int

	// OutputFile receives the accumulated raw text of every processed
	// page, overwritten each run, UTF-8. Empty disables the artifact.
	OutputFile string
}

// Result is the final outcome of one document run.
type Result struct {
	Format raster.Format `json:"format"`
	// Text is the accumulated raw text of every processed page, in page
	// order. A page whose OCR failed or was cancelled contributes nothing.
	Text   string         `json:"-"`
	Pages  []PageResult   `json:"pages"`
	// Fields is the last computed per-page extraction result.
	Fields extract.Result `json:"fields"`
	Reason StopReason     `json:"reason"`
}

// Controller iterates a document's pages in order, strictly sequentially:
// the early-stop decision needs each page's full result before moving on.
// One controller owns one document run; rule packs and the collaborators'
// models are shared, controllers are not.
type Controller struct {
	cfg       Config
	source    PageSource
	ocr       ocr.Service
	processor *Processor
	log       zerolog.Logger
}

// NewController creates a document controller with injected collaborators.
func NewController(cfg Config, source PageSource, ocrService ocr.Service, processor *Processor) *Controller {
	if cfg.MaxPages < 1 {
		cfg.MaxPages = 1
	}
	return &Controller{
		cfg:       cfg,
		source:    source,
		ocr:       ocrService,
		processor: processor,
		log:       logger.WithComponent("document"),
	}
}

// Process runs the full pipeline over the document at path.
func (c *Controller) Process(ctx context.Context, path string) (*Result, error) {
	format := raster.DetectFormat(path)
	if format == raster.FormatUnsupported {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	pages, err := c.source.Pages(ctx, path, format, c.cfg.MaxPages)
	if err != nil {
		return nil, fmt.Errorf("load pages: %w", err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoPages, path)
	}

	result := &Result{Format: format, Reason: StopExhausted}
	var buf strings.Builder

	for i, img := range pages {
		if i >= c.cfg.MaxPages {
			result.Reason = StopPageCeiling
			break
		}

		text, err := c.recognizePage(ctx, img)
		if err != nil {
			if ctx.Err() != nil {
				// A cancelled page contributes nothing, not a partial string.
				return nil, err
			}
			c.log.Warn().Err(err).Int("page", i+1).Msg("OCR failed, recording page as empty")
			text = ""
		}

		page := c.processor.ProcessPage(ctx, i+1, text)
		buf.WriteString(text)
		result.Pages = append(result.Pages, page)
		result.Fields = page.Fields
		c.report(page)

		if page.Fields.HasAny() {
			result.Reason = StopFieldsFound
			break
		}
	}
	result.Text = buf.String()

	if c.cfg.OutputFile != "" {
		if err := os.WriteFile(c.cfg.OutputFile, []byte(result.Text), 0644); err != nil {
			return nil, fmt.Errorf("write text artifact: %w", err)
		}
		c.log.Info().Str("file", c.cfg.OutputFile).Int("bytes", len(result.Text)).Msg("raw text written")
	}

	return result, nil
}

func (c *Controller) recognizePage(ctx context.Context, img image.Image) (string, error) {
	enhanced := preprocess.Enhance(img)
	encoded, err := preprocess.EncodePNG(enhanced)
	if err != nil {
		return "", fmt.Errorf("encode page: %w", err)
	}
	return c.ocr.Recognize(ctx, encoded, lang.Supported())
}

// report logs the per-page extraction outcome, with explicit "not found"
// signaling for every empty field.
func (c *Controller) report(page PageResult) {
	log := c.log.With().Int("page", page.Number).Logger()

	if page.Fields.InvoiceNumber != "" {
		log.Info().Str("invoice_number", page.Fields.InvoiceNumber).Msg("invoice number found")
	} else {
		log.Info().Msg("invoice number not found")
	}

	for _, f := range []struct {
		name   string
		values []string
	}{
		{"dates", page.Fields.Dates},
		{"ibans", page.Fields.IBANs},
		{"names", page.Fields.Names},
		{"amounts", page.Fields.Amounts},
	} {
		if len(f.values) > 0 {
			log.Info().Strs(f.name, f.values).Msg(f.name + " found")
		} else {
			log.Info().Msg(f.name + " not found")
		}
	}
}
