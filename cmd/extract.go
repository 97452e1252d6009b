package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"invoscan/internal/document"
	"invoscan/internal/extract"
	"invoscan/internal/lang"
	"invoscan/internal/logger"
	"invoscan/internal/ner"
	"invoscan/internal/ocr"
	"invoscan/internal/raster"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract invoice fields from a scanned document",
	Long: `Process a scanned invoice (.pdf, .jpg, .jpeg or .png) and extract its
fields: invoice number, dates, IBANs, names and amounts.

Each page is rasterized, enhanced and OCRed in turn; the language of the
page text is detected and the matching rule pack applied. Processing
stops once a page yields any field, and never inspects more than the
first --max-pages pages. The accumulated raw text of every processed
page is written to the output artifact.

The default OCR backend is a local Tesseract engine (requires the
tesseract-ocr package with eng/deu/spa training data and pdftoppm from
poppler-utils). The "vision" backend uses Google Cloud Vision instead
and needs GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_CREDENTIALS.`,
	Example: `  # Extract fields from a scanned PDF invoice
  invoscan extract invoice.pdf

  # Single-page image, raw text artifact to a custom path
  invoscan extract receipt.jpg -o recovered.txt

  # Scan up to 4 pages, dedup names, JSON result to stdout
  invoscan extract invoice.pdf --max-pages 4 --dedup-names --json`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("output", "o", "", "Raw text artifact path (default from OUTPUT_FILE)")
	extractCmd.Flags().Int("max-pages", 0, "Page ceiling (default from MAX_PAGES, 2)")
	extractCmd.Flags().Bool("dedup-names", false, "Case-insensitive dedup of fused names")
	extractCmd.Flags().String("ocr", "", "OCR backend: tesseract or vision (default from OCR_BACKEND)")
	extractCmd.Flags().Bool("json", false, "Print the final result as JSON")
	extractCmd.Flags().Int("timeout", 300, "Processing timeout in seconds")
}

func runExtract(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("extract")

	outputPath, _ := cmd.Flags().GetString("output")
	maxPages, _ := cmd.Flags().GetInt("max-pages")
	dedupNames, _ := cmd.Flags().GetBool("dedup-names")
	backend, _ := cmd.Flags().GetString("ocr")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	timeoutSecs, _ := cmd.Flags().GetInt("timeout")

	if outputPath == "" {
		outputPath = cfg.OutputFile
	}
	if maxPages <= 0 {
		maxPages = cfg.MaxPages
	}
	if backend == "" {
		backend = cfg.OCRBackend
	}
	if !dedupNames {
		dedupNames = cfg.DedupNames
	}

	path := args[0]
	log.Info().
		Str("file", path).
		Str("ocr", backend).
		Int("max_pages", maxPages).
		Bool("dedup_names", dedupNames).
		Msg("Starting extraction")

	ctx, cancel := createContextWithTimeout(timeoutSecs, log)
	defer cancel()

	ocrService, err := createOCRService(ctx, backend)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := ocrService.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("Failed to close OCR service")
		}
	}()

	// Detector and recognizer models load once per process and are
	// injected; the extraction engine never reaches for globals.
	processor := document.NewProcessor(
		lang.NewLinguaDetector(),
		ner.NewProseRecognizer(),
		extract.Options{DedupNames: dedupNames},
	)
	source := document.NewRasterSource(raster.NewRasterizer(cfg.PdftoppmBin, cfg.RasterDPI))
	controller := document.NewController(
		document.Config{MaxPages: maxPages, OutputFile: outputPath},
		source, ocrService, processor,
	)

	start := time.Now()
	result, err := controller.Process(ctx, path)
	if err != nil {
		if errors.Is(err, document.ErrUnsupportedFormat) {
			// Terminal state, not a failure: report and exit cleanly.
			fmt.Fprintf(os.Stderr, "Unsupported file format: %s (expected .pdf, .jpg, .jpeg or .png)\n", path)
			return nil
		}
		log.Error().Err(err).Str("file", path).Msg("Extraction failed")
		return err
	}

	log.Info().
		Int("pages_processed", len(result.Pages)).
		Str("stop_reason", string(result.Reason)).
		Dur("duration", time.Since(start)).
		Int("text_length", len(result.Text)).
		Msg("Extraction completed")

	if jsonOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to create JSON output: %w", err)
		}
		fmt.Println(string(data))
	}
	return nil
}

// createOCRService selects and constructs the OCR backend.
func createOCRService(ctx context.Context, backend string) (ocr.Service, error) {
	switch backend {
	case "tesseract":
		return ocr.NewTesseractService()
	case "vision":
		return ocr.NewGoogleVisionService(ctx)
	default:
		return nil, fmt.Errorf("unknown OCR backend %q (expected tesseract or vision)", backend)
	}
}

// createContextWithTimeout creates a context with timeout and signal handling.
func createContextWithTimeout(timeoutSecs int, log zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSecs)*time.Second)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			log.Info().Str("signal", sig.String()).Msg("Received interrupt signal, canceling extraction")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
