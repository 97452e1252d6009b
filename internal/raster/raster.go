// Package raster loads source documents into page images: PDFs are
// rasterized page by page through pdftoppm, single images are decoded
// directly. It also classifies source files by extension.
package raster

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"invoscan/internal/logger"
)

// Format tags the source document kind derived from its file extension.
type Format string

const (
	FormatPDF         Format = "pdf"
	FormatImage       Format = "image"
	FormatUnsupported Format = "unsupported"
)

// DetectFormat classifies a source path by extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF
	case ".jpg", ".jpeg", ".png":
		return FormatImage
	default:
		return FormatUnsupported
	}
}

// Rasterizer renders PDF pages to images through pdftoppm.
type Rasterizer struct {
	pdftoppm string
	dpi      int
	runner   Runner
	log      zerolog.Logger
}

// NewRasterizer creates a Rasterizer using the given pdftoppm binary
// (name or absolute path) and rasterization DPI.
func NewRasterizer(pdftoppmBin string, dpi int) *Rasterizer {
	if pdftoppmBin == "" {
		pdftoppmBin = "pdftoppm"
	}
	if dpi <= 0 {
		dpi = 400
	}
	return &Rasterizer{
		pdftoppm: pdftoppmBin,
		dpi:      dpi,
		runner:   execRunner{},
		log:      logger.WithComponent("raster"),
	}
}

// PDFPages rasterizes a PDF into page images in page order. When maxPages
// is positive, only the leading pages are rendered; later pages are never
// inspected by the pipeline anyway, so rendering them would be wasted work.
func (r *Rasterizer) PDFPages(ctx context.Context, path string, maxPages int) ([]image.Image, error) {
	tmpDir, err := os.MkdirTemp("", "invoscan-pp-*")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			r.log.Warn().Err(err).Str("dir", tmpDir).Msg("failed to remove temp dir")
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	args := []string{"-r", fmt.Sprintf("%d", r.dpi), "-png"}
	if maxPages > 0 {
		args = append(args, "-f", "1", "-l", fmt.Sprintf("%d", maxPages))
	}
	args = append(args, path, prefix)

	// pdftoppm -r <dpi> -png [-f 1 -l <n>] <in.pdf> <tmp/page>
	if _, errb, err := r.runner.Run(ctx, r.pdftoppm, args...); err != nil {
		return nil, fmt.Errorf("pdftoppm: %w: %s", err, strings.TrimSpace(string(errb)))
	}

	// collect generated pngs (page-1.png, page-2.png, ...); pdftoppm
	// zero-pads the page index, so the lexical sort is page order
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no page images for %q", path)
	}

	pages := make([]image.Image, 0, len(matches))
	for _, m := range matches {
		img, err := imaging.Open(m)
		if err != nil {
			return nil, fmt.Errorf("decode rendered page %q: %w", filepath.Base(m), err)
		}
		pages = append(pages, img)
	}
	return pages, nil
}

// LoadImage decodes a single-image document.
func LoadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", path, err)
	}
	return img, nil
}
