package document

import (
	"context"
	"image"

	"invoscan/internal/raster"
)

// PageSource turns a source path into page images in page order.
type PageSource interface {
	Pages(ctx context.Context, path string, format raster.Format, maxPages int) ([]image.Image, error)
}

// rasterSource is the production PageSource: pdftoppm for PDFs, direct
// decode for single-image documents.
type rasterSource struct {
	rasterizer *raster.Rasterizer
}

// NewRasterSource wraps a Rasterizer as a PageSource.
func NewRasterSource(r *raster.Rasterizer) PageSource {
	return rasterSource{rasterizer: r}
}

func (s rasterSource) Pages(ctx context.Context, path string, format raster.Format, maxPages int) ([]image.Image, error) {
	switch format {
	case raster.FormatPDF:
		return s.rasterizer.PDFPages(ctx, path, maxPages)
	case raster.FormatImage:
		img, err := raster.LoadImage(path)
		if err != nil {
			return nil, err
		}
		return []image.Image{img}, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}
