package raster

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strconv"
	"testing"

	"github.com/disintegration/imaging"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"invoice.pdf", FormatPDF},
		{"/some/dir/INVOICE.PDF", FormatPDF},
		{"scan.jpg", FormatImage},
		{"scan.jpeg", FormatImage},
		{"scan.png", FormatImage},
		{"scan.PNG", FormatImage},
		{"notes.txt", FormatUnsupported},
		{"archive.tiff", FormatUnsupported},
		{"noextension", FormatUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DetectFormat(tt.path); got != tt.want {
				t.Errorf("DetectFormat(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

// renderingRunner pretends to be pdftoppm: it drops n page PNGs at the
// output prefix passed as the final argument.
type renderingRunner struct {
	pages    int
	lastArgs []string
}

func (r *renderingRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.lastArgs = args
	prefix := args[len(args)-1]
	for i := 1; i <= r.pages; i++ {
		img := image.NewGray(image.Rect(0, 0, 4, 4))
		if err := imaging.Save(img, fmt.Sprintf("%s-%d.png", prefix, i)); err != nil {
			return nil, nil, err
		}
	}
	return nil, nil, nil
}

type failingRunner struct{}

func (failingRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	return nil, []byte("Syntax Error: not a PDF"), errors.New("exit status 1")
}

func TestPDFPages(t *testing.T) {
	r := NewRasterizer("pdftoppm", 400)
	runner := &renderingRunner{pages: 2}
	r.runner = runner

	pages, err := r.PDFPages(context.Background(), "invoice.pdf", 2)
	if err != nil {
		t.Fatalf("PDFPages failed: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}

	// pdftoppm must be bounded to the requested page range at the requested DPI
	wantLeading := []string{"-r", "400", "-png", "-f", "1", "-l", "2"}
	for i, want := range wantLeading {
		if runner.lastArgs[i] != want {
			t.Fatalf("arg %d = %q, want %q (args: %v)", i, runner.lastArgs[i], want, runner.lastArgs)
		}
	}
}

func TestPDFPagesUnbounded(t *testing.T) {
	r := NewRasterizer("", 0) // defaults
	runner := &renderingRunner{pages: 3}
	r.runner = runner

	pages, err := r.PDFPages(context.Background(), "invoice.pdf", 0)
	if err != nil {
		t.Fatalf("PDFPages failed: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}
	for _, arg := range runner.lastArgs {
		if arg == "-l" {
			t.Fatal("page bound passed despite maxPages=0")
		}
	}
	if runner.lastArgs[1] != strconv.Itoa(400) {
		t.Fatalf("default DPI not applied: %v", runner.lastArgs)
	}
}

func TestPDFPagesRunnerFailure(t *testing.T) {
	r := NewRasterizer("pdftoppm", 400)
	r.runner = failingRunner{}

	if _, err := r.PDFPages(context.Background(), "broken.pdf", 2); err == nil {
		t.Fatal("expected error from failing pdftoppm")
	}
}

func TestPDFPagesNoOutput(t *testing.T) {
	r := NewRasterizer("pdftoppm", 400)
	r.runner = &renderingRunner{pages: 0}

	if _, err := r.PDFPages(context.Background(), "empty.pdf", 2); err == nil {
		t.Fatal("expected error when no page images are produced")
	}
}
