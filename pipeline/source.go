package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/ocr"
	"github.com/tsawler/folio/reader"
)

// TesseractSource extracts candidates by decoding the page image, running
// Tesseract word-level OCR over it, and scanning the recognized words for
// numerals. It requires the "ocr" build tag; without it ocr.New fails with
// ocr.ErrOCRNotEnabled.
//
// The underlying Tesseract client is not reentrant, so recognition is
// serialized with a mutex; image decoding still overlaps across pages.
type TesseractSource struct {
	mu      sync.Mutex
	client  *ocr.Client
	scanner *ocr.Scanner
}

// NewTesseractSource creates an OCR-backed candidate source with default
// scanning thresholds. Close it to release the Tesseract client.
func NewTesseractSource() (*TesseractSource, error) {
	return NewTesseractSourceWithConfig(ocr.DefaultScanConfig())
}

// NewTesseractSourceWithConfig creates an OCR-backed candidate source with
// custom scanning thresholds.
func NewTesseractSourceWithConfig(config ocr.ScanConfig) (*TesseractSource, error) {
	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	return &TesseractSource{
		client:  client,
		scanner: ocr.NewScannerWithConfig(config),
	}, nil
}

// Close releases the OCR client.
func (s *TesseractSource) Close() error {
	return s.client.Close()
}

// Extract decodes the page image, recognizes its words, and records every
// numeral-bearing word as a candidate on the page.
func (s *TesseractSource) Extract(ctx context.Context, p *model.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Decode for dimensions; region classification needs them.
	if _, err := reader.LoadImage(p); err != nil {
		return err
	}

	data, err := os.ReadFile(p.Path)
	if err != nil {
		return fmt.Errorf("failed to read page image: %w", err)
	}

	s.mu.Lock()
	words, err := s.client.Words(data)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("OCR failed for %s: %w", p.Name, err)
	}

	return s.scanner.Scan(p, words)
}
