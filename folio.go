// Package folio restores the sequential order of scanned document pages
// from the page numbers printed on them.
//
// Scanned batches arrive in arbitrary order with noisy OCR readings: some
// pages carry Roman numerals, some Arabic, some nothing at all, and the
// readings conflict. folio infers the document's global structure (front
// matter, Roman-numbered section, Arabic-numbered body), places every page,
// resolves conflicting claims, and guarantees the result is a dense 1..N
// ordering with no page lost.
//
// Basic usage:
//
//	result, warnings, err := folio.FromDir("scans/").Order()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", folio.FormatWarnings(warnings))
//	}
//	for _, p := range result.Pages {
//	    fmt.Println(p.Position, p.Name)
//	}
//
// With options:
//
//	result, _, err := folio.FromDir("scans/").
//	    AcceptanceFloor(60).
//	    MaxConcurrent(8).
//	    Order()
//
// For advanced use cases, the lower-level ordering and pipeline packages
// are also available.
package folio

import (
	"github.com/tsawler/folio/model"
)

// FromDir creates an Orderer over a directory of scanned page images. The
// files are listed lexicographically; that listing is the scan order.
// Extraction runs when Order is called, using the configured source or the
// Tesseract default.
//
// Example:
//
//	result, warnings, err := folio.FromDir("scans/").Order()
func FromDir(dir string) *Orderer {
	return &Orderer{
		dir:     dir,
		options: defaultOrderOptions(),
	}
}

// FromPages creates an Orderer over an already-built batch. When no source
// is configured, the pages are assumed to carry their candidates already
// and only the ordering engine runs; configure a source with WithSource to
// extract candidates first.
//
// Example:
//
//	result, warnings, err := folio.FromPages(pages).Order()
func FromPages(pages []*model.Page) *Orderer {
	return &Orderer{
		pages:   pages,
		options: defaultOrderOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustOrder is a helper that wraps a call to Order() and panics if the
// error is non-nil. It discards warnings and returns just the result.
//
// Example:
//
//	result := folio.MustOrder(folio.FromDir("scans/").Order())
func MustOrder(result *Result, _ []Warning, err error) *Result {
	if err != nil {
		panic(err)
	}
	return result
}
