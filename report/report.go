// Package report summarizes a finished ordering run for human review.
//
// The ordering engine never fails on bad data; it absorbs noise and records
// what it did in per-page reasoning trails. The report surfaces those
// trails: which page landed where, on what evidence, and which placements
// fell below the review threshold and deserve a second look.
package report

import (
	"github.com/tsawler/folio/model"
)

// Entry is the review record for one page of the ordered batch.
type Entry struct {
	// Position is the page's assigned position in the restored order, 1-based.
	Position int `json:"position"`

	// PageName is the scan file name.
	PageName string `json:"page_name"`

	// ScanIndex is the page's 0-based position in the original scan batch.
	ScanIndex int `json:"scan_index"`

	// System names the numeral system of the winning candidate, or
	// "unrecognized" when the page carried no usable number.
	System string `json:"system"`

	// RawText is the winning candidate's OCR text, empty for unnumbered pages.
	RawText string `json:"raw_text,omitempty"`

	// Value is the winning candidate's numeric value, 0 for unnumbered pages.
	Value int `json:"value,omitempty"`

	// Confidence is the placement confidence, 0-100. Reassigned pages carry
	// a penalized score.
	Confidence float64 `json:"confidence"`

	// NeedsReview flags placements below the review threshold.
	NeedsReview bool `json:"needs_review"`

	// Reasoning is the engine's decision trail for this page.
	Reasoning string `json:"reasoning"`
}

// Report is the full review summary for one ordering run.
type Report struct {
	// TotalPages is the batch size.
	TotalPages int `json:"total_pages"`

	// Numbered counts pages placed by a recognized page number.
	Numbered int `json:"numbered"`

	// Unnumbered counts pages placed by scan order.
	Unnumbered int `json:"unnumbered"`

	// ReviewCount counts entries flagged for review.
	ReviewCount int `json:"review_count"`

	// Entries holds one record per page, sorted by assigned position.
	Entries []Entry `json:"entries"`
}

// Config controls report generation.
type Config struct {
	// ReviewThreshold is the confidence below which a placement is flagged
	// for review.
	ReviewThreshold float64
}

// DefaultConfig returns the default report configuration.
func DefaultConfig() Config {
	return Config{ReviewThreshold: 70}
}

// Builder turns ordering decisions into review reports.
type Builder struct {
	config Config
}

// NewBuilder creates a builder with the default review threshold.
func NewBuilder() *Builder {
	return &Builder{config: DefaultConfig()}
}

// NewBuilderWithConfig creates a builder with a custom review threshold.
func NewBuilderWithConfig(config Config) *Builder {
	return &Builder{config: config}
}

// Build summarizes a finished run. The decisions are expected in assigned
// order, as the ordering engine returns them.
func (b *Builder) Build(decisions []model.Decision) *Report {
	r := &Report{
		TotalPages: len(decisions),
		Entries:    make([]Entry, 0, len(decisions)),
	}

	for i := range decisions {
		d := &decisions[i]
		e := Entry{
			Position:    d.Assigned,
			PageName:    d.Page.Name,
			ScanIndex:   d.Page.OriginalIndex,
			Confidence:  d.Confidence,
			NeedsReview: d.Confidence < b.config.ReviewThreshold,
			Reasoning:   d.Reasoning,
		}
		if d.Chosen != nil {
			e.System = d.Chosen.System.String()
			e.RawText = d.Chosen.RawText
			e.Value = d.Chosen.Value
			r.Numbered++
		} else {
			e.System = "unrecognized"
			r.Unnumbered++
		}
		if e.NeedsReview {
			r.ReviewCount++
		}
		r.Entries = append(r.Entries, e)
	}

	return r
}
