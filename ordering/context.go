package ordering

import (
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/numeral"
)

// Classified pairs a page with the accepted candidate it was bucketed by.
type Classified struct {
	Page      *model.Page
	Candidate *model.Candidate
	Value     int
}

// Context is the whole-document structure computed once per run and
// shared read-only by the position resolver. It is never mutated after
// construction.
type Context struct {
	// TotalPages is N, the number of pages in the batch.
	TotalPages int

	// Unnumbered holds pages with no accepted candidate.
	Unnumbered []*model.Page

	// Roman holds pages whose best accepted candidate is a Roman numeral.
	Roman []Classified

	// Arabic holds pages whose best accepted candidate is an Arabic numeral.
	Arabic []Classified

	// RomanMin and RomanMax are the Roman value range actually observed.
	RomanMin int
	RomanMax int

	// RomanSectionLength is RomanMax - RomanMin + 1, or 0 with no Roman
	// pages. The observed value range, not the page count, sizes the
	// section so that gaps in the scanned Roman sequence keep their slots.
	RomanSectionLength int

	// FrontMatterCount is the number of unnumbered pages that precede the
	// first Roman- or Arabic-classified page in scan order. These occupy
	// positions 1..FrontMatterCount.
	FrontMatterCount int

	// ArabicSectionStart is the 1-indexed position where Arabic numbering
	// begins: immediately after any unnumbered front matter and any
	// Roman-numbered section.
	ArabicSectionStart int
}

// ContextBuilder scans all pages to classify them and compute section
// boundaries.
type ContextBuilder struct {
	config Config
}

// NewContextBuilder creates a builder with default filtering thresholds.
func NewContextBuilder() *ContextBuilder {
	return &ContextBuilder{config: DefaultConfig()}
}

// NewContextBuilderWithConfig creates a builder with custom thresholds.
func NewContextBuilderWithConfig(config Config) *ContextBuilder {
	return &ContextBuilder{config: config}
}

// Build computes the global context for one batch of pages. As a side
// effect, implausible candidates on every page are marked rejected (not
// deleted), preserving the reasoning trail.
//
// Real-world documents number front matter in Roman numerals and body
// content in Arabic numerals starting at 1. This structural prior is what
// turns noisy per-page evidence into a globally consistent placement
// scheme.
func (b *ContextBuilder) Build(pages []*model.Page) *Context {
	ctx := &Context{TotalPages: len(pages)}

	for _, p := range pages {
		filterPage(p, ctx.TotalPages, b.config)

		best := p.BestCandidate()
		if best == nil {
			ctx.Unnumbered = append(ctx.Unnumbered, p)
			continue
		}

		entry := Classified{Page: p, Candidate: best, Value: best.Value}
		switch best.System {
		case numeral.Roman:
			ctx.Roman = append(ctx.Roman, entry)
		case numeral.Arabic:
			ctx.Arabic = append(ctx.Arabic, entry)
		}
	}

	if len(ctx.Roman) > 0 {
		ctx.RomanMin = ctx.Roman[0].Value
		ctx.RomanMax = ctx.Roman[0].Value
		for _, r := range ctx.Roman[1:] {
			if r.Value < ctx.RomanMin {
				ctx.RomanMin = r.Value
			}
			if r.Value > ctx.RomanMax {
				ctx.RomanMax = r.Value
			}
		}
		ctx.RomanSectionLength = ctx.RomanMax - ctx.RomanMin + 1
	}

	ctx.FrontMatterCount = b.countFrontMatter(ctx)
	ctx.ArabicSectionStart = ctx.FrontMatterCount + ctx.RomanSectionLength + 1

	return ctx
}

// countFrontMatter counts the unnumbered pages that precede the first
// classified page in scan order. With no classified pages at all there is
// no front-matter boundary and the count is zero.
func (b *ContextBuilder) countFrontMatter(ctx *Context) int {
	firstNumbered := -1
	for _, c := range ctx.Roman {
		if firstNumbered < 0 || c.Page.OriginalIndex < firstNumbered {
			firstNumbered = c.Page.OriginalIndex
		}
	}
	for _, c := range ctx.Arabic {
		if firstNumbered < 0 || c.Page.OriginalIndex < firstNumbered {
			firstNumbered = c.Page.OriginalIndex
		}
	}
	if firstNumbered < 0 {
		return 0
	}

	count := 0
	for _, p := range ctx.Unnumbered {
		if p.OriginalIndex < firstNumbered {
			count++
		}
	}
	return count
}
