package ordering

import (
	"fmt"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/numeral"
)

// Resolver computes one desired position per page from its best surviving
// candidate and the shared global context.
type Resolver struct {
	config Config
}

// NewResolver creates a resolver with default filtering thresholds.
func NewResolver() *Resolver {
	return &Resolver{config: DefaultConfig()}
}

// NewResolverWithConfig creates a resolver with custom thresholds.
func NewResolverWithConfig(config Config) *Resolver {
	return &Resolver{config: config}
}

// Resolve produces the ordering decision for a single page. The same
// plausibility filter used by the context builder is applied first, so the
// two phases can never disagree about which candidates count.
func (r *Resolver) Resolve(p *model.Page, ctx *Context) model.Decision {
	filterPage(p, ctx.TotalPages, r.config)

	d := model.Decision{Page: p}

	best := p.BestCandidate()
	if best == nil {
		d.AddReasoning("no accepted candidate; falls back to scan order")
		return d
	}

	switch best.System {
	case numeral.Roman:
		d.Desired = ctx.FrontMatterCount + (best.Value - ctx.RomanMin) + 1
		d.AddReasoning(fmt.Sprintf("roman %q = %d maps to position %d (front matter %d, roman values start at %d)",
			best.RawText, best.Value, d.Desired, ctx.FrontMatterCount, ctx.RomanMin))
	case numeral.Arabic:
		d.Desired = ctx.ArabicSectionStart + best.Value - 1
		d.AddReasoning(fmt.Sprintf("arabic %q = %d maps to position %d (arabic section starts at %d)",
			best.RawText, best.Value, d.Desired, ctx.ArabicSectionStart))
	}

	d.Chosen = best
	d.Confidence = best.Confidence

	// A desired position outside 1..N signals upstream OCR or
	// classification drift, not a fatal condition. Clamp and record.
	if d.Desired < 1 {
		d.AddReasoning(fmt.Sprintf("position %d below range, clamped to 1", d.Desired))
		d.Desired = 1
	} else if d.Desired > ctx.TotalPages {
		d.AddReasoning(fmt.Sprintf("position %d beyond last page, clamped to %d", d.Desired, ctx.TotalPages))
		d.Desired = ctx.TotalPages
	}

	return d
}
