package folio

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/ordering"
	"github.com/tsawler/folio/pipeline"
	"github.com/tsawler/folio/reader"
	"github.com/tsawler/folio/report"
)

// Orderer provides a fluent interface for restoring the order of a scan
// batch. Each configuration method returns a new Orderer instance, making
// it safe for concurrent use and allowing method chaining.
type Orderer struct {
	// Source
	dir   string
	pages []*model.Page

	// Configuration
	options OrderOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Orderer with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (o *Orderer) clone() *Orderer {
	return &Orderer{
		dir:     o.dir,
		pages:   o.pages,
		options: o.options.clone(),
		err:     o.err,
	}
}

// ============================================================================
// Configuration Methods (return new Orderer instance)
// ============================================================================

// WithSource sets the candidate source used for extraction. The default is
// the Tesseract-backed source, which requires the "ocr" build tag.
//
// Example:
//
//	result, _, err := folio.FromDir("scans/").WithSource(src).Order()
func (o *Orderer) WithSource(source pipeline.Source) *Orderer {
	newOrd := o.clone()
	newOrd.options.source = source
	return newOrd
}

// MaxConcurrent bounds the number of pages extracted at once.
func (o *Orderer) MaxConcurrent(n int) *Orderer {
	newOrd := o.clone()
	newOrd.options.maxConcurrent = n
	return newOrd
}

// WithLogger sets the structured logger for pipeline progress events.
// The default is slog.Default().
func (o *Orderer) WithLogger(log *slog.Logger) *Orderer {
	newOrd := o.clone()
	newOrd.options.logger = log
	return newOrd
}

// AcceptanceFloor sets the minimum candidate confidence, 0-100. Candidates
// below the floor are rejected before ordering.
func (o *Orderer) AcceptanceFloor(conf float64) *Orderer {
	newOrd := o.clone()
	newOrd.options.engine.AcceptanceFloor = conf
	return newOrd
}

// OutlierMultipliers sets the plausibility ceilings for numeric candidates:
// an Arabic value above global times the batch size is rejected, and any
// value above local times the page's expected position is rejected.
func (o *Orderer) OutlierMultipliers(global, local int) *Orderer {
	newOrd := o.clone()
	newOrd.options.engine.OutlierGlobalMultiplier = global
	newOrd.options.engine.OutlierLocalMultiplier = local
	return newOrd
}

// ReviewThreshold sets the placement confidence below which report entries
// and warnings are flagged for review.
func (o *Orderer) ReviewThreshold(conf float64) *Orderer {
	newOrd := o.clone()
	newOrd.options.reviewThreshold = conf
	return newOrd
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Result is the outcome of an ordering run.
type Result struct {
	// Pages holds the batch in restored order.
	Pages []*model.Page

	// Decisions holds one decision per page, sorted by assigned position,
	// with the evidence and reasoning behind each placement.
	Decisions []model.Decision

	// Report is the review summary for the run.
	Report *report.Report
}

// Order runs the full computation: extraction (when the batch comes from a
// directory), global ordering, and report generation. It is equivalent to
// OrderContext with context.Background().
func (o *Orderer) Order() (*Result, []Warning, error) {
	return o.OrderContext(context.Background())
}

// OrderContext is Order with cancellation support for the extraction phase.
func (o *Orderer) OrderContext(ctx context.Context) (*Result, []Warning, error) {
	if o.err != nil {
		return nil, nil, o.err
	}

	pages := o.pages
	if pages == nil {
		var err error
		pages, err = reader.Open(o.dir)
		if err != nil {
			return nil, nil, err
		}
	}

	decisions, err := o.runPipeline(ctx, pages)
	if err != nil {
		return nil, nil, err
	}

	rep := report.NewBuilderWithConfig(report.Config{
		ReviewThreshold: o.options.reviewThreshold,
	}).Build(decisions)

	ordered := make([]*model.Page, len(decisions))
	for i := range decisions {
		ordered[i] = decisions[i].Page
	}

	return &Result{
		Pages:     ordered,
		Decisions: decisions,
		Report:    rep,
	}, warningsFromReport(rep), nil
}

// runPipeline extracts candidates when needed and runs the ordering engine.
// A batch supplied via FromPages with no configured source is assumed to
// carry its candidates already and skips extraction.
func (o *Orderer) runPipeline(ctx context.Context, pages []*model.Page) ([]model.Decision, error) {
	source := o.options.source
	if source == nil {
		if o.dir == "" {
			return ordering.NewEngineWithConfig(o.options.engine).Order(pages)
		}
		ts, err := pipeline.NewTesseractSource()
		if err != nil {
			return nil, fmt.Errorf("no candidate source available: %w", err)
		}
		defer ts.Close()
		source = ts
	}

	cfg := pipeline.DefaultConfig()
	cfg.MaxConcurrent = o.options.maxConcurrent
	cfg.Logger = o.options.logger
	cfg.Engine = o.options.engine
	return pipeline.NewWithConfig(source, cfg).Run(ctx, pages)
}

// warningsFromReport converts flagged report entries into warnings.
func warningsFromReport(rep *report.Report) []Warning {
	var warnings []Warning
	for _, e := range rep.Entries {
		if !e.NeedsReview {
			continue
		}
		msg := fmt.Sprintf("low placement confidence (%.0f)", e.Confidence)
		if e.System == "unrecognized" {
			msg = "no usable page number; placed by scan order"
		} else if strings.Contains(e.Reasoning, "reassigned") {
			msg = fmt.Sprintf("displaced from claimed position (confidence %.0f)", e.Confidence)
		}
		warnings = append(warnings, Warning{
			Page:     e.PageName,
			Position: e.Position,
			Message:  msg,
		})
	}
	return warnings
}
