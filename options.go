package folio

import (
	"log/slog"

	"github.com/tsawler/folio/ordering"
	"github.com/tsawler/folio/pipeline"
	"github.com/tsawler/folio/report"
)

// OrderOptions holds configuration for an ordering run.
type OrderOptions struct {
	// Engine thresholds
	engine ordering.Config

	// Review threshold for the generated report
	reviewThreshold float64

	// Extraction
	source        pipeline.Source
	maxConcurrent int
	logger        *slog.Logger
}

// defaultOrderOptions returns the default ordering options.
func defaultOrderOptions() OrderOptions {
	return OrderOptions{
		engine:          ordering.DefaultConfig(),
		reviewThreshold: report.DefaultConfig().ReviewThreshold,
		source:          nil, // nil means Tesseract when extraction is needed
		maxConcurrent:   pipeline.DefaultConfig().MaxConcurrent,
		logger:          nil, // nil means slog.Default()
	}
}

// clone creates a copy of OrderOptions.
func (o OrderOptions) clone() OrderOptions {
	return OrderOptions{
		engine:          o.engine,
		reviewThreshold: o.reviewThreshold,
		source:          o.source,
		maxConcurrent:   o.maxConcurrent,
		logger:          o.logger,
	}
}
