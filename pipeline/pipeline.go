package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/ordering"
)

// Source extracts page-number candidates for a single page, appending them
// to the page. Implementations must be safe for concurrent use across
// pages.
type Source interface {
	Extract(ctx context.Context, p *model.Page) error
}

// Config controls pipeline execution.
type Config struct {
	// MaxConcurrent bounds the number of pages extracted at once.
	MaxConcurrent int

	// Logger receives structured progress and error events. Nil means
	// slog.Default().
	Logger *slog.Logger

	// Engine configures the ordering engine's filtering thresholds.
	Engine ordering.Config
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		MaxConcurrent: 4,
		Engine:        ordering.DefaultConfig(),
	}
}

// Pipeline extracts candidates for every page of a batch and then orders
// the batch.
type Pipeline struct {
	source Source
	config Config
	log    *slog.Logger
}

// New creates a pipeline with the default configuration.
func New(source Source) *Pipeline {
	return NewWithConfig(source, DefaultConfig())
}

// NewWithConfig creates a pipeline with a custom configuration.
func NewWithConfig(source Source, config Config) *Pipeline {
	if config.MaxConcurrent < 1 {
		config.MaxConcurrent = 1
	}
	log := config.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{source: source, config: config, log: log}
}

// Run extracts candidates for all pages with bounded concurrency, waits for
// every page to finish, and then runs the ordering engine over the full
// batch. Per-page extraction failures are logged and absorbed: a failed
// page contributes no candidates and is placed by scan order. Run returns
// an error only when the context is cancelled or the ordering engine
// reports an invariant violation.
func (pl *Pipeline) Run(ctx context.Context, pages []*model.Page) ([]model.Decision, error) {
	log := pl.log.With("run_id", newRunID())
	log.Info("run started", "pages", len(pages), "max_concurrent", pl.config.MaxConcurrent)

	type extractResult struct {
		idx int
		err error
	}
	results := make(chan extractResult, len(pages))
	sem := make(chan struct{}, pl.config.MaxConcurrent)

	launched := 0
	for i, p := range pages {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			// Drain already-launched work before reporting cancellation.
			for j := 0; j < launched; j++ {
				<-results
			}
			return nil, ctx.Err()
		}
		launched++
		go func(i int, p *model.Page) {
			defer func() { <-sem }()
			results <- extractResult{idx: i, err: pl.source.Extract(ctx, p)}
		}(i, p)
	}

	// Full join: ordering needs every page's candidates before it can
	// compute section boundaries.
	failed := 0
	for range pages {
		r := <-results
		if r.err != nil {
			failed++
			log.Warn("extraction failed, page falls back to scan order",
				"page", pages[r.idx].Name, "error", r.err)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Info("extraction complete", "pages", len(pages), "failed", failed)

	decisions, err := ordering.NewEngineWithConfig(pl.config.Engine).Order(pages)
	if err != nil {
		log.Error("ordering failed", "error", err)
		return nil, fmt.Errorf("ordering failed: %w", err)
	}

	log.Info("run complete", "pages", len(decisions))
	return decisions, nil
}
