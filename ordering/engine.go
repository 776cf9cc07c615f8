package ordering

import "github.com/tsawler/folio/model"

// Engine runs the full ordering computation: context building, position
// resolution, conflict resolution, and validation. It is a synchronous
// batch computation over in-memory data; it expects exclusive ownership of
// its input pages for the duration of one run and holds no state across
// documents.
type Engine struct {
	config Config
}

// NewEngine creates an engine with default filtering thresholds.
func NewEngine() *Engine {
	return &Engine{config: DefaultConfig()}
}

// NewEngineWithConfig creates an engine with custom thresholds.
func NewEngineWithConfig(config Config) *Engine {
	return &Engine{config: config}
}

// Order computes the final ordering for a batch of pages. OCR extraction
// must have completed for every page before this is called: section
// boundaries depend on the full candidate population.
//
// Every page receives its Position, and the returned decisions are sorted
// by assigned position. The only possible error is a *ValidationError,
// which indicates an internal-logic bug, not bad input; all data-quality
// issues are absorbed and recorded in the per-page reasoning trails.
func (e *Engine) Order(pages []*model.Page) ([]model.Decision, error) {
	ctx := NewContextBuilderWithConfig(e.config).Build(pages)
	resolver := NewResolverWithConfig(e.config)

	decisions := make([]model.Decision, 0, len(pages))
	for _, p := range pages {
		decisions = append(decisions, resolver.Resolve(p, ctx))
	}

	decisions = ResolveConflicts(decisions, ctx.TotalPages)

	if err := Validate(decisions, ctx.TotalPages); err != nil {
		return nil, err
	}
	return decisions, nil
}
