// Package ordering implements the global numbering-inference and
// conflict-resolution engine: given noisy, partial, and sometimes
// contradictory per-page number candidates, it produces a single, total,
// gap-free ordering of all N pages.
//
// The engine is a two-phase "observe everything, then decide" computation.
// A [ContextBuilder] first scans every page to reject implausible
// candidates and compute document structure (where unnumbered front matter
// ends, where the Roman-numbered block starts and ends, where the
// Arabic-numbered block starts). A [Resolver] then derives one desired
// position per page from its best surviving candidate, and
// [ResolveConflicts] turns all desired positions into a bijection over
// positions 1..N in a single global pass. [Validate] asserts the bijection
// invariants after every run.
//
// Ordering depends on whole-document context, so the engine requires OCR
// extraction to have completed for every page before it runs. It holds no
// state across documents and performs no I/O.
//
// Typical use via the [Engine] facade:
//
//	eng := ordering.NewEngine()
//	decisions, err := eng.Order(pages)
//	if err != nil {
//	    // internal-consistency failure; never a data-quality issue
//	}
package ordering
