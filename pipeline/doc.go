// Package pipeline runs candidate extraction and ordering for a scan batch.
//
// Extraction is per-page and embarrassingly parallel, so it runs with
// bounded concurrency. Ordering is global: the section boundaries depend on
// every page's candidates, so the pipeline joins all extraction work before
// handing the batch to the ordering engine. Extraction failures on
// individual pages are absorbed (the page simply contributes no candidates
// and falls back to scan order); only an ordering invariant violation fails
// the run.
package pipeline
