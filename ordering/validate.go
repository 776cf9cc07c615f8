package ordering

import (
	"fmt"
	"strings"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/numeral"
)

// ValidationError reports a violated ordering invariant. It indicates a
// bug in the conflict resolver, never a data-quality issue: all noise,
// missing numbers, and conflicting numbers are absorbed before this check
// runs.
type ValidationError struct {
	// Invariant names the violated invariant.
	Invariant string

	// Details carries the diagnostic state: which pages, which positions.
	Details string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("ordering invariant violated: %s (%s)", e.Invariant, e.Details)
}

// Validate asserts the bijection invariants over a finished run:
//
//  1. One decision per input page.
//  2. Assigned positions are exactly the set {1..totalPages}.
//  3. No page appears twice.
//  4. When both Roman- and Arabic-numbered pages exist, every Roman page
//     precedes every Arabic page.
//
// It must run unconditionally after every engine invocation. The conflict
// resolver is designed to make a failure unreachable, but the assertion
// exists as a correctness guard, not as a recoverable condition.
func Validate(decisions []model.Decision, totalPages int) error {
	if len(decisions) != totalPages {
		return &ValidationError{
			Invariant: "one decision per page",
			Details:   fmt.Sprintf("%d decisions for %d pages", len(decisions), totalPages),
		}
	}

	seenPos := make(map[int][]string, totalPages)
	seenPage := make(map[*model.Page]bool, totalPages)
	for i := range decisions {
		d := &decisions[i]
		if seenPage[d.Page] {
			return &ValidationError{
				Invariant: "every page appears exactly once",
				Details:   fmt.Sprintf("page %q (scan index %d) duplicated", d.Page.Name, d.Page.OriginalIndex),
			}
		}
		seenPage[d.Page] = true
		seenPos[d.Assigned] = append(seenPos[d.Assigned], d.Page.Name)
	}

	for pos := 1; pos <= totalPages; pos++ {
		pages := seenPos[pos]
		switch {
		case len(pages) == 0:
			return &ValidationError{
				Invariant: "positions form the dense range 1..N",
				Details:   fmt.Sprintf("position %d unassigned", pos),
			}
		case len(pages) > 1:
			return &ValidationError{
				Invariant: "no duplicate positions",
				Details:   fmt.Sprintf("position %d assigned to %s", pos, strings.Join(pages, ", ")),
			}
		}
	}

	if err := validateSeparation(decisions); err != nil {
		return err
	}

	return nil
}

// validateSeparation checks that the two numbering systems never
// interleave: all Roman-classified pages come before all Arabic-classified
// pages in the final order.
func validateSeparation(decisions []model.Decision) error {
	maxRoman, minArabic := 0, 0
	var romanPage, arabicPage string

	for i := range decisions {
		d := &decisions[i]
		if d.Chosen == nil {
			continue
		}
		switch d.Chosen.System {
		case numeral.Roman:
			if d.Assigned > maxRoman {
				maxRoman = d.Assigned
				romanPage = d.Page.Name
			}
		case numeral.Arabic:
			if minArabic == 0 || d.Assigned < minArabic {
				minArabic = d.Assigned
				arabicPage = d.Page.Name
			}
		}
	}

	if maxRoman > 0 && minArabic > 0 && maxRoman > minArabic {
		return &ValidationError{
			Invariant: "roman section precedes arabic section",
			Details: fmt.Sprintf("roman page %q at %d follows arabic page %q at %d",
				romanPage, maxRoman, arabicPage, minArabic),
		}
	}
	return nil
}
