package ordering

import (
	"fmt"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/numeral"
)

// filterPage marks implausible candidates on a page as rejected.
//
// This is the single shared filtering function called by both the context
// builder and the position resolver. Divergent filtering between the two
// phases is the primary source of inconsistent ordering results, so the
// rules must live in exactly one place. The function is idempotent:
// already-rejected candidates keep their original reason.
func filterPage(p *model.Page, totalPages int, cfg Config) {
	for i := range p.Candidates {
		c := &p.Candidates[i]
		if c.Rejected || c.System == numeral.Unrecognized {
			continue
		}
		if reason := rejectReason(c, p.OriginalIndex, totalPages, cfg); reason != "" {
			c.Rejected = true
			c.RejectReason = reason
		}
	}
}

// rejectReason returns a non-empty description when the candidate is
// implausible given the document length, the page's scan position, or the
// confidence floor.
func rejectReason(c *model.Candidate, originalIndex, totalPages int, cfg Config) string {
	if c.System == numeral.Arabic && c.Value > totalPages*cfg.OutlierGlobalMultiplier {
		return fmt.Sprintf("value %d exceeds document ceiling %d (%d pages x%d)",
			c.Value, totalPages*cfg.OutlierGlobalMultiplier, totalPages, cfg.OutlierGlobalMultiplier)
	}

	expected := originalIndex + 1
	if c.Value > expected*cfg.OutlierLocalMultiplier {
		return fmt.Sprintf("value %d is an outlier for scan position %d (ceiling %d)",
			c.Value, expected, expected*cfg.OutlierLocalMultiplier)
	}

	if c.Confidence < cfg.AcceptanceFloor {
		return fmt.Sprintf("confidence %.0f below acceptance floor %.0f",
			c.Confidence, cfg.AcceptanceFloor)
	}

	return ""
}
