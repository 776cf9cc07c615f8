package model

// Decision records the ordering engine's conclusion for one page.
type Decision struct {
	// Page is the page the decision applies to.
	Page *Page

	// Desired is the 1-indexed position the page's best surviving
	// candidate argues for. Zero means the page is positionless and
	// falls back to scan-order placement.
	Desired int

	// Assigned is the final 1-indexed position after conflict
	// resolution. Zero until the conflict resolver runs.
	Assigned int

	// Confidence is copied from the winning candidate, or 0 when no
	// candidate survived.
	Confidence float64

	// Chosen is the candidate the desired position was derived from,
	// or nil for positionless pages.
	Chosen *Candidate

	// Reasoning is a human-readable trace of how the decision was
	// reached, for diagnostics and review.
	Reasoning string
}

// Positionless reports whether the page carried no usable position
// evidence and will be placed by original scan order.
func (d *Decision) Positionless() bool {
	return d.Desired == 0
}

// AddReasoning appends a step to the reasoning trail.
func (d *Decision) AddReasoning(step string) {
	if d.Reasoning == "" {
		d.Reasoning = step
		return
	}
	d.Reasoning += "; " + step
}
