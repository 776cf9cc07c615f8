package ordering

import (
	"fmt"
	"sort"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/numeral"
)

// reassignPenalty scales down the confidence of a page displaced from its
// desired position, flagging it for review.
const reassignPenalty = 0.7

// ResolveConflicts turns all desired positions (including duplicates) into
// a bijection: positions 1..totalPages each mapped to exactly one page.
// It sets Assigned on every decision and Position on every page, and
// returns the decisions sorted by assigned position.
//
// The resolution runs as a single global pass, not page-by-page: resolving
// conflicts incrementally lets an early low-priority reassignment collide
// with a later, higher-priority desired position, cascading further
// reassignments. Collecting every desired position before resolving any of
// them bounds the work to one pass.
//
// Reassignment never interleaves the numbering systems: a roman page is
// only moved below the lowest settled arabic position, an arabic page only
// above the highest settled roman one. A page whose section is full drops
// its claim and is placed by scan order with the unnumbered pages.
func ResolveConflicts(decisions []model.Decision, totalPages int) []model.Decision {
	if totalPages == 0 {
		return decisions
	}

	positioned := make([]*model.Decision, 0, len(decisions))
	positionless := make([]*model.Decision, 0)
	for i := range decisions {
		if decisions[i].Positionless() {
			positionless = append(positionless, &decisions[i])
		} else {
			positioned = append(positioned, &decisions[i])
		}
	}

	// Desired position ascending; within a contested position the higher
	// confidence wins; scan order settles exact ties for determinism.
	sort.SliceStable(positioned, func(i, j int) bool {
		if positioned[i].Desired != positioned[j].Desired {
			return positioned[i].Desired < positioned[j].Desired
		}
		if positioned[i].Confidence != positioned[j].Confidence {
			return positioned[i].Confidence > positioned[j].Confidence
		}
		return positioned[i].Page.OriginalIndex < positioned[j].Page.OriginalIndex
	})

	occupied := make(map[int]bool, totalPages)

	// Section fences, updated as pages settle. A roman page may never be
	// placed above a settled arabic page, and an arabic page never below a
	// settled roman one; reassignment searches are bounded accordingly.
	maxRoman, minArabic := 0, 0

	place := func(d *model.Decision, pos int) {
		d.Assigned = pos
		occupied[pos] = true
		if d.Chosen == nil {
			return
		}
		switch d.Chosen.System {
		case numeral.Roman:
			if pos > maxRoman {
				maxRoman = pos
			}
		case numeral.Arabic:
			if minArabic == 0 || pos < minArabic {
				minArabic = pos
			}
		}
	}

	for _, d := range positioned {
		lo, hi := 1, totalPages
		if d.Chosen != nil {
			switch d.Chosen.System {
			case numeral.Roman:
				if minArabic > 0 {
					hi = minArabic - 1
				}
			case numeral.Arabic:
				if maxRoman > 0 {
					lo = maxRoman + 1
				}
			}
		}

		free, ok := nearestFree(d.Desired, occupied, lo, hi)
		if !ok {
			// The page's numbering section has no room left. Clamped
			// positions from inflated section estimates land here; the
			// claim is dropped rather than letting the systems interleave.
			d.Chosen = nil
			d.Desired = 0
			d.Confidence = 0
			d.AddReasoning("no free position left in its numbering section; falls back to scan order")
			positionless = append(positionless, d)
			continue
		}

		place(d, free)
		if free != d.Desired {
			d.Confidence *= reassignPenalty
			d.AddReasoning(fmt.Sprintf("position %d already taken, reassigned to %d", d.Desired, free))
		}
	}

	// Positionless pages fill the remaining free positions in original
	// scan order. Their relative position in the scan batch is the only
	// ordering signal they carry, so the assignment must be stable.
	sort.SliceStable(positionless, func(i, j int) bool {
		return positionless[i].Page.OriginalIndex < positionless[j].Page.OriginalIndex
	})

	next := 1
	for _, d := range positionless {
		for occupied[next] {
			next++
		}
		d.Assigned = next
		occupied[next] = true
		d.AddReasoning(fmt.Sprintf("placed at %d by scan order", next))
	}

	for i := range decisions {
		decisions[i].Page.Position = decisions[i].Assigned
	}

	sort.SliceStable(decisions, func(i, j int) bool {
		return decisions[i].Assigned < decisions[j].Assigned
	})
	return decisions
}

// nearestFree searches outward from the desired position for the nearest
// free slot within [lo, hi], preferring the next higher position first,
// then the next lower, alternating outward. ok is false when the range
// holds no free position.
func nearestFree(from int, occupied map[int]bool, lo, hi int) (pos int, ok bool) {
	if lo > hi {
		return 0, false
	}
	for offset := 0; ; offset++ {
		up, down := from+offset, from-offset
		if up > hi && down < lo {
			return 0, false
		}
		if up >= lo && up <= hi && !occupied[up] {
			return up, true
		}
		if down != up && down >= lo && down <= hi && !occupied[down] {
			return down, true
		}
	}
}
