package ordering

import (
	"testing"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/numeral"
)

// newPage builds a test page with parsed candidates.
func newPage(index int, name string, raws ...testCandidate) *model.Page {
	p := model.NewPage(index, name)
	for _, tc := range raws {
		c := model.Candidate{
			RawText:       tc.raw,
			Region:        tc.region,
			OCRConfidence: tc.confidence,
			Confidence:    tc.confidence,
		}
		if v, ok := numeral.Parse(tc.raw); ok {
			c.System = v.System
			c.Value = v.Int
			c.Ambiguous = v.Ambiguous
		}
		p.AddCandidate(c)
	}
	return p
}

type testCandidate struct {
	raw        string
	confidence float64
	region     model.Region
}

func corner(raw string, confidence float64) testCandidate {
	return testCandidate{raw: raw, confidence: confidence, region: model.RegionBottomRight}
}

func center(raw string, confidence float64) testCandidate {
	return testCandidate{raw: raw, confidence: confidence, region: model.RegionCenter}
}

// positionsByName maps page name to assigned position.
func positionsByName(decisions []model.Decision) map[string]int {
	out := make(map[string]int, len(decisions))
	for _, d := range decisions {
		out[d.Page.Name] = d.Assigned
	}
	return out
}

// ============================================================================
// Filter Tests
// ============================================================================

func TestFilterGlobalCeiling(t *testing.T) {
	// 20-page document; arabic 500 is noise from content, not a page number.
	p := newPage(10, "p", corner("500", 95))
	filterPage(p, 20, DefaultConfig())

	c := &p.Candidates[0]
	if !c.Rejected {
		t.Fatal("value 500 in a 20-page document should be rejected")
	}
	if c.RejectReason == "" {
		t.Error("rejection must record a reason")
	}
}

func TestFilterLocalOutlier(t *testing.T) {
	// Page at scan index 4 (expected position 5) claiming to be page 190.
	p := newPage(4, "p", corner("190", 95))
	filterPage(p, 100, DefaultConfig())

	if !p.Candidates[0].Rejected {
		t.Fatal("value 190 at expected position 5 should be rejected as an outlier")
	}
}

func TestFilterConfidenceFloor(t *testing.T) {
	p := newPage(6, "p", corner("7", 49), corner("7", 50))
	filterPage(p, 20, DefaultConfig())

	if !p.Candidates[0].Rejected {
		t.Error("confidence 49 should fall below the default floor of 50")
	}
	if p.Candidates[1].Rejected {
		t.Error("confidence 50 should meet the default floor")
	}
}

func TestFilterRomanExemptFromGlobalCeiling(t *testing.T) {
	// The global ceiling targets Arabic content noise; a roman numeral in
	// range for its scan position survives.
	p := newPage(2, "p", corner("xii", 90))
	filterPage(p, 3, DefaultConfig())

	if p.Candidates[0].Rejected {
		t.Errorf("roman xii rejected: %s", p.Candidates[0].RejectReason)
	}
}

func TestFilterIdempotent(t *testing.T) {
	p := newPage(0, "p", corner("500", 95))
	filterPage(p, 10, DefaultConfig())
	reason := p.Candidates[0].RejectReason

	filterPage(p, 10, DefaultConfig())
	if p.Candidates[0].RejectReason != reason {
		t.Error("second filter pass must not rewrite the rejection reason")
	}
}

// ============================================================================
// Context Builder Tests
// ============================================================================

func TestBuildContextSections(t *testing.T) {
	// 2 unnumbered, roman vi-viii, arabic 1-2.
	pages := []*model.Page{
		newPage(0, "blank1"),
		newPage(1, "blank2"),
		newPage(2, "r6", corner("vi", 90)),
		newPage(3, "r7", corner("vii", 90)),
		newPage(4, "r8", corner("viii", 90)),
		newPage(5, "a1", corner("1", 90)),
		newPage(6, "a2", corner("2", 90)),
	}

	ctx := NewContextBuilder().Build(pages)

	if ctx.TotalPages != 7 {
		t.Errorf("TotalPages = %d, want 7", ctx.TotalPages)
	}
	if len(ctx.Unnumbered) != 2 || len(ctx.Roman) != 3 || len(ctx.Arabic) != 2 {
		t.Errorf("partition = %d/%d/%d unnumbered/roman/arabic, want 2/3/2",
			len(ctx.Unnumbered), len(ctx.Roman), len(ctx.Arabic))
	}
	if ctx.RomanMin != 6 || ctx.RomanMax != 8 {
		t.Errorf("roman range = %d-%d, want 6-8", ctx.RomanMin, ctx.RomanMax)
	}
	if ctx.RomanSectionLength != 3 {
		t.Errorf("RomanSectionLength = %d, want 3", ctx.RomanSectionLength)
	}
	if ctx.FrontMatterCount != 2 {
		t.Errorf("FrontMatterCount = %d, want 2", ctx.FrontMatterCount)
	}
	if ctx.ArabicSectionStart != 6 {
		t.Errorf("ArabicSectionStart = %d, want 6", ctx.ArabicSectionStart)
	}
}

func TestBuildContextNoRomanSection(t *testing.T) {
	pages := []*model.Page{
		newPage(0, "blank"),
		newPage(1, "a1", corner("1", 90)),
		newPage(2, "a2", corner("2", 90)),
	}

	ctx := NewContextBuilder().Build(pages)

	if ctx.RomanSectionLength != 0 {
		t.Errorf("RomanSectionLength = %d, want 0", ctx.RomanSectionLength)
	}
	// Arabic numbering begins immediately after the front matter.
	if ctx.ArabicSectionStart != 2 {
		t.Errorf("ArabicSectionStart = %d, want 2", ctx.ArabicSectionStart)
	}
}

func TestBuildContextAllUnnumbered(t *testing.T) {
	pages := []*model.Page{newPage(0, "a"), newPage(1, "b")}
	ctx := NewContextBuilder().Build(pages)

	if ctx.FrontMatterCount != 0 {
		t.Errorf("FrontMatterCount = %d, want 0 with no classified pages", ctx.FrontMatterCount)
	}
	if len(ctx.Unnumbered) != 2 {
		t.Errorf("Unnumbered = %d, want 2", len(ctx.Unnumbered))
	}
}

func TestBuildContextGapInRomanValues(t *testing.T) {
	// Observed roman values vi and x: the section spans the value range,
	// leaving slots for the unscanned vii-ix.
	pages := []*model.Page{
		newPage(0, "r6", corner("vi", 90)),
		newPage(1, "r10", corner("x", 90)),
		newPage(2, "a1", corner("1", 90)),
		newPage(3, "b1"),
		newPage(4, "b2"),
	}

	ctx := NewContextBuilder().Build(pages)

	if ctx.RomanSectionLength != 5 {
		t.Errorf("RomanSectionLength = %d, want 5 (value range vi..x)", ctx.RomanSectionLength)
	}
	if ctx.ArabicSectionStart != 6 {
		t.Errorf("ArabicSectionStart = %d, want 6", ctx.ArabicSectionStart)
	}
}

// ============================================================================
// Resolver Tests
// ============================================================================

func TestResolvePositions(t *testing.T) {
	pages := []*model.Page{
		newPage(0, "blank1"),
		newPage(1, "blank2"),
		newPage(2, "r6", corner("vi", 90)),
		newPage(3, "r7", corner("vii", 90)),
		newPage(4, "r8", corner("viii", 90)),
		newPage(5, "a1", corner("1", 90)),
		newPage(6, "a2", corner("2", 90)),
	}
	ctx := NewContextBuilder().Build(pages)
	r := NewResolver()

	tests := []struct {
		page    *model.Page
		desired int
	}{
		{pages[0], 0}, // positionless
		{pages[2], 3}, // front(2) + (6-6) + 1
		{pages[4], 5}, // front(2) + (8-6) + 1
		{pages[5], 6}, // arabicStart(6) + 1 - 1
		{pages[6], 7},
	}

	for _, tt := range tests {
		d := r.Resolve(tt.page, ctx)
		if d.Desired != tt.desired {
			t.Errorf("%s: desired = %d, want %d (%s)", tt.page.Name, d.Desired, tt.desired, d.Reasoning)
		}
	}
}

func TestResolvePositionlessPage(t *testing.T) {
	pages := []*model.Page{newPage(0, "blank"), newPage(1, "a1", corner("1", 90))}
	ctx := NewContextBuilder().Build(pages)

	d := NewResolver().Resolve(pages[0], ctx)
	if !d.Positionless() || d.Confidence != 0 || d.Chosen != nil {
		t.Errorf("positionless decision = %+v", d)
	}
	if d.Reasoning == "" {
		t.Error("positionless decision must record reasoning")
	}
}

func TestResolveClampsOutOfRange(t *testing.T) {
	// Arabic 9 in a 3-page batch survives filtering at scan index 2
	// (ceiling 15, global ceiling 9) but maps beyond the last page.
	pages := []*model.Page{
		newPage(0, "a1", corner("1", 90)),
		newPage(1, "a2", corner("2", 90)),
		newPage(2, "a9", corner("9", 90)),
	}
	ctx := NewContextBuilder().Build(pages)

	d := NewResolver().Resolve(pages[2], ctx)
	if d.Desired != 3 {
		t.Errorf("desired = %d, want clamp to 3", d.Desired)
	}
	if d.Reasoning == "" || !containsClamp(d.Reasoning) {
		t.Errorf("clamp must be recorded in reasoning, got %q", d.Reasoning)
	}
}

func TestResolvePrefersCornerOnTie(t *testing.T) {
	// Equal confidence, different regions: the corner hit is the printed
	// page number, the center hit is body text that happens to be a digit.
	pages := []*model.Page{
		newPage(0, "a1", corner("1", 90)),
		newPage(1, "b1"),
		newPage(2, "b2"),
		newPage(3, "b3"),
		newPage(4, "b4"),
		newPage(5, "b5"),
		newPage(6, "tie", center("3", 80), corner("7", 80)),
	}
	ctx := NewContextBuilder().Build(pages)

	d := NewResolver().Resolve(pages[6], ctx)
	if d.Chosen == nil || d.Chosen.RawText != "7" {
		t.Fatalf("chosen = %+v, want the corner candidate \"7\"", d.Chosen)
	}
	if d.Desired != 7 {
		t.Errorf("desired = %d, want 7", d.Desired)
	}
}

func containsClamp(s string) bool {
	for i := 0; i+7 <= len(s); i++ {
		if s[i:i+7] == "clamped" {
			return true
		}
	}
	return false
}

// ============================================================================
// Conflict Resolver Tests
// ============================================================================

func TestResolveConflictsDuplicateDesired(t *testing.T) {
	// Two pages both carrying high-confidence arabic 7 in a 10-page
	// document: the higher-confidence page takes the slot, the other
	// moves to the nearest free neighbor, and nothing else shifts. The
	// first page is numbered so the arabic section starts at position 1.
	pages := make([]*model.Page, 0, 10)
	for i := 0; i < 10; i++ {
		switch i {
		case 0:
			pages = append(pages, newPage(i, "anchor", corner("1", 90)))
		case 5:
			pages = append(pages, newPage(i, "dup_hi", corner("7", 95)))
		case 6:
			pages = append(pages, newPage(i, "dup_lo", corner("7", 80)))
		default:
			pages = append(pages, newPage(i, name(i)))
		}
	}

	decisions, err := NewEngine().Order(pages)
	if err != nil {
		t.Fatal(err)
	}

	pos := positionsByName(decisions)
	if pos["dup_hi"] != 7 {
		t.Errorf("dup_hi at %d, want 7", pos["dup_hi"])
	}
	if pos["dup_lo"] != 8 {
		t.Errorf("dup_lo at %d, want nearest free neighbor 8", pos["dup_lo"])
	}
}

func name(i int) string {
	return "page_" + string(rune('a'+i))
}

func TestResolveConflictsPrefersHigherNeighbor(t *testing.T) {
	decisions := []model.Decision{
		{Page: model.NewPage(0, "a"), Desired: 2, Confidence: 90},
		{Page: model.NewPage(1, "b"), Desired: 2, Confidence: 80},
		{Page: model.NewPage(2, "c")},
	}

	out := ResolveConflicts(decisions, 3)
	pos := positionsByName(out)

	if pos["a"] != 2 || pos["b"] != 3 {
		t.Errorf("positions = %v, want a=2 (winner) b=3 (next higher free)", pos)
	}
	if pos["c"] != 1 {
		t.Errorf("positionless page at %d, want remaining slot 1", pos["c"])
	}
}

func TestResolveConflictsSearchesDownWhenTopFull(t *testing.T) {
	decisions := []model.Decision{
		{Page: model.NewPage(0, "a"), Desired: 3, Confidence: 90},
		{Page: model.NewPage(1, "b"), Desired: 3, Confidence: 85},
		{Page: model.NewPage(2, "c"), Desired: 3, Confidence: 80},
	}

	out := ResolveConflicts(decisions, 3)
	pos := positionsByName(out)

	if pos["a"] != 3 || pos["b"] != 2 || pos["c"] != 1 {
		t.Errorf("positions = %v, want a=3, b=2, c=1", pos)
	}
}

func TestResolveConflictsKeepsSystemsSeparate(t *testing.T) {
	roman := &model.Candidate{RawText: "xxv", System: numeral.Roman, Value: 25}
	arabic := &model.Candidate{RawText: "1", System: numeral.Arabic, Value: 1}

	// Both pages clamp to the last position of a 3-page batch. The roman
	// page wins the slot on confidence; the arabic page cannot be bumped
	// below it without interleaving the sections, so it drops its claim
	// and is placed by scan order instead.
	decisions := []model.Decision{
		{Page: model.NewPage(2, "r"), Desired: 3, Confidence: 95, Chosen: roman},
		{Page: model.NewPage(0, "a"), Desired: 3, Confidence: 90, Chosen: arabic},
		{Page: model.NewPage(1, "b")},
	}

	out := ResolveConflicts(decisions, 3)

	pos := positionsByName(out)
	if pos["r"] != 3 {
		t.Fatalf("roman page at %d, want 3", pos["r"])
	}
	if pos["a"] != 1 || pos["b"] != 2 {
		t.Errorf("positions = %v, want a=1, b=2 (scan order)", pos)
	}
	for i := range out {
		if out[i].Page.Name != "a" {
			continue
		}
		if out[i].Chosen != nil || out[i].Confidence != 0 {
			t.Errorf("displaced arabic page kept its claim: chosen=%v confidence=%v",
				out[i].Chosen, out[i].Confidence)
		}
		if out[i].Reasoning == "" {
			t.Error("dropped claim must be recorded in reasoning")
		}
	}
	if err := Validate(out, 3); err != nil {
		t.Errorf("resolved order fails validation: %v", err)
	}
}

func TestResolveConflictsPositionlessStableOrder(t *testing.T) {
	// Positionless pages keep their scan order relative to each other.
	decisions := []model.Decision{
		{Page: model.NewPage(3, "d")},
		{Page: model.NewPage(0, "a")},
		{Page: model.NewPage(2, "c"), Desired: 2, Confidence: 90},
		{Page: model.NewPage(1, "b")},
	}

	out := ResolveConflicts(decisions, 4)
	pos := positionsByName(out)

	if pos["c"] != 2 {
		t.Fatalf("positioned page at %d, want 2", pos["c"])
	}
	if pos["a"] != 1 || pos["b"] != 3 || pos["d"] != 4 {
		t.Errorf("positionless pages = %v, want a=1, b=3, d=4 (scan order)", pos)
	}
}

func TestResolveConflictsPenalizesReassigned(t *testing.T) {
	decisions := []model.Decision{
		{Page: model.NewPage(0, "winner"), Desired: 1, Confidence: 90},
		{Page: model.NewPage(1, "loser"), Desired: 1, Confidence: 80},
	}

	out := ResolveConflicts(decisions, 2)
	for _, d := range out {
		if d.Page.Name == "loser" && d.Confidence >= 80 {
			t.Errorf("reassigned page confidence = %v, want penalized below 80", d.Confidence)
		}
	}
}

// ============================================================================
// Validator Tests
// ============================================================================

func TestValidateAcceptsBijection(t *testing.T) {
	decisions := []model.Decision{
		{Page: model.NewPage(0, "a"), Assigned: 1},
		{Page: model.NewPage(1, "b"), Assigned: 2},
		{Page: model.NewPage(2, "c"), Assigned: 3},
	}
	if err := Validate(decisions, 3); err != nil {
		t.Errorf("valid bijection rejected: %v", err)
	}
}

func TestValidateEmptyRun(t *testing.T) {
	if err := Validate(nil, 0); err != nil {
		t.Errorf("empty run rejected: %v", err)
	}
}

func TestValidateDetectsViolations(t *testing.T) {
	a, b := model.NewPage(0, "a"), model.NewPage(1, "b")

	tests := []struct {
		name      string
		decisions []model.Decision
		total     int
	}{
		{"missing decision", []model.Decision{{Page: a, Assigned: 1}}, 2},
		{"duplicate position", []model.Decision{{Page: a, Assigned: 1}, {Page: b, Assigned: 1}}, 2},
		{"gap", []model.Decision{{Page: a, Assigned: 1}, {Page: b, Assigned: 3}}, 2},
		{"duplicate page", []model.Decision{{Page: a, Assigned: 1}, {Page: a, Assigned: 2}}, 2},
		{"out of range", []model.Decision{{Page: a, Assigned: 0}, {Page: b, Assigned: 2}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.decisions, tt.total)
			if err == nil {
				t.Fatal("violation not detected")
			}
			if _, ok := err.(*ValidationError); !ok {
				t.Errorf("error type = %T, want *ValidationError", err)
			}
		})
	}
}

func TestValidateDetectsInterleavedSystems(t *testing.T) {
	roman := &model.Candidate{RawText: "ii", System: numeral.Roman, Value: 2}
	arabic := &model.Candidate{RawText: "1", System: numeral.Arabic, Value: 1}

	decisions := []model.Decision{
		{Page: model.NewPage(0, "a"), Assigned: 1, Chosen: arabic},
		{Page: model.NewPage(1, "b"), Assigned: 2, Chosen: roman},
	}

	if err := Validate(decisions, 2); err == nil {
		t.Error("roman page after arabic page not detected")
	}
}
