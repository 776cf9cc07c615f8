package model

// Page represents a single scanned page in an unordered input batch.
// A page is immutable input to the ordering engine except for candidate
// rejection marks and the single Position write at the end of a run.
type Page struct {
	// OriginalIndex is the page's 0-indexed position in the scan batch.
	// It is the tie-break and fallback ordering key when no usable
	// number candidate survives filtering.
	OriginalIndex int

	// Name is the source filename, used in diagnostics.
	Name string

	// Path is the full path to the scanned image, when the page was
	// loaded from disk.
	Path string

	// Width and Height are the image dimensions in pixels, when known.
	Width  int
	Height int

	// Candidates holds the OCR number detections for this page, in the
	// order the OCR collaborator reported them.
	Candidates []Candidate

	// Position is the assigned 1-indexed output position. Zero until
	// the ordering engine assigns it.
	Position int
}

// NewPage creates a page with its scan-batch index and source name.
func NewPage(originalIndex int, name string) *Page {
	return &Page{
		OriginalIndex: originalIndex,
		Name:          name,
	}
}

// AddCandidate appends an OCR detection to the page.
func (p *Page) AddCandidate(c Candidate) {
	p.Candidates = append(p.Candidates, c)
}

// BestCandidate returns the accepted candidate with the highest derived
// confidence, preferring corner regions on ties. It returns nil when no
// candidate survives filtering.
func (p *Page) BestCandidate() *Candidate {
	var best *Candidate
	for i := range p.Candidates {
		c := &p.Candidates[i]
		if !c.Accepted() {
			continue
		}
		if best == nil || betterCandidate(c, best) {
			best = c
		}
	}
	return best
}

// betterCandidate reports whether a should be preferred over b.
// Higher derived confidence wins; equal confidence prefers a corner
// detection over a non-corner one.
func betterCandidate(a, b *Candidate) bool {
	if a.Confidence != b.Confidence {
		return a.Confidence > b.Confidence
	}
	return a.Region.IsCorner() && !b.Region.IsCorner()
}
