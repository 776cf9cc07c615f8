package model

import "github.com/tsawler/folio/numeral"

// Region identifies the area of the page where a candidate was detected.
// Corner placement is the typographical convention for page numbers, so
// corner regions are preferred when confidence ties.
type Region int

const (
	// RegionUnknown indicates the detection position was not recorded.
	RegionUnknown Region = iota
	// RegionTopLeft is the top-left corner of the page.
	RegionTopLeft
	// RegionTopRight is the top-right corner of the page.
	RegionTopRight
	// RegionBottomLeft is the bottom-left corner of the page.
	RegionBottomLeft
	// RegionBottomRight is the bottom-right corner of the page.
	RegionBottomRight
	// RegionHeader is the top band of the page outside the corners.
	RegionHeader
	// RegionFooter is the bottom band of the page outside the corners.
	RegionFooter
	// RegionCenter is the body of the page.
	RegionCenter
)

// String returns the string representation of the region.
func (r Region) String() string {
	switch r {
	case RegionTopLeft:
		return "top_left"
	case RegionTopRight:
		return "top_right"
	case RegionBottomLeft:
		return "bottom_left"
	case RegionBottomRight:
		return "bottom_right"
	case RegionHeader:
		return "header"
	case RegionFooter:
		return "footer"
	case RegionCenter:
		return "center"
	default:
		return "unknown"
	}
}

// IsCorner reports whether the region is one of the four page corners.
func (r Region) IsCorner() bool {
	switch r {
	case RegionTopLeft, RegionTopRight, RegionBottomLeft, RegionBottomRight:
		return true
	}
	return false
}

// Candidate is one OCR numeral detection on one page.
type Candidate struct {
	// RawText is the string as read by OCR.
	RawText string

	// System is the numeral notation the text parsed as.
	System numeral.System

	// Value is the integer value of the numeral. Valid only when
	// System is not Unrecognized.
	Value int

	// Ambiguous marks single-letter Roman candidates, which are common
	// OCR artifacts unrelated to page numbers.
	Ambiguous bool

	// Region is the page area where the text was detected.
	Region Region

	// BBox is the detection bounding box in image pixels, when known.
	BBox BBox

	// OCRConfidence is the recognition confidence reported by the OCR
	// engine, 0-100.
	OCRConfidence float64

	// Confidence is the derived confidence, 0-100: adjusted upward for
	// isolated corner-positioned numbers, downward for numbers embedded
	// in longer text runs. Supplied by the OCR collaborator and consumed
	// as-is by the ordering engine.
	Confidence float64

	// Rejected marks candidates filtered out as implausible. Rejected
	// candidates are retained, not deleted, to preserve the reasoning
	// trail.
	Rejected bool

	// RejectReason describes why the candidate was rejected.
	RejectReason string
}

// Accepted reports whether the candidate parsed as a numeral and has not
// been rejected by plausibility filtering.
func (c *Candidate) Accepted() bool {
	return c.System != numeral.Unrecognized && !c.Rejected
}
