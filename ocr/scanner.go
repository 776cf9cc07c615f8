package ocr

import (
	"fmt"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/numeral"
)

// ScanConfig controls region classification and confidence scoring for
// page-number candidates.
type ScanConfig struct {
	// CornerWidth is the maximum width in pixels of a corner region. The
	// effective width is capped at a quarter of the page width.
	CornerWidth float64

	// CornerHeight is the maximum height in pixels of a corner region. The
	// effective height of the top corners is capped at a tenth of the page
	// height.
	CornerHeight float64

	// BandRatio is the fraction of page height treated as the header band
	// at the top and the footer band at the bottom.
	BandRatio float64

	// TopBoost is added to the confidence of candidates in a top corner,
	// the most common page-number location.
	TopBoost float64

	// RightBoost is added to the confidence of candidates on the right
	// side, the standard location in bound books.
	RightBoost float64

	// CenterPenalty is subtracted from candidates found in the page body,
	// which are usually content rather than page numbers.
	CenterPenalty float64

	// AmbiguousPenalty is subtracted from single-letter Roman readings
	// ("i", "l", "x"), which OCR frequently confuses with content letters.
	AmbiguousPenalty float64
}

// DefaultScanConfig returns the scanning thresholds tuned for typical book
// and document scans at 150-300 DPI.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		CornerWidth:      200,
		CornerHeight:     150,
		BandRatio:        0.10,
		TopBoost:         15,
		RightBoost:       10,
		CenterPenalty:    30,
		AmbiguousPenalty: 25,
	}
}

// Scanner turns OCR word output into page-number candidates: it classifies
// each word's source region on the page, parses the text as a numeral, and
// derives a location-aware confidence score.
type Scanner struct {
	config ScanConfig
}

// NewScanner creates a scanner with default thresholds.
func NewScanner() *Scanner {
	return &Scanner{config: DefaultScanConfig()}
}

// NewScannerWithConfig creates a scanner with custom thresholds.
func NewScannerWithConfig(config ScanConfig) *Scanner {
	return &Scanner{config: config}
}

// Scan classifies the OCR words for a page and appends a candidate for
// every word that parses as a numeral. The page's Width and Height must be
// set (see reader.LoadImage); words that do not parse are ignored rather
// than recorded.
func (s *Scanner) Scan(p *model.Page, words []Word) error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("page %s has no dimensions; decode the image first", p.Name)
	}

	for _, w := range words {
		v, ok := numeral.Parse(w.Text)
		if !ok {
			continue
		}

		region := s.classifyRegion(w.BBox, float64(p.Width), float64(p.Height))
		p.AddCandidate(model.Candidate{
			RawText:       w.Text,
			System:        v.System,
			Value:         v.Int,
			Ambiguous:     v.Ambiguous,
			Region:        region,
			BBox:          w.BBox,
			OCRConfidence: w.Confidence,
			Confidence:    s.deriveConfidence(w.Confidence, region, v.Ambiguous),
		})
	}
	return nil
}

// classifyRegion maps a word's center point to a page region. Corner
// regions take priority over the header and footer bands they overlap.
func (s *Scanner) classifyRegion(b model.BBox, pageW, pageH float64) model.Region {
	c := b.Center()

	cornerW := min(s.config.CornerWidth, pageW/4)
	cornerH := min(s.config.CornerHeight, pageH/10)

	top := c.Y <= cornerH
	bottom := c.Y >= pageH-s.config.CornerHeight
	left := c.X <= cornerW
	right := c.X >= pageW-s.config.CornerWidth

	switch {
	case top && left:
		return model.RegionTopLeft
	case top && right:
		return model.RegionTopRight
	case bottom && left:
		return model.RegionBottomLeft
	case bottom && right:
		return model.RegionBottomRight
	case c.Y <= pageH*s.config.BandRatio:
		return model.RegionHeader
	case c.Y >= pageH*(1-s.config.BandRatio):
		return model.RegionFooter
	default:
		return model.RegionCenter
	}
}

// deriveConfidence starts from the OCR engine's word confidence and adjusts
// for location and ambiguity. The result is clamped to 0-100.
func (s *Scanner) deriveConfidence(ocrConf float64, region model.Region, ambiguous bool) float64 {
	conf := ocrConf

	switch region {
	case model.RegionTopLeft:
		conf += s.config.TopBoost
	case model.RegionTopRight:
		conf += s.config.TopBoost + s.config.RightBoost
	case model.RegionBottomRight:
		conf += s.config.RightBoost
	case model.RegionCenter:
		conf -= s.config.CenterPenalty
	}

	if ambiguous {
		conf -= s.config.AmbiguousPenalty
	}

	if conf < 0 {
		conf = 0
	}
	if conf > 100 {
		conf = 100
	}
	return conf
}
