package ocr

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/folio/model"
)

// Word is a single OCR-recognized word with its location on the page and
// the engine's confidence in the recognition, 0-100.
type Word struct {
	Text       string
	BBox       model.BBox
	Confidence float64
}

// ParseHOCR extracts the recognized words from an hOCR document, the
// XHTML-based format Tesseract emits for word-level results. Each word is a
// span with class "ocrx_word" whose title attribute carries the bounding
// box and confidence:
//
//	<span class='ocrx_word' title='bbox 102 48 131 62; x_wconf 93'>vii</span>
//
// Words with malformed title attributes are skipped rather than failing the
// whole page.
func ParseHOCR(doc string) ([]Word, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to parse hOCR: %w", err)
	}

	var words []Word
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocrx_word") {
			if w, ok := parseWord(n); ok {
				words = append(words, w)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return words, nil
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func parseWord(n *html.Node) (Word, bool) {
	text := strings.TrimSpace(nodeText(n))
	if text == "" {
		return Word{}, false
	}

	var title string
	for _, a := range n.Attr {
		if a.Key == "title" {
			title = a.Val
			break
		}
	}

	bbox, conf, ok := parseTitle(title)
	if !ok {
		return Word{}, false
	}
	return Word{Text: text, BBox: bbox, Confidence: conf}, true
}

// parseTitle decodes an hOCR title attribute: semicolon-separated
// properties, of which "bbox x0 y0 x1 y1" is required and "x_wconf n" is
// optional (absent in some engines; treated as confidence 0).
func parseTitle(title string) (model.BBox, float64, bool) {
	var bbox model.BBox
	var conf float64
	found := false

	for _, prop := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(prop))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "bbox":
			if len(fields) != 5 {
				return model.BBox{}, 0, false
			}
			coords := make([]float64, 4)
			for i, f := range fields[1:] {
				v, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return model.BBox{}, 0, false
				}
				coords[i] = v
			}
			bbox = model.BBox{X: coords[0], Y: coords[1], Width: coords[2] - coords[0], Height: coords[3] - coords[1]}
			found = true
		case "x_wconf":
			if len(fields) == 2 {
				if v, err := strconv.ParseFloat(fields[1], 64); err == nil {
					conf = v
				}
			}
		}
	}

	return bbox, conf, found
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}
