// Package numeral converts raw OCR candidate strings into typed numeral
// values. It recognizes Arabic numerals (contiguous digits) and Roman
// numerals (the I, V, X, L subset matched against the standard
// subtractive-pair grammar). Strings that parse as neither are reported
// as unrecognized and excluded from ordering.
package numeral

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// System identifies the numeral notation of a parsed candidate.
type System int

const (
	// Unrecognized indicates the string is not a numeral in any
	// supported notation.
	Unrecognized System = iota
	// Arabic indicates a contiguous-digit numeral (1, 2, 3, ...).
	Arabic
	// Roman indicates a Roman numeral (i, iv, xii, ...).
	Roman
)

// String returns the string representation of the system.
func (s System) String() string {
	switch s {
	case Arabic:
		return "arabic"
	case Roman:
		return "roman"
	default:
		return "unrecognized"
	}
}

// Value is the result of parsing one OCR candidate string.
type Value struct {
	System System
	Int    int

	// Ambiguous marks single-letter Roman numerals ("i", "v", "x", "l").
	// Single letters are common OCR artifacts unrelated to page numbers,
	// so downstream confidence scoring treats them with suspicion.
	Ambiguous bool
}

// maxNumeral caps accepted numeric values. Page numbers beyond four
// digits are not plausible for scanned documents.
const maxNumeral = 9999

// romanGrammar validates the I,V,X,L subset of the standard
// subtractive-pair grammar (values 1 through 89).
var romanGrammar = regexp.MustCompile(`^(xl|l?x{0,3})(ix|iv|v?i{0,3})$`)

// Parse interprets one raw OCR candidate string as a numeral.
// It returns the typed value and true on success, or a zero Value and
// false if the string cannot be parsed as either system.
//
// Fullwidth digit forms (common in CJK-locale OCR output) are folded to
// ASCII before parsing. Surrounding punctuation such as the dashes in
// "- 7 -" is stripped.
func Parse(raw string) (Value, bool) {
	s := strings.TrimSpace(width.Fold.String(raw))
	s = strings.Trim(s, "-–—.,:;()[]| ")
	if s == "" {
		return Value{}, false
	}

	if isDigits(s) {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > maxNumeral {
			return Value{}, false
		}
		return Value{System: Arabic, Int: n}, true
	}

	if match := longestRoman(s); match != "" {
		n := romanToInt(match)
		if n < 1 {
			return Value{}, false
		}
		return Value{
			System:    Roman,
			Int:       n,
			Ambiguous: len(match) == 1,
		}, true
	}

	return Value{}, false
}

// isDigits reports whether s consists solely of ASCII digits.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// longestRoman finds the longest substring of s that is a valid Roman
// numeral. Preferring the longest match avoids systematically truncating
// high page numbers to low ones (a region reading "vii" must not resolve
// to "i").
func longestRoman(s string) string {
	lower := strings.ToLower(s)
	for length := len(lower); length >= 1; length-- {
		for start := 0; start+length <= len(lower); start++ {
			sub := lower[start : start+length]
			if isRomanLetters(sub) && romanGrammar.MatchString(sub) {
				return sub
			}
		}
	}
	return ""
}

// isRomanLetters reports whether s contains only the supported Roman
// numeral letters.
func isRomanLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'i', 'v', 'x', 'l':
		default:
			return false
		}
	}
	return len(s) > 0
}

// romanToInt converts a lowercase Roman numeral to its integer value
// using the subtractive rule. The input is assumed grammar-valid.
func romanToInt(roman string) int {
	values := map[byte]int{'i': 1, 'v': 5, 'x': 10, 'l': 50}

	total := 0
	prev := 0
	for i := len(roman) - 1; i >= 0; i-- {
		v := values[roman[i]]
		if v < prev {
			total -= v
		} else {
			total += v
		}
		prev = v
	}
	return total
}
