package folio

import (
	"fmt"
	"strings"
)

// Warning reports a non-fatal condition encountered while restoring page
// order: a page that carried no usable number, a page displaced from the
// position its number claimed, or a low-confidence placement. Warnings
// never stop a run; they tell the caller which placements to double-check.
type Warning struct {
	// Page is the scan file name the warning concerns.
	Page string

	// Position is the page's assigned position in the restored order.
	Position int

	// Message describes the condition.
	Message string
}

// String returns a human-readable representation of the warning.
func (w Warning) String() string {
	return fmt.Sprintf("%s (position %d): %s", w.Page, w.Position, w.Message)
}

// FormatWarnings renders a slice of warnings as a newline-separated string
// suitable for logging. It returns the empty string for an empty slice.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, 0, len(warnings))
	for _, w := range warnings {
		lines = append(lines, w.String())
	}
	return strings.Join(lines, "\n")
}
