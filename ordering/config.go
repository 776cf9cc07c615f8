package ordering

// Config holds the plausibility-filtering thresholds shared by the
// context builder and the position resolver.
type Config struct {
	// OutlierGlobalMultiplier rejects Arabic candidates whose value
	// exceeds totalPages times this factor. Values that far beyond the
	// document length are near-certainly captured from unrelated printed
	// numbers (ISBNs, years, cross-references), not page numbers.
	// Default: 3
	OutlierGlobalMultiplier int

	// OutlierLocalMultiplier rejects candidates whose value exceeds the
	// page's expected scan position times this factor. The page's place
	// in the scan batch is a strong prior even before any ordering
	// decision is made.
	// Default: 5
	OutlierLocalMultiplier int

	// AcceptanceFloor rejects candidates whose derived confidence falls
	// below this value (0-100).
	// Default: 50
	AcceptanceFloor float64
}

// DefaultConfig returns the default filtering thresholds.
func DefaultConfig() Config {
	return Config{
		OutlierGlobalMultiplier: 3,
		OutlierLocalMultiplier:  5,
		AcceptanceFloor:         50,
	}
}
