// Package verbosity defines the result-cardinality modes accepted by
// SymSpell's lookup operations.
package verbosity

import "fmt"

// Verbosity controls how many suggestions a lookup returns and how they
// are pruned as better candidates are found.
type Verbosity int

const (
	// Top keeps only the single best suggestion.
	Top Verbosity = iota
	// Closest keeps every suggestion tied for the smallest edit distance
	// found so far.
	Closest
	// All keeps every suggestion within the edit distance bound.
	All
)

func (v Verbosity) String() string {
	switch v {
	case Top:
		return "top"
	case Closest:
		return "closest"
	case All:
		return "all"
	default:
		return "unknown"
	}
}

// Parse maps the CLI/HTTP-facing string form back to a Verbosity.
func Parse(s string) (Verbosity, error) {
	switch s {
	case "top", "":
		return Top, nil
	case "closest":
		return Closest, nil
	case "all":
		return All, nil
	default:
		return 0, fmt.Errorf("verbosity: unknown mode %q", s)
	}
}
