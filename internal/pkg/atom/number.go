package atom

import "strconv"

// ParseNumber parses a NUMBER_NODE's name into the finite real value it
// denotes (§3). Names that do not parse as a finite decimal are not valid
// NUMBER_NODE names; the reducer names the numbers it builds with
// FormatNumber or plain integer literals, so this does not fail on
// numbers the reducer produced.
func ParseNumber(name string) (float64, bool) {
	v, err := strconv.ParseFloat(name, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatNumber renders a real value as the canonical NUMBER_NODE name the
// reducer should construct new number atoms with, so that folding the
// same value twice always interns to the same node (§4.A idempotence).
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
