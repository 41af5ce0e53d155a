// Package cleanse normalizes the heterogeneous text columns of a listings
// table into numeric form and removes incomplete and duplicate records.
//
// The parsers are deliberately permissive: they mirror how the source data is
// actually shaped ("4.1/5", "1,200", "Yes") rather than validating ranges.
package cleanse

import (
	"strconv"
	"strings"
)

// ParseRating extracts the numeric rating from strings like "4.1/5".
// The value must contain a '/' and the text before it must be digits with at
// most one decimal point; anything else ("NEW", "-", "3.8 /5") is missing.
// No range check: "9.9/5" parses.
func ParseRating(s string) (float64, bool) {
	i := strings.IndexByte(s, '/')
	if i < 0 {
		return 0, false
	}
	head := s[:i]
	digits := 0
	dots := 0
	for _, c := range head {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
		default:
			return 0, false
		}
	}
	if digits == 0 || dots > 1 {
		return 0, false
	}
	v, err := strconv.ParseFloat(head, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseCost strips every non-digit character and parses the remainder.
// Thousands separators and currency noise vanish; so do decimal points, which
// makes "1,200.50" read as 120050. That quirk matches the source data, where
// costs are whole rupee amounts. An empty remainder is missing.
func ParseCost(s string) (float64, bool) {
	var b strings.Builder
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseYesNo maps the literal "Yes"/"No" to 1/0. Any other value is missing.
func ParseYesNo(s string) (int, bool) {
	switch s {
	case "Yes":
		return 1, true
	case "No":
		return 0, true
	default:
		return 0, false
	}
}

// ParseVotes parses a vote count, defaulting to 0 when missing, negative, or
// unparseable.
func ParseVotes(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
