// Package numeric validates the decimal strings carried on tariff and duty
// fields. Values stay strings end to end because "" (never assessed) and "0"
// (assessed at zero) are different facts.
package numeric

import (
	"strings"

	"github.com/shopspring/decimal"
)

// IsValid reports whether s is a non-empty, parseable, finite decimal.
// Whitespace-only and garbage values are invalid, not errors; the duty
// tie-break treats them the same as absent.
func IsValid(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	_, err := decimal.NewFromString(s)
	return err == nil
}

// FirstValid returns the first valid numeric among vals, verbatim, or "" when
// none qualifies. "" is an explicit outcome, never coerced to "0".
func FirstValid(vals ...string) string {
	for _, v := range vals {
		if IsValid(v) {
			return v
		}
	}
	return ""
}
