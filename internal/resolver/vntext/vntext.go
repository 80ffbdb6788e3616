// Package vntext normalizes Vietnamese query text before keyword matching.
// Input arrives from terminals and chat frontends in mixed Unicode forms;
// composed (NFC) lower-case text is the canonical form every keyword table
// in this module is written in.
package vntext

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical matching form of a query: NFC-composed,
// lower-cased, with surrounding whitespace trimmed.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}

// ContainsAny reports whether any keyword occurs as a substring of the
// normalized query. Keywords are assumed to already be in canonical form.
func ContainsAny(query string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(query, kw) {
			return true
		}
	}
	return false
}
