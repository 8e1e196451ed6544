// Package utils
package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText lowercases s and strips diacritics, "Capitán" becomes "capitan"
func NormalizeText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	return strings.ToLower(result)
}

// ContainsNormalized reports whether any field contains query, ignoring case and accents.
// An empty query matches everything.
func ContainsNormalized(query string, fields ...string) bool {
	query = strings.TrimSpace(NormalizeText(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(NormalizeText(field), query) {
			return true
		}
	}
	return false
}
