package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Lower converts to lowercase.
func Lower(s string) string {
	return strings.ToLower(s)
}

// Upper converts to uppercase.
func Upper(s string) string {
	return strings.ToUpper(s)
}

// Capitalize uppercases the first rune and leaves the rest untouched.
func Capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Squish trims the string and collapses internal whitespace runs into
// single spaces.
func Squish(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Digits strips every non-digit rune, e.g. for phone number normalization.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ASCII strips diacritical marks ("crème brûlée" → "creme brulee").
// Falls back to the input unchanged if the fold fails.
func ASCII(s string) string {
	out, _, err := transform.String(asciiFold, s)
	if err != nil {
		return s
	}
	return out
}
