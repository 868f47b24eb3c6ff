// Package slug derives URL-safe identifiers from titles.
package slug

import (
	"crypto/rand"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// stripMarks decomposes to NFD and removes combining marks, so "Chloé" slugs
// to "chloe".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make turns a title into a lowercase, diacritic-free, dash-separated slug.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// WithSuffix appends a random 6-character base36 suffix. This is a
// best-effort collision strategy: a second collision is accepted as
// astronomically unlikely rather than retried.
func WithSuffix(s string) string {
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = suffixAlphabet[int(b)%len(suffixAlphabet)]
	}
	return s + "-" + string(buf)
}
