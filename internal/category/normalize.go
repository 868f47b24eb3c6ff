// Package category canonicalizes the two controlled vocabularies attached to
// imported recipes: the course type ("gang") and the publisher ("uitgever").
package category

import (
	"strings"
	"unicode"
)

// CanonicalGangen is the closed six-value course vocabulary. Only these values
// may exist as system categories in the gang namespace.
var CanonicalGangen = []string{
	"Ontbijt",
	"Lunch",
	"Voorgerecht",
	"Hoofdgerecht",
	"Bijgerecht",
	"Nagerecht",
}

// gangAliases maps lowercased singular and plural Dutch course words to a
// canonical value.
var gangAliases = map[string]string{
	"ontbijt":        "Ontbijt",
	"ontbijtje":      "Ontbijt",
	"ontbijtgerecht": "Ontbijt",
	"lunch":          "Lunch",
	"lunchgerecht":   "Lunch",
	"lunchgerechten": "Lunch",
	"voorgerecht":    "Voorgerecht",
	"voorgerechten":  "Voorgerecht",
	"voorafje":       "Voorgerecht",
	"hoofdgerecht":   "Hoofdgerecht",
	"hoofdgerechten": "Hoofdgerecht",
	"hoofdmaaltijd":  "Hoofdgerecht",
	"bijgerecht":     "Bijgerecht",
	"bijgerechten":   "Bijgerecht",
	"nagerecht":      "Nagerecht",
	"nagerechten":    "Nagerecht",
	"dessert":        "Nagerecht",
	"desserts":       "Nagerecht",
	"toetje":         "Nagerecht",
	"toetjes":        "Nagerecht",
}

// CanonicalizeGang maps a raw course-type value to one of the six canonical
// gang values. Unrecognized input returns ok=false; callers log a warning and
// import the recipe without a gang link.
func CanonicalizeGang(raw string) (string, bool) {
	gang, ok := gangAliases[strings.ToLower(strings.TrimSpace(raw))]
	return gang, ok
}

// publisherAliases maps cleaned publisher spellings to the canonical one. The
// keys are pre-cleaned: lowercase, no apostrophes, single spaces.
var publisherAliases = map[string]string{
	"chloe kookt":         "Chloé Kookt",
	"chloekookt":          "Chloé Kookt",
	"allerhande":          "Allerhande",
	"ah":                  "Allerhande",
	"ah allerhande":       "Allerhande",
	"albert heijn":        "Allerhande",
	"jumbo":               "Jumbo",
	"24kitchen":           "24Kitchen",
	"24 kitchen":          "24Kitchen",
	"leukerecepten":       "Leukerecepten",
	"leuke recepten":      "Leukerecepten",
	"libelle lekker":      "Libelle Lekker",
	"libelle":             "Libelle Lekker",
	"lekker en simpel":    "Lekker en Simpel",
	"uit paulines keuken": "Uit Paulines Keuken",
}

// particles are Dutch name particles kept lowercase in title case, except at
// the start of the name.
var particles = map[string]bool{
	"van": true,
	"de":  true,
	"der": true,
	"den": true,
	"het": true,
	"en":  true,
	"te":  true,
	"ten": true,
	"'t":  true,
}

// NormalizePublisher maps a raw publisher name to its canonical spelling. It
// never fails: unknown publishers fall back to a title-cased form of the
// input. Empty input yields an empty string.
func NormalizePublisher(raw string) string {
	cleaned := cleanPublisher(raw)
	if cleaned == "" {
		return ""
	}

	if canonical, ok := publisherAliases[cleaned]; ok {
		return canonical
	}

	// Second pass: fuzzy equality ignoring whitespace and hyphens.
	squeezed := strings.NewReplacer(" ", "", "-", "").Replace(cleaned)
	for alias, canonical := range publisherAliases {
		if strings.NewReplacer(" ", "", "-", "").Replace(alias) == squeezed {
			return canonical
		}
	}

	return titleCase(cleaned)
}

// cleanPublisher lowercases, trims, strips apostrophes, and collapses
// whitespace runs to single spaces.
func cleanPublisher(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "’", "")
	return strings.Join(strings.Fields(s), " ")
}

// titleCase uppercases the first rune of each word, keeping Dutch particles
// lowercase except at position 0.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if i > 0 && particles[w] {
			continue
		}
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
