package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeGang(t *testing.T) {
	gang, ok := CanonicalizeGang("voorgerechten")
	assert.True(t, ok)
	assert.Equal(t, "Voorgerecht", gang)

	gang, ok = CanonicalizeGang("  Toetje ")
	assert.True(t, ok)
	assert.Equal(t, "Nagerecht", gang)
}

func TestCanonicalizeGangUnknown(t *testing.T) {
	_, ok := CanonicalizeGang("appetizer")
	assert.False(t, ok)

	_, ok = CanonicalizeGang("")
	assert.False(t, ok)
}

func TestCanonicalizeGangCoversAllSixValues(t *testing.T) {
	seen := map[string]bool{}
	for _, gang := range gangAliases {
		seen[gang] = true
	}
	assert.Len(t, seen, len(CanonicalGangen))
	for _, gang := range CanonicalGangen {
		assert.True(t, seen[gang], gang)
	}
}

func TestNormalizePublisherKnownAlias(t *testing.T) {
	assert.Equal(t, "Chloé Kookt", NormalizePublisher("CHLOE KOOKT"))
	assert.Equal(t, "Chloé Kookt", NormalizePublisher("chloe  kookt"))
	assert.Equal(t, "Allerhande", NormalizePublisher("  albert   heijn "))
}

func TestNormalizePublisherFuzzySecondPass(t *testing.T) {
	// "leuke-recepten" only matches after hyphens are ignored.
	assert.Equal(t, "Leukerecepten", NormalizePublisher("leuke-recepten"))
}

func TestNormalizePublisherFallbackTitleCase(t *testing.T) {
	assert.Equal(t, "Random Chef", NormalizePublisher("Random Chef"))
	assert.Equal(t, "Keuken van de Buurvrouw", NormalizePublisher("keuken van de buurvrouw"))
	// A particle at position 0 is still capitalized.
	assert.Equal(t, "De Kooktent", NormalizePublisher("de kooktent"))
}

func TestNormalizePublisherEmpty(t *testing.T) {
	assert.Equal(t, "", NormalizePublisher(""))
	assert.Equal(t, "", NormalizePublisher("   "))
}
