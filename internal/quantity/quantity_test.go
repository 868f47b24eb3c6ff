package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	q := Parse("400-600g")
	require.NotNil(t, q)
	assert.Equal(t, 400.0, q.Value)
	assert.Equal(t, 600.0, q.RangeEnd)
	assert.Equal(t, "g", q.Unit)
	assert.True(t, q.IsRange)
}

func TestParseRangeWithoutUnit(t *testing.T) {
	q := Parse("2-3")
	require.NotNil(t, q)
	assert.Equal(t, 2.0, q.Value)
	assert.Equal(t, 3.0, q.RangeEnd)
	assert.Equal(t, "stuk", q.Unit)
	assert.True(t, q.IsRange)
}

func TestParseSimple(t *testing.T) {
	q := Parse("250 ml")
	require.NotNil(t, q)
	assert.Equal(t, 250.0, q.Value)
	assert.Equal(t, "ml", q.Unit)
	assert.False(t, q.IsRange)
}

func TestParseCommaDecimal(t *testing.T) {
	q := Parse("2,5 dl")
	require.NotNil(t, q)
	assert.Equal(t, 2.5, q.Value)
	assert.Equal(t, "dl", q.Unit)
}

func TestParseUppercaseAndWhitespace(t *testing.T) {
	q := Parse("  500 G ")
	require.NotNil(t, q)
	assert.Equal(t, 500.0, q.Value)
	assert.Equal(t, "g", q.Unit)
}

func TestParseNonNumeric(t *testing.T) {
	assert.Nil(t, Parse("naar smaak"))
	assert.Nil(t, Parse("een scheutje"))
	assert.Nil(t, Parse(""))
}

func TestToBaseKilogram(t *testing.T) {
	q := ToBase(Quantity{Value: 1.5, Unit: "kg"})
	assert.Equal(t, 1500.0, q.Value)
	assert.Equal(t, "g", q.Unit)
}

func TestToBaseDeciliter(t *testing.T) {
	q := ToBase(Quantity{Value: 2, Unit: "dl"})
	assert.Equal(t, 200.0, q.Value)
	assert.Equal(t, "ml", q.Unit)
}

func TestToBaseCountableAlias(t *testing.T) {
	q := ToBase(Quantity{Value: 3, Unit: "eetlepels"})
	assert.Equal(t, 3.0, q.Value)
	assert.Equal(t, "el", q.Unit)
}

func TestToBaseUnknownUnitPassesThrough(t *testing.T) {
	q := ToBase(Quantity{Value: 2, Unit: "handjes"})
	assert.Equal(t, 2.0, q.Value)
	assert.Equal(t, "handjes", q.Unit)
}

func TestToBaseRange(t *testing.T) {
	q := ToBase(Quantity{Value: 0.4, RangeEnd: 0.6, Unit: "kg", IsRange: true})
	assert.Equal(t, 400.0, q.Value)
	assert.Equal(t, 600.0, q.RangeEnd)
	assert.Equal(t, "g", q.Unit)
}

func TestFormatPromotesKilograms(t *testing.T) {
	assert.Equal(t, "1.5 kg", Format(ToBase(Quantity{Value: 1500, Unit: "g"})))
	assert.Equal(t, "1 kg", Format(Quantity{Value: 1000, Unit: "g"}))
	assert.Equal(t, "750 g", Format(Quantity{Value: 750, Unit: "g"}))
}

func TestFormatPromotesLiters(t *testing.T) {
	assert.Equal(t, "1.5 l", Format(Quantity{Value: 1500, Unit: "ml"}))
	assert.Equal(t, "2 l", Format(Quantity{Value: 2000, Unit: "ml"}))
}

func TestFormatCountable(t *testing.T) {
	assert.Equal(t, "3 el", Format(Quantity{Value: 3, Unit: "el"}))
	assert.Equal(t, "2.5 tl", Format(Quantity{Value: 2.5, Unit: "tl"}))
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "400-600 g", Format(Quantity{Value: 400, RangeEnd: 600, Unit: "g", IsRange: true}))
}

// Round-trip stability: formatting an already-base quantity and parsing it
// again must not change the value.
func TestFormatToBaseRoundTrip(t *testing.T) {
	q := Quantity{Value: 250, Unit: "g"}
	out := Parse(Format(ToBase(q)))
	require.NotNil(t, out)
	assert.Equal(t, q, ToBase(*out))
}

func TestCombineSameBase(t *testing.T) {
	assert.Equal(t, "1 kg", Combine("400 g", "0.6 kg"))
	assert.Equal(t, "5 el", Combine("2 el", "3 eetlepels"))
}

func TestCombineDifferentBases(t *testing.T) {
	assert.Equal(t, "200 g + 2 el", Combine("200 g", "2 el"))
}

func TestCombineUnparseable(t *testing.T) {
	assert.Equal(t, "naar smaak + 200 g", Combine("naar smaak", "200 g"))
}

func TestCombineRanges(t *testing.T) {
	assert.Equal(t, "300-500 g", Combine("100-200 g", "200-300 g"))
	assert.Equal(t, "100-200 g + 50 g", Combine("100-200 g", "50 g"))
}
