package quantity

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// nonScalable are phrases that describe a qualitative amount. Text containing
// any of these is returned unchanged regardless of the serving ratio.
var nonScalable = []string{
	"naar smaak",
	"naar wens",
	"snufje",
	"snuf",
	"scheutje",
	"mespunt",
	"beetje",
	"optioneel",
	"eventueel",
}

var (
	decimalAmount  = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)\s*([a-zA-Z].*)?$`)
	fractionAmount = regexp.MustCompile(`^(\d+)\s*/\s*(\d+)\s*(.*)$`)
	mixedAmount    = regexp.MustCompile(`^(\d+)\s+(\d+)\s*/\s*(\d+)\s*(.*)$`)
)

// commonFractions are the display forms scaled values below 1 snap to when
// within tolerance.
var commonFractions = []struct {
	Value float64
	Text  string
}{
	{0.125, "1/8"},
	{0.25, "1/4"},
	{1.0 / 3.0, "1/3"},
	{0.5, "1/2"},
	{2.0 / 3.0, "2/3"},
	{0.75, "3/4"},
}

const fractionTolerance = 0.05

// Scale adjusts an amount string by the ratio newServings/originalServings.
// Amounts that cannot be parsed are returned unchanged; a failed scale is
// silent by contract, never an error.
func Scale(amountText string, originalServings, newServings int) string {
	if originalServings == newServings || originalServings <= 0 || newServings <= 0 {
		return amountText
	}

	text := strings.TrimSpace(amountText)
	lower := strings.ToLower(text)
	for _, phrase := range nonScalable {
		if strings.Contains(lower, phrase) {
			return amountText
		}
	}

	ratio := float64(newServings) / float64(originalServings)

	if m := decimalAmount.FindStringSubmatch(text); m != nil {
		value, _ := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		return joinAmount(formatScaled(value*ratio), m[2])
	}
	if m := fractionAmount.FindStringSubmatch(text); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den != 0 {
			return joinAmount(formatScaled(num/den*ratio), m[3])
		}
	}
	if m := mixedAmount.FindStringSubmatch(text); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		num, _ := strconv.ParseFloat(m[2], 64)
		den, _ := strconv.ParseFloat(m[3], 64)
		if den != 0 {
			return joinAmount(formatScaled((whole+num/den)*ratio), m[4])
		}
	}

	return amountText
}

// formatScaled renders a scaled numeric value: small values snap to common
// kitchen fractions, values below 10 keep one decimal, larger values round to
// the nearest half.
func formatScaled(v float64) string {
	if v < 1 {
		for _, f := range commonFractions {
			if math.Abs(v-f.Value) <= fractionTolerance {
				return f.Text
			}
		}
	}
	if v < 10 {
		return formatNumber(v)
	}
	half := math.Round(v*2) / 2
	return formatNumber(half)
}

func joinAmount(value, rest string) string {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return value
	}
	return value + " " + rest
}
