// Package quantity parses free-form Dutch amount strings ("400-600g",
// "2 1/2 tl"), converts them to canonical base units, formats them back for
// display, and scales them by a serving-count ratio.
package quantity

import (
	"regexp"
	"strconv"
	"strings"
)

// Quantity is the parsed form of an amount string. RangeEnd is only
// meaningful when IsRange is true.
type Quantity struct {
	Value    float64
	Unit     string
	IsRange  bool
	RangeEnd float64
}

var (
	rangePattern  = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)\s*[-–]\s*(\d+(?:[.,]\d+)?)\s*([a-z]+)?\.?$`)
	simplePattern = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)\s*([a-z]+)?\.?$`)
)

// Parse parses an amount string into a Quantity. It returns nil when the text
// carries no numeric amount ("naar smaak", "een scheutje"); callers must treat
// nil as "non-numeric, pass through unchanged".
func Parse(amountText string) *Quantity {
	text := strings.ToLower(strings.TrimSpace(amountText))
	if text == "" {
		return nil
	}

	if m := rangePattern.FindStringSubmatch(text); m != nil {
		unit := m[3]
		if unit == "" {
			unit = "stuk"
		}
		return &Quantity{
			Value:    parseNumber(m[1]),
			Unit:     unit,
			IsRange:  true,
			RangeEnd: parseNumber(m[2]),
		}
	}

	if m := simplePattern.FindStringSubmatch(text); m != nil {
		unit := m[2]
		if unit == "" {
			unit = "stuk"
		}
		return &Quantity{Value: parseNumber(m[1]), Unit: unit}
	}

	return nil
}

// parseNumber accepts both comma and dot decimals. The patterns guarantee the
// text is numeric.
func parseNumber(s string) float64 {
	v, _ := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	return v
}
