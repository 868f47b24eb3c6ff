package quantity

import (
	"fmt"
	"math"
	"strings"
)

// conversion maps a unit alias to its base unit and the multiplicative factor
// to convert to that base.
type conversion struct {
	Base   string
	Factor float64
}

// conversions maps every known unit spelling (singular, plural, abbreviation)
// to exactly one base unit. Bases are "g", "ml", or the countable unit itself.
var conversions = map[string]conversion{
	// weight -> grams
	"g":          {"g", 1},
	"gr":         {"g", 1},
	"gram":       {"g", 1},
	"grammen":    {"g", 1},
	"kg":         {"g", 1000},
	"kilo":       {"g", 1000},
	"kilogram":   {"g", 1000},
	"mg":         {"g", 0.001},
	"pond":       {"g", 500},
	"ons":        {"g", 100},
	// volume -> milliliters
	"ml":         {"ml", 1},
	"milliliter": {"ml", 1},
	"cl":         {"ml", 10},
	"dl":         {"ml", 100},
	"l":          {"ml", 1000},
	"liter":      {"ml", 1000},
	"liters":     {"ml", 1000},
	// countables, each its own base
	"stuk":       {"stuk", 1},
	"stuks":      {"stuk", 1},
	"st":         {"stuk", 1},
	"el":         {"el", 1},
	"eetlepel":   {"el", 1},
	"eetlepels":  {"el", 1},
	"tl":         {"tl", 1},
	"theelepel":  {"tl", 1},
	"theelepels": {"tl", 1},
	"kop":        {"kop", 1},
	"kopje":      {"kop", 1},
	"kopjes":     {"kop", 1},
	"teen":       {"teen", 1},
	"tenen":      {"teen", 1},
	"teentje":    {"teen", 1},
	"teentjes":   {"teen", 1},
	"blik":       {"blik", 1},
	"blikje":     {"blik", 1},
	"blikjes":    {"blik", 1},
	"zak":        {"zak", 1},
	"zakje":      {"zak", 1},
	"zakjes":     {"zak", 1},
	"bos":        {"bos", 1},
	"bosje":      {"bos", 1},
	"bosjes":     {"bos", 1},
	"snee":       {"snee", 1},
	"sneetje":    {"snee", 1},
	"sneetjes":   {"snee", 1},
	"plak":       {"plak", 1},
	"plakje":     {"plak", 1},
	"plakjes":    {"plak", 1},
	"takje":      {"takje", 1},
	"takjes":     {"takje", 1},
}

// ToBase converts a quantity to its canonical base unit. Unknown units pass
// through unchanged; graceful degradation here is intentional, not an error.
func ToBase(q Quantity) Quantity {
	conv, ok := conversions[strings.ToLower(q.Unit)]
	if !ok {
		return q
	}
	out := Quantity{
		Value:   q.Value * conv.Factor,
		Unit:    conv.Base,
		IsRange: q.IsRange,
	}
	if q.IsRange {
		out.RangeEnd = q.RangeEnd * conv.Factor
	}
	return out
}

// Format renders a base quantity as a friendly display string. Grams and
// milliliters at or above 1000 are promoted to kg and liters.
func Format(q Quantity) string {
	if q.IsRange {
		return fmt.Sprintf("%s-%s %s", formatNumber(q.Value), formatNumber(q.RangeEnd), q.Unit)
	}

	switch q.Unit {
	case "g":
		if q.Value >= 1000 {
			return formatNumber(q.Value/1000) + " kg"
		}
	case "ml":
		if q.Value >= 1000 {
			return formatNumber(q.Value/1000) + " l"
		}
	}
	return formatNumber(q.Value) + " " + q.Unit
}

// Combine merges two display strings into one. Both sides are parsed and
// converted to base units; when the base units differ (or either side is not
// parseable, or only one side is a range) the two strings are joined with
// " + " instead of doing cross-unit arithmetic.
func Combine(a, b string) string {
	qa := Parse(a)
	qb := Parse(b)
	if qa == nil || qb == nil {
		return a + " + " + b
	}

	ba := ToBase(*qa)
	bb := ToBase(*qb)
	if ba.Unit != bb.Unit || ba.IsRange != bb.IsRange {
		return a + " + " + b
	}

	sum := Quantity{
		Value:   ba.Value + bb.Value,
		Unit:    ba.Unit,
		IsRange: ba.IsRange,
	}
	if sum.IsRange {
		sum.RangeEnd = ba.RangeEnd + bb.RangeEnd
	}
	return Format(sum)
}

// Display renders an extracted amount and unit as the original display
// string stored alongside an ingredient. A nil amount yields just the unit,
// which may itself be empty.
func Display(value *float64, unit string) string {
	unit = strings.TrimSpace(unit)
	if value == nil {
		return unit
	}
	if unit == "" {
		return formatNumber(*value)
	}
	return formatNumber(*value) + " " + unit
}

// formatNumber renders a value rounded to one decimal with a trailing ".0"
// stripped.
func formatNumber(v float64) string {
	rounded := math.Round(v*10) / 10
	if rounded == math.Trunc(rounded) {
		return fmt.Sprintf("%d", int64(rounded))
	}
	return fmt.Sprintf("%.1f", rounded)
}
