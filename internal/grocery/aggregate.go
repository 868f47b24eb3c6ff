// Package grocery builds and maintains the grocery list: aggregating
// duplicate ingredient lines across recipes, assigning shop categories, and
// turning dictated transcripts into items.
package grocery

import (
	"regexp"
	"strings"

	"github.com/wouterdom/kookboek/internal/quantity"
)

// Candidate is a grocery line before persistence. Sources tracks which
// recipes contributed to it after aggregation.
type Candidate struct {
	Name           string
	Amount         string
	OriginalAmount string
	FromRecipeID   *int64
	Sources        []int64
}

var (
	punctuation = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// mergeKey normalizes an ingredient name for matching. The display name is
// untouched; "Ui" and "ui," collapse to the same key.
func mergeKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = punctuation.ReplaceAllString(key, "")
	key = whitespace.ReplaceAllString(key, " ")
	return strings.TrimSpace(key)
}

// Aggregate merges candidates that share a normalized name. The first-seen
// display name wins, amounts are combined, and contributing recipe ids
// accumulate in Sources. Once a line has two distinct sources it no longer
// belongs to a single recipe, so FromRecipeID is cleared. First-appearance
// order is preserved.
func Aggregate(items []Candidate) []Candidate {
	var order []string
	merged := make(map[string]*Candidate)

	for _, item := range items {
		key := mergeKey(item.Name)
		if key == "" {
			continue
		}

		existing, ok := merged[key]
		if !ok {
			c := item
			c.Sources = appendSources(nil, item)
			merged[key] = &c
			order = append(order, key)
			continue
		}

		existing.Amount = combineAmounts(existing.Amount, item.Amount)
		existing.Sources = appendSources(existing.Sources, item)
		if len(existing.Sources) >= 2 {
			existing.FromRecipeID = nil
		}
	}

	out := make([]Candidate, 0, len(order))
	for _, key := range order {
		out = append(out, *merged[key])
	}
	return out
}

func combineAmounts(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return quantity.Combine(a, b)
}

// appendSources adds the item's recipe ids without duplicating them.
func appendSources(sources []int64, item Candidate) []int64 {
	add := func(id int64) {
		for _, s := range sources {
			if s == id {
				return
			}
		}
		sources = append(sources, id)
	}
	if item.FromRecipeID != nil {
		add(*item.FromRecipeID)
	}
	for _, id := range item.Sources {
		add(id)
	}
	return sources
}
