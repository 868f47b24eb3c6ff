package importer

import (
	"errors"
	"regexp"
	"strings"

	"github.com/wouterdom/kookboek/internal/extract"
)

// Validation failures. These are per-recipe skips inside a batch, never job
// failures.
var (
	ErrMissingTitle      = errors.New("recipe has no title")
	ErrTooFewIngredients = errors.New("recipe needs at least 2 named ingredients")
	ErrTooFewSteps       = errors.New("recipe needs at least 2 instruction steps")
)

var stepMarker = regexp.MustCompile(`\d+\.`)

// Validate rejects extracted recipes that are too incomplete to store.
func Validate(r extract.Recipe) error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrMissingTitle
	}

	named := 0
	for _, ing := range r.Ingredients {
		if strings.TrimSpace(ing.Name) != "" {
			named++
		}
	}
	if named < 2 {
		return ErrTooFewIngredients
	}

	instructions := strings.TrimSpace(r.Instructions)
	if len(instructions) < 10 {
		return ErrTooFewSteps
	}
	if len(stepMarker.FindAllString(instructions, -1)) >= 2 {
		return nil
	}
	lines := 0
	for _, line := range strings.Split(instructions, "\n") {
		if strings.TrimSpace(line) != "" {
			lines++
		}
	}
	if lines >= 2 {
		return nil
	}
	return ErrTooFewSteps
}
