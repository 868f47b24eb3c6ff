package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wouterdom/kookboek/internal/extract"
)

func validRecipe() extract.Recipe {
	return extract.Recipe{
		Title: "Appeltaart",
		Ingredients: []extract.Ingredient{
			{Name: "appels"},
			{Name: "bloem"},
		},
		Instructions: "1. Schil de appels. 2. Meng met de bloem en bak.",
	}
}

func TestValidateAcceptsCompleteRecipe(t *testing.T) {
	assert.NoError(t, Validate(validRecipe()))
}

func TestValidateRejectsMissingTitle(t *testing.T) {
	r := validRecipe()
	r.Title = "   "
	assert.ErrorIs(t, Validate(r), ErrMissingTitle)
}

func TestValidateRejectsTooFewIngredients(t *testing.T) {
	r := validRecipe()
	r.Ingredients = []extract.Ingredient{{Name: "appels"}, {Name: "  "}}
	assert.ErrorIs(t, Validate(r), ErrTooFewIngredients)
}

func TestValidateRejectsSingleStep(t *testing.T) {
	r := validRecipe()
	r.Instructions = "Bak de taart tot hij klaar is."
	assert.ErrorIs(t, Validate(r), ErrTooFewSteps)
}

func TestValidateAcceptsMultilineSteps(t *testing.T) {
	r := validRecipe()
	r.Instructions = "Schil de appels.\nMeng alles en bak de taart gaar."
	assert.NoError(t, Validate(r))
}

func TestValidateRejectsShortInstructions(t *testing.T) {
	r := validRecipe()
	r.Instructions = "1. 2."
	assert.ErrorIs(t, Validate(r), ErrTooFewSteps)
}
