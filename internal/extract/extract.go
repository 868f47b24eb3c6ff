// Package extract defines the structured-extraction collaborator: the service
// that turns raw recipe sources (page text, PDF bytes, photos, transcripts)
// into structured records, and the defensive parsing of its responses.
package extract

import "context"

// Recipe is the transient, pre-persistence result of one extraction. It is
// consumed and discarded after persistence or rejection.
type Recipe struct {
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	PrepTime     string       `json:"prep_time,omitempty"`
	CookTime     string       `json:"cook_time,omitempty"`
	Servings     int          `json:"servings,omitempty"`
	Difficulty   string       `json:"difficulty,omitempty"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions string       `json:"instructions"`
	Gang         string       `json:"gang,omitempty"`
	Uitgever     string       `json:"uitgever,omitempty"`
	Source       string       `json:"source,omitempty"`
	SourcePages  string       `json:"source_pages,omitempty"`
}

type Ingredient struct {
	Amount  *float64 `json:"amount"`
	Unit    string   `json:"unit"`
	Name    string   `json:"name"`
	Section string   `json:"section,omitempty"`
}

// GroceryLine is one spoken grocery entry extracted from a transcript.
type GroceryLine struct {
	Name   string `json:"name"`
	Amount string `json:"amount,omitempty"`
}

// Service is the structured-extraction collaborator. Implementations call an
// external model; the rest of the pipeline depends only on this interface so
// tests can inject doubles.
type Service interface {
	// ExtractRecipesFromPDF extracts every recipe found in a cookbook PDF in
	// a single call. An error here fails the whole import job.
	ExtractRecipesFromPDF(ctx context.Context, pdf []byte) ([]Recipe, error)

	// ExtractRecipeFromText extracts a single recipe from pasted or fetched
	// page text.
	ExtractRecipeFromText(ctx context.Context, text string) (*Recipe, error)

	// ExtractRecipeFromImages extracts a single recipe from one or more
	// photos of the same recipe.
	ExtractRecipeFromImages(ctx context.Context, images [][]byte, mimeTypes []string) (*Recipe, error)

	// ExtractGroceryItems turns a dictated grocery transcript into items.
	ExtractGroceryItems(ctx context.Context, transcript string) ([]GroceryLine, error)
}
