package web

import (
	"time"

	"github.com/wouterdom/kookboek/internal/domain"
)

type jobResponse struct {
	ID              string     `json:"id"`
	Filename        string     `json:"filename"`
	Status          string     `json:"status"`
	RecipesFound    int        `json:"recipes_found"`
	RecipesImported int        `json:"recipes_imported"`
	ErrorMessage    string     `json:"error_message,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

func toJobResponse(j *domain.ImportJob) jobResponse {
	return jobResponse{
		ID:              j.ID,
		Filename:        j.Filename,
		Status:          j.Status,
		RecipesFound:    j.RecipesFound,
		RecipesImported: j.RecipesImported,
		ErrorMessage:    j.ErrorMessage,
		CreatedAt:       j.CreatedAt,
		CompletedAt:     j.CompletedAt,
	}
}

type recipeResponse struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	PrepTime    string `json:"prep_time,omitempty"`
	CookTime    string `json:"cook_time,omitempty"`
	Servings    int    `json:"servings"`
	Difficulty  string `json:"difficulty,omitempty"`
	Source      string `json:"source,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

func toRecipeResponse(r *domain.Recipe) recipeResponse {
	return recipeResponse{
		ID:          r.ID,
		Slug:        r.Slug,
		Title:       r.Title,
		Description: r.Description,
		PrepTime:    r.PrepTime,
		CookTime:    r.CookTime,
		Servings:    r.ServingsDefault,
		Difficulty:  r.Difficulty,
		Source:      r.Source,
		ImageURL:    r.ImageURL,
	}
}

type ingredientResponse struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Section  string `json:"section,omitempty"`
	Scalable bool   `json:"scalable"`
}

type groceryItemResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Amount       string `json:"amount,omitempty"`
	Category     string `json:"category,omitempty"`
	IsChecked    bool   `json:"is_checked"`
	FromRecipeID *int64 `json:"from_recipe_id,omitempty"`
}

func toGroceryResponses(items []domain.GroceryItem) []groceryItemResponse {
	out := make([]groceryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, groceryItemResponse{
			ID:           item.ID,
			Name:         item.Name,
			Amount:       item.Amount,
			Category:     item.Category,
			IsChecked:    item.IsChecked,
			FromRecipeID: item.FromRecipeID,
		})
	}
	return out
}
