package web

import (
	"io"
	"net/http"
	"strconv"

	"github.com/wouterdom/kookboek/internal/quantity"
)

func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := s.recipes.List(r.Context())
	if err != nil {
		s.logger.Error("list recipes failed", "error", err)
		writeInternalError(w)
		return
	}
	out := make([]recipeResponse, 0, len(recipes))
	for _, rec := range recipes {
		out = append(out, toRecipeResponse(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetRecipe(w http.ResponseWriter, r *http.Request) {
	recipe, err := s.recipes.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		s.logger.Error("get recipe failed", "slug", r.PathValue("slug"), "error", err)
		writeInternalError(w)
		return
	}
	if recipe == nil {
		writeError(w, http.StatusNotFound, "not_found", "Recept niet gevonden.")
		return
	}

	ingredients, err := s.recipes.ListIngredients(r.Context(), recipe.ID)
	if err != nil {
		s.logger.Error("list ingredients failed", "slug", recipe.Slug, "error", err)
		writeInternalError(w)
		return
	}

	out := struct {
		recipeResponse
		Ingredients []ingredientResponse `json:"ingredients"`
	}{recipeResponse: toRecipeResponse(recipe)}
	for _, ing := range ingredients {
		out.Ingredients = append(out.Ingredients, ingredientResponse{
			Name:     ing.Name,
			Amount:   ing.AmountDisplay,
			Section:  ing.Section,
			Scalable: ing.Scalable,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleScaledRecipe returns the recipe's ingredient list scaled to the
// requested servings. Non-scalable amounts pass through unchanged.
func (s *Server) handleScaledRecipe(w http.ResponseWriter, r *http.Request) {
	servings, err := strconv.Atoi(r.URL.Query().Get("servings"))
	if err != nil || servings < 1 {
		writeError(w, http.StatusBadRequest, "invalid_servings", "Geef een geldig aantal personen op.")
		return
	}

	recipe, err := s.recipes.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		s.logger.Error("get recipe failed", "slug", r.PathValue("slug"), "error", err)
		writeInternalError(w)
		return
	}
	if recipe == nil {
		writeError(w, http.StatusNotFound, "not_found", "Recept niet gevonden.")
		return
	}

	ingredients, err := s.recipes.ListIngredients(r.Context(), recipe.ID)
	if err != nil {
		s.logger.Error("list ingredients failed", "slug", recipe.Slug, "error", err)
		writeInternalError(w)
		return
	}

	out := struct {
		Slug        string               `json:"slug"`
		Servings    int                  `json:"servings"`
		Ingredients []ingredientResponse `json:"ingredients"`
	}{Slug: recipe.Slug, Servings: servings}
	for _, ing := range ingredients {
		amount := ing.AmountDisplay
		if ing.Scalable {
			amount = quantity.Scale(amount, recipe.ServingsDefault, servings)
		}
		out.Ingredients = append(out.Ingredients, ingredientResponse{
			Name:     ing.Name,
			Amount:   amount,
			Section:  ing.Section,
			Scalable: ing.Scalable,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	if err := s.recipes.Delete(r.Context(), r.PathValue("slug")); err != nil {
		writeError(w, http.StatusNotFound, "not_found", "Recept niet gevonden.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetImage(w http.ResponseWriter, r *http.Request) {
	reader, mimeType, err := s.images.Get(r.Context(), r.PathValue("name"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer closeWithLog(reader, "image reader", s)

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := io.Copy(w, reader); err != nil {
		s.logger.Error("write image failed", "name", r.PathValue("name"), "error", err)
	}
}
