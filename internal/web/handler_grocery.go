package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/wouterdom/kookboek/internal/domain"
	"github.com/wouterdom/kookboek/internal/grocery"
)

// handleGroceryVoice turns a dictated transcript into categorized list items.
// Transcription itself happens on the client; this endpoint receives text.
func (s *Server) handleGroceryVoice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Transcript string `json:"transcript"`
	}
	if err := decodeBody(r, &req); err != nil || strings.TrimSpace(req.Transcript) == "" {
		writeError(w, http.StatusBadRequest, "transcript_required", "Geen gesproken tekst ontvangen.")
		return
	}

	items, err := s.voice.AddFromTranscript(r.Context(), req.Transcript)
	if err != nil {
		s.logger.Warn("voice grocery failed", "error", err)
		writeImportError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGroceryResponses(items))
}

func (s *Server) handleGroceryFromRecipe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RecipeID int64 `json:"recipe_id"`
		Servings int   `json:"servings"`
	}
	if err := decodeBody(r, &req); err != nil || req.RecipeID < 1 {
		writeError(w, http.StatusBadRequest, "recipe_required", "Geef een recept op.")
		return
	}

	items, err := s.list.AddRecipe(r.Context(), req.RecipeID, req.Servings)
	if err != nil {
		s.logger.Warn("add recipe to list failed", "recipe_id", req.RecipeID, "error", err)
		writeError(w, http.StatusNotFound, "not_found", "Recept niet gevonden.")
		return
	}
	writeJSON(w, http.StatusCreated, toGroceryResponses(items))
}

func (s *Server) handleListGroceries(w http.ResponseWriter, r *http.Request) {
	items, err := s.groceries.List(r.Context())
	if err != nil {
		s.logger.Error("list groceries failed", "error", err)
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, toGroceryResponses(items))
}

// handleCreateGroceries adds manually typed items.
func (s *Server) handleCreateGroceries(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items []struct {
			Name   string `json:"name"`
			Amount string `json:"amount"`
		} `json:"items"`
	}
	if err := decodeBody(r, &req); err != nil || len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "items_required", "Voeg minstens één artikel toe.")
		return
	}

	batch := make([]domain.GroceryItem, 0, len(req.Items))
	for _, item := range req.Items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}
		category := grocery.Categorize(name)
		categoryID, err := s.groceries.CategoryIDByName(r.Context(), category)
		if err != nil {
			s.logger.Warn("failed to resolve grocery category", "category", category, "error", err)
		}
		batch = append(batch, domain.GroceryItem{
			Name:           name,
			Amount:         item.Amount,
			OriginalAmount: item.Amount,
			CategoryID:     categoryID,
			Category:       category,
		})
	}
	if len(batch) == 0 {
		writeError(w, http.StatusBadRequest, "items_required", "Voeg minstens één artikel toe.")
		return
	}

	created, err := s.groceries.CreateBatch(r.Context(), batch)
	if err != nil {
		s.logger.Error("create groceries failed", "error", err)
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusCreated, toGroceryResponses(created))
}

func (s *Server) handleCheckGrocery(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "Ongeldig artikelnummer.")
		return
	}
	var req struct {
		Checked bool `json:"checked"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Ongeldig verzoek.")
		return
	}

	if err := s.groceries.SetChecked(r.Context(), id, req.Checked); err != nil {
		writeError(w, http.StatusNotFound, "not_found", "Artikel niet gevonden.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearChecked(w http.ResponseWriter, r *http.Request) {
	if err := s.groceries.ClearChecked(r.Context()); err != nil {
		s.logger.Error("clear checked failed", "error", err)
		writeInternalError(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearAll(w http.ResponseWriter, r *http.Request) {
	if err := s.groceries.ClearAll(r.Context()); err != nil {
		s.logger.Error("clear grocery list failed", "error", err)
		writeInternalError(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
