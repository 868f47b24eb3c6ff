package grocery

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wouterdom/kookboek/internal/domain"
	"github.com/wouterdom/kookboek/internal/quantity"
)

// recipeReader is the subset of store.RecipeStore the list service needs.
type recipeReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
	ListIngredients(ctx context.Context, recipeID int64) ([]domain.ParsedIngredient, error)
}

// ListService adds a recipe's ingredients to the grocery list, scaled to the
// requested servings and aggregated against lines already on the list.
type ListService struct {
	items   groceryRepository
	recipes recipeReader
	logger  *slog.Logger
}

func NewListService(items groceryRepository, recipes recipeReader, logger *slog.Logger) *ListService {
	return &ListService{items: items, recipes: recipes, logger: logger}
}

// AddRecipe scales each scalable ingredient by the servings ratio, merges
// duplicates within the recipe, and folds the result into the current list:
// a name already on the list gets its amount combined in place, everything
// else becomes a new item. Returns the newly created items.
func (s *ListService) AddRecipe(ctx context.Context, recipeID int64, servings int) ([]domain.GroceryItem, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}
	if recipe == nil {
		return nil, fmt.Errorf("recipe not found")
	}
	ingredients, err := s.recipes.ListIngredients(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredients: %w", err)
	}

	candidates := make([]Candidate, 0, len(ingredients))
	for _, ing := range ingredients {
		amount := ing.AmountDisplay
		if ing.Scalable && servings > 0 {
			amount = quantity.Scale(amount, recipe.ServingsDefault, servings)
		}
		candidates = append(candidates, Candidate{
			Name:           ing.Name,
			Amount:         amount,
			OriginalAmount: ing.AmountDisplay,
			FromRecipeID:   &recipe.ID,
		})
	}
	candidates = Aggregate(candidates)

	existing, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load grocery list: %w", err)
	}
	onList := make(map[string]*domain.GroceryItem, len(existing))
	for i := range existing {
		key := mergeKey(existing[i].Name)
		if _, ok := onList[key]; !ok {
			onList[key] = &existing[i]
		}
	}

	var batch []domain.GroceryItem
	for _, cand := range candidates {
		if item, ok := onList[mergeKey(cand.Name)]; ok && !item.IsChecked {
			combined := combineAmounts(item.Amount, cand.Amount)
			if err := s.items.UpdateAmount(ctx, item.ID, combined); err != nil {
				s.logger.Warn("failed to merge grocery amount", "name", item.Name, "error", err)
			}
			continue
		}

		category := Categorize(cand.Name)
		categoryID, err := s.items.CategoryIDByName(ctx, category)
		if err != nil {
			s.logger.Warn("failed to resolve grocery category", "category", category, "error", err)
		}
		batch = append(batch, domain.GroceryItem{
			Name:           cand.Name,
			Amount:         cand.Amount,
			OriginalAmount: cand.OriginalAmount,
			CategoryID:     categoryID,
			Category:       category,
			FromRecipeID:   cand.FromRecipeID,
		})
	}

	created, err := s.items.CreateBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to save grocery items: %w", err)
	}
	s.logger.Info("recipe added to grocery list",
		"recipe_id", recipeID, "servings", servings, "created", len(created))
	return created, nil
}
