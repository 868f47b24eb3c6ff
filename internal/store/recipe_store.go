package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wouterdom/kookboek/internal/domain"
)

type RecipeStore struct {
	db *sql.DB
}

func NewRecipeStore(db *sql.DB) *RecipeStore {
	return &RecipeStore{db: db}
}

// Create inserts the recipe row and its ingredient rows. A failing ingredient
// insert is logged and skipped rather than rolling back the recipe: a recipe
// with missing ingredients beats losing the whole recipe.
func (s *RecipeStore) Create(ctx context.Context, r *domain.Recipe, ingredients []domain.ParsedIngredient) (*domain.Recipe, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO recipes (slug, title, description, prep_time, cook_time,
		                     servings_default, difficulty, source, image_url, import_job_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.Slug, r.Title, r.Description, r.PrepTime, r.CookTime,
		r.ServingsDefault, r.Difficulty, r.Source, r.ImageURL, r.ImportJobID)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	for i, ing := range ingredients {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO parsed_ingredients (recipe_id, ingredient_name, amount, unit,
			                                amount_display, scalable, section, order_index)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, id, ing.Name, ing.Amount, ing.Unit, ing.AmountDisplay, ing.Scalable, ing.Section, i)
		if err != nil {
			slog.Error("failed to insert ingredient", "recipe_id", id, "name", ing.Name, "error", err)
		}
	}

	return s.GetByID(ctx, id)
}

func (s *RecipeStore) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	return s.get(ctx, "id = ?", id)
}

func (s *RecipeStore) GetBySlug(ctx context.Context, slug string) (*domain.Recipe, error) {
	return s.get(ctx, "slug = ?", slug)
}

func (s *RecipeStore) get(ctx context.Context, where string, arg any) (*domain.Recipe, error) {
	r := &domain.Recipe{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, slug, title, description, prep_time, cook_time, servings_default,
		       difficulty, source, image_url, import_job_id, created_at, updated_at
		FROM recipes WHERE `+where,
		arg).Scan(&r.ID, &r.Slug, &r.Title, &r.Description, &r.PrepTime, &r.CookTime,
		&r.ServingsDefault, &r.Difficulty, &r.Source, &r.ImageURL, &r.ImportJobID,
		&r.CreatedAt, &r.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return r, nil
}

func (s *RecipeStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes WHERE slug = ?`, slug).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return count > 0, nil
}

func (s *RecipeStore) List(ctx context.Context) ([]*domain.Recipe, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, slug, title, description, prep_time, cook_time, servings_default,
		       difficulty, source, image_url, import_job_id, created_at, updated_at
		FROM recipes ORDER BY title ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer closeRows(rows, "recipes")

	var recipes []*domain.Recipe
	for rows.Next() {
		r := &domain.Recipe{}
		if err := rows.Scan(&r.ID, &r.Slug, &r.Title, &r.Description, &r.PrepTime, &r.CookTime,
			&r.ServingsDefault, &r.Difficulty, &r.Source, &r.ImageURL, &r.ImportJobID,
			&r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recipes: %w", err)
	}
	return recipes, nil
}

// ListIngredients returns a recipe's ingredients in their original order.
func (s *RecipeStore) ListIngredients(ctx context.Context, recipeID int64) ([]domain.ParsedIngredient, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, recipe_id, ingredient_name, amount, unit, amount_display,
		       scalable, section, order_index
		FROM parsed_ingredients WHERE recipe_id = ? ORDER BY order_index ASC
	`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	defer closeRows(rows, "ingredients")

	var ingredients []domain.ParsedIngredient
	for rows.Next() {
		var ing domain.ParsedIngredient
		if err := rows.Scan(&ing.ID, &ing.RecipeID, &ing.Name, &ing.Amount, &ing.Unit,
			&ing.AmountDisplay, &ing.Scalable, &ing.Section, &ing.OrderIndex); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ingredients: %w", err)
	}
	return ingredients, nil
}

// LinkCategory attaches a category to a recipe; relinking is a no-op.
func (s *RecipeStore) LinkCategory(ctx context.Context, recipeID, categoryID int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO recipe_categories (recipe_id, category_id) VALUES (?, ?)
	`, recipeID, categoryID)
	if err != nil {
		return fmt.Errorf("failed to link category: %w", err)
	}
	return nil
}

func (s *RecipeStore) SetImageURL(ctx context.Context, recipeID int64, url string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE recipes SET image_url = ?, updated_at = datetime('now') WHERE id = ?
	`, url, recipeID)
	if err != nil {
		return fmt.Errorf("failed to set image url: %w", err)
	}
	return nil
}

// Delete removes a recipe; ingredients and category links cascade.
func (s *RecipeStore) Delete(ctx context.Context, slug string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM recipes WHERE slug = ?`, slug)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("recipe not found")
	}
	return nil
}

func closeRows(rows *sql.Rows, what string) {
	if err := rows.Close(); err != nil {
		slog.Error("failed to close rows", "query", what, "error", err)
	}
}
