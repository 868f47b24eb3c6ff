package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wouterdom/kookboek/internal/domain"
)

type GroceryStore struct {
	db *sql.DB
}

func NewGroceryStore(db *sql.DB) *GroceryStore {
	return &GroceryStore{db: db}
}

// CategoryIDByName resolves a grocery category name to its row id, or nil
// when the name is unknown.
func (s *GroceryStore) CategoryIDByName(ctx context.Context, name string) (*int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM grocery_categories WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get grocery category: %w", err)
	}
	return &id, nil
}

// CreateBatch inserts the items one by one; a failing item is logged and
// skipped so a single bad entry doesn't lose the rest of the list.
func (s *GroceryStore) CreateBatch(ctx context.Context, items []domain.GroceryItem) ([]domain.GroceryItem, error) {
	created := make([]domain.GroceryItem, 0, len(items))
	for _, item := range items {
		result, err := s.db.ExecContext(ctx, `
			INSERT INTO grocery_items (name, amount, original_amount, category_id,
			                           from_recipe_id, from_weekmenu_id)
			VALUES (?, ?, ?, ?, ?, ?)
		`, item.Name, item.Amount, item.OriginalAmount, item.CategoryID,
			item.FromRecipeID, item.FromWeekmenuID)
		if err != nil {
			slog.Error("failed to insert grocery item", "name", item.Name, "error", err)
			continue
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get last insert id: %w", err)
		}
		item.ID = id
		created = append(created, item)
	}
	return created, nil
}

// List returns all items ordered by category sort order and then insertion
// order.
func (s *GroceryStore) List(ctx context.Context) ([]domain.GroceryItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT gi.id, gi.name, gi.amount, gi.original_amount, gi.category_id,
		       COALESCE(gc.name, ''), gi.is_checked, gi.from_recipe_id,
		       gi.from_weekmenu_id, gi.created_at
		FROM grocery_items gi
		LEFT JOIN grocery_categories gc ON gc.id = gi.category_id
		ORDER BY COALESCE(gc.sort_order, 999) ASC, gi.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list grocery items: %w", err)
	}
	defer closeRows(rows, "grocery_items")

	var items []domain.GroceryItem
	for rows.Next() {
		var item domain.GroceryItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Amount, &item.OriginalAmount,
			&item.CategoryID, &item.Category, &item.IsChecked, &item.FromRecipeID,
			&item.FromWeekmenuID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan grocery item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grocery items: %w", err)
	}
	return items, nil
}

// UpdateAmount replaces an item's amount, used when aggregation folds new
// ingredients into an existing line.
func (s *GroceryStore) UpdateAmount(ctx context.Context, id int64, amount string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE grocery_items SET amount = ? WHERE id = ?
	`, amount, id)
	if err != nil {
		return fmt.Errorf("failed to update grocery amount: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("grocery item not found")
	}
	return nil
}

// SetChecked toggles an item; last writer wins by design.
func (s *GroceryStore) SetChecked(ctx context.Context, id int64, checked bool) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE grocery_items SET is_checked = ? WHERE id = ?
	`, checked, id)
	if err != nil {
		return fmt.Errorf("failed to update grocery item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("grocery item not found")
	}
	return nil
}

func (s *GroceryStore) ClearChecked(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM grocery_items WHERE is_checked = 1`)
	if err != nil {
		return fmt.Errorf("failed to clear checked items: %w", err)
	}
	return nil
}

func (s *GroceryStore) ClearAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM grocery_items`)
	if err != nil {
		return fmt.Errorf("failed to clear grocery list: %w", err)
	}
	return nil
}
