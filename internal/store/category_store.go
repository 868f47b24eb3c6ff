package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wouterdom/kookboek/internal/domain"
	"github.com/wouterdom/kookboek/internal/slug"
)

type CategoryStore struct {
	db *sql.DB
}

func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// typeColors picks the default color for a freshly created category based on
// its namespace.
var typeColors = map[string]string{
	"gang":     "#3b82f6",
	"uitgever": "#f97316",
}

const defaultColor = "#9ca3af"

// GetOrCreate finds a category by slug within a type namespace, inserting it
// when absent. The insert is conflict-tolerant: concurrent imports racing on
// the same new category both end up with the single row guarded by the
// UNIQUE(slug, category_type_id) constraint.
func (s *CategoryStore) GetOrCreate(ctx context.Context, name, typeSlug string) (*domain.Category, error) {
	typeID, err := s.typeID(ctx, typeSlug)
	if err != nil {
		return nil, err
	}

	categorySlug := slug.Make(name)
	if categorySlug == "" {
		return nil, fmt.Errorf("category name %q produces an empty slug", name)
	}

	color := typeColors[typeSlug]
	if color == "" {
		color = defaultColor
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO categories (category_type_id, slug, name, color)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (slug, category_type_id) DO NOTHING
	`, typeID, categorySlug, name, color)
	if err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}

	return s.getBySlug(ctx, categorySlug, typeID)
}

func (s *CategoryStore) typeID(ctx context.Context, typeSlug string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM category_types WHERE slug = ?`, typeSlug).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("unknown category type %q", typeSlug)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get category type: %w", err)
	}
	return id, nil
}

func (s *CategoryStore) getBySlug(ctx context.Context, categorySlug string, typeID int64) (*domain.Category, error) {
	c := &domain.Category{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, category_type_id, slug, name, color
		FROM categories WHERE slug = ? AND category_type_id = ?
	`, categorySlug, typeID).Scan(&c.ID, &c.TypeID, &c.Slug, &c.Name, &c.Color)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return c, nil
}

// ListByType returns all categories in a type namespace.
func (s *CategoryStore) ListByType(ctx context.Context, typeSlug string) ([]*domain.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.category_type_id, c.slug, c.name, c.color
		FROM categories c
		JOIN category_types ct ON ct.id = c.category_type_id
		WHERE ct.slug = ?
		ORDER BY c.name ASC
	`, typeSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer closeRows(rows, "categories")

	var categories []*domain.Category
	for rows.Next() {
		c := &domain.Category{}
		if err := rows.Scan(&c.ID, &c.TypeID, &c.Slug, &c.Name, &c.Color); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}
