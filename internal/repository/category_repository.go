package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"store-admin/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category is still referenced by products")
)

// CategoryRepository defines the interface for category data access. Reads
// join the referenced billboard so listings can show its label.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, storeID, id uuid.UUID) error
	FindByID(ctx context.Context, storeID, id uuid.UUID) (*domain.Category, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Category, error)
}

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new instance of CategoryRepository
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

const categorySelect = `
	SELECT c.id, c.store_id, c.billboard_id, c.name, c.created_at, c.updated_at,
	       b.id, b.store_id, b.label, b.image_url, b.created_at, b.updated_at
	FROM categories c
	JOIN billboards b ON b.id = c.billboard_id
`

// Create inserts a new category into the database using parameterized queries
func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (id, store_id, billboard_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		category.ID,
		category.StoreID,
		category.BillboardID,
		category.Name,
		category.CreatedAt,
		category.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// Update replaces the editable fields of an existing category
func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	query := `
		UPDATE categories
		SET billboard_id = $3, name = $4, updated_at = $5
		WHERE id = $1 AND store_id = $2
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		category.ID,
		category.StoreID,
		category.BillboardID,
		category.Name,
		category.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// Delete removes a category. The delete is blocked by the database while any
// product still references the category.
func (r *categoryRepository) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	query := `DELETE FROM categories WHERE id = $1 AND store_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, storeID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrCategoryInUse
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// FindByID retrieves a category by ID within a store, including its billboard
func (r *categoryRepository) FindByID(ctx context.Context, storeID, id uuid.UUID) (*domain.Category, error) {
	query := categorySelect + ` WHERE c.id = $1 AND c.store_id = $2`

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, id, storeID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID: %w", err)
	}

	return category, nil
}

// ListByStore retrieves all categories for a store, newest first
func (r *categoryRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Category, error) {
	query := categorySelect + ` WHERE c.store_id = $1 ORDER BY c.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	category := &domain.Category{Billboard: &domain.Billboard{}}
	err := row.Scan(
		&category.ID,
		&category.StoreID,
		&category.BillboardID,
		&category.Name,
		&category.CreatedAt,
		&category.UpdatedAt,
		&category.Billboard.ID,
		&category.Billboard.StoreID,
		&category.Billboard.Label,
		&category.Billboard.ImageURL,
		&category.Billboard.CreatedAt,
		&category.Billboard.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return category, nil
}
