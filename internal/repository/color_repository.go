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
	ErrColorNotFound = errors.New("color not found")
	ErrColorInUse    = errors.New("color is still referenced by products")
)

// ColorRepository defines the interface for color data access
type ColorRepository interface {
	Create(ctx context.Context, color *domain.Color) error
	Update(ctx context.Context, color *domain.Color) error
	Delete(ctx context.Context, storeID, id uuid.UUID) error
	FindByID(ctx context.Context, storeID, id uuid.UUID) (*domain.Color, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Color, error)
}

type colorRepository struct {
	db *sql.DB
}

// NewColorRepository creates a new instance of ColorRepository
func NewColorRepository(db *sql.DB) ColorRepository {
	return &colorRepository{db: db}
}

// Create inserts a new color into the database using parameterized queries
func (r *colorRepository) Create(ctx context.Context, color *domain.Color) error {
	query := `
		INSERT INTO colors (id, store_id, name, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		color.ID,
		color.StoreID,
		color.Name,
		color.Value,
		color.CreatedAt,
		color.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create color: %w", err)
	}

	return nil
}

// Update replaces the editable fields of an existing color
func (r *colorRepository) Update(ctx context.Context, color *domain.Color) error {
	query := `
		UPDATE colors
		SET name = $3, value = $4, updated_at = $5
		WHERE id = $1 AND store_id = $2
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		color.ID,
		color.StoreID,
		color.Name,
		color.Value,
		color.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update color: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrColorNotFound
	}

	return nil
}

// Delete removes a color. The delete is blocked by the database while any
// product still references the color.
func (r *colorRepository) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	query := `DELETE FROM colors WHERE id = $1 AND store_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, storeID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrColorInUse
		}
		return fmt.Errorf("failed to delete color: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrColorNotFound
	}

	return nil
}

// FindByID retrieves a color by ID within a store
func (r *colorRepository) FindByID(ctx context.Context, storeID, id uuid.UUID) (*domain.Color, error) {
	query := `
		SELECT id, store_id, name, value, created_at, updated_at
		FROM colors
		WHERE id = $1 AND store_id = $2
	`

	color := &domain.Color{}
	err := r.db.QueryRowContext(ctx, query, id, storeID).Scan(
		&color.ID,
		&color.StoreID,
		&color.Name,
		&color.Value,
		&color.CreatedAt,
		&color.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrColorNotFound
		}
		return nil, fmt.Errorf("failed to find color by ID: %w", err)
	}

	return color, nil
}

// ListByStore retrieves all colors for a store, newest first
func (r *colorRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Color, error) {
	query := `
		SELECT id, store_id, name, value, created_at, updated_at
		FROM colors
		WHERE store_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list colors: %w", err)
	}
	defer rows.Close()

	colors := []*domain.Color{}
	for rows.Next() {
		color := &domain.Color{}
		err := rows.Scan(
			&color.ID,
			&color.StoreID,
			&color.Name,
			&color.Value,
			&color.CreatedAt,
			&color.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan color: %w", err)
		}
		colors = append(colors, color)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating colors: %w", err)
	}

	return colors, nil
}
