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
	ErrSizeNotFound = errors.New("size not found")
	ErrSizeInUse    = errors.New("size is still referenced by products")
)

// SizeRepository defines the interface for size data access
type SizeRepository interface {
	Create(ctx context.Context, size *domain.Size) error
	Update(ctx context.Context, size *domain.Size) error
	Delete(ctx context.Context, storeID, id uuid.UUID) error
	FindByID(ctx context.Context, storeID, id uuid.UUID) (*domain.Size, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Size, error)
}

type sizeRepository struct {
	db *sql.DB
}

// NewSizeRepository creates a new instance of SizeRepository
func NewSizeRepository(db *sql.DB) SizeRepository {
	return &sizeRepository{db: db}
}

// Create inserts a new size into the database using parameterized queries
func (r *sizeRepository) Create(ctx context.Context, size *domain.Size) error {
	query := `
		INSERT INTO sizes (id, store_id, name, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		size.ID,
		size.StoreID,
		size.Name,
		size.Value,
		size.CreatedAt,
		size.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create size: %w", err)
	}

	return nil
}

// Update replaces the editable fields of an existing size
func (r *sizeRepository) Update(ctx context.Context, size *domain.Size) error {
	query := `
		UPDATE sizes
		SET name = $3, value = $4, updated_at = $5
		WHERE id = $1 AND store_id = $2
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		size.ID,
		size.StoreID,
		size.Name,
		size.Value,
		size.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update size: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrSizeNotFound
	}

	return nil
}

// Delete removes a size. The delete is blocked by the database while any
// product still references the size.
func (r *sizeRepository) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	query := `DELETE FROM sizes WHERE id = $1 AND store_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, storeID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrSizeInUse
		}
		return fmt.Errorf("failed to delete size: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrSizeNotFound
	}

	return nil
}

// FindByID retrieves a size by ID within a store
func (r *sizeRepository) FindByID(ctx context.Context, storeID, id uuid.UUID) (*domain.Size, error) {
	query := `
		SELECT id, store_id, name, value, created_at, updated_at
		FROM sizes
		WHERE id = $1 AND store_id = $2
	`

	size := &domain.Size{}
	err := r.db.QueryRowContext(ctx, query, id, storeID).Scan(
		&size.ID,
		&size.StoreID,
		&size.Name,
		&size.Value,
		&size.CreatedAt,
		&size.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSizeNotFound
		}
		return nil, fmt.Errorf("failed to find size by ID: %w", err)
	}

	return size, nil
}

// ListByStore retrieves all sizes for a store, newest first
func (r *sizeRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Size, error) {
	query := `
		SELECT id, store_id, name, value, created_at, updated_at
		FROM sizes
		WHERE store_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sizes: %w", err)
	}
	defer rows.Close()

	sizes := []*domain.Size{}
	for rows.Next() {
		size := &domain.Size{}
		err := rows.Scan(
			&size.ID,
			&size.StoreID,
			&size.Name,
			&size.Value,
			&size.CreatedAt,
			&size.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan size: %w", err)
		}
		sizes = append(sizes, size)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sizes: %w", err)
	}

	return sizes, nil
}
