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
	ErrBillboardNotFound = errors.New("billboard not found")
	ErrBillboardInUse    = errors.New("billboard is still referenced by categories")
)

// BillboardRepository defines the interface for billboard data access.
// Mutations are keyed by id and store id jointly, so a caller can never reach
// a row outside the store it was authorized for.
type BillboardRepository interface {
	Create(ctx context.Context, billboard *domain.Billboard) error
	Update(ctx context.Context, billboard *domain.Billboard) error
	Delete(ctx context.Context, storeID, id uuid.UUID) error
	FindByID(ctx context.Context, storeID, id uuid.UUID) (*domain.Billboard, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Billboard, error)
}

type billboardRepository struct {
	db *sql.DB
}

// NewBillboardRepository creates a new instance of BillboardRepository
func NewBillboardRepository(db *sql.DB) BillboardRepository {
	return &billboardRepository{db: db}
}

// Create inserts a new billboard into the database using parameterized queries
func (r *billboardRepository) Create(ctx context.Context, billboard *domain.Billboard) error {
	query := `
		INSERT INTO billboards (id, store_id, label, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		billboard.ID,
		billboard.StoreID,
		billboard.Label,
		billboard.ImageURL,
		billboard.CreatedAt,
		billboard.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create billboard: %w", err)
	}

	return nil
}

// Update replaces the editable fields of an existing billboard
func (r *billboardRepository) Update(ctx context.Context, billboard *domain.Billboard) error {
	query := `
		UPDATE billboards
		SET label = $3, image_url = $4, updated_at = $5
		WHERE id = $1 AND store_id = $2
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		billboard.ID,
		billboard.StoreID,
		billboard.Label,
		billboard.ImageURL,
		billboard.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update billboard: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrBillboardNotFound
	}

	return nil
}

// Delete removes a billboard. The delete is blocked by the database while any
// category still references the billboard.
func (r *billboardRepository) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	query := `DELETE FROM billboards WHERE id = $1 AND store_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, storeID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrBillboardInUse
		}
		return fmt.Errorf("failed to delete billboard: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrBillboardNotFound
	}

	return nil
}

// FindByID retrieves a billboard by ID within a store
func (r *billboardRepository) FindByID(ctx context.Context, storeID, id uuid.UUID) (*domain.Billboard, error) {
	query := `
		SELECT id, store_id, label, image_url, created_at, updated_at
		FROM billboards
		WHERE id = $1 AND store_id = $2
	`

	billboard := &domain.Billboard{}
	err := r.db.QueryRowContext(ctx, query, id, storeID).Scan(
		&billboard.ID,
		&billboard.StoreID,
		&billboard.Label,
		&billboard.ImageURL,
		&billboard.CreatedAt,
		&billboard.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBillboardNotFound
		}
		return nil, fmt.Errorf("failed to find billboard by ID: %w", err)
	}

	return billboard, nil
}

// ListByStore retrieves all billboards for a store, newest first
func (r *billboardRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Billboard, error) {
	query := `
		SELECT id, store_id, label, image_url, created_at, updated_at
		FROM billboards
		WHERE store_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list billboards: %w", err)
	}
	defer rows.Close()

	billboards := []*domain.Billboard{}
	for rows.Next() {
		billboard := &domain.Billboard{}
		err := rows.Scan(
			&billboard.ID,
			&billboard.StoreID,
			&billboard.Label,
			&billboard.ImageURL,
			&billboard.CreatedAt,
			&billboard.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan billboard: %w", err)
		}
		billboards = append(billboards, billboard)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating billboards: %w", err)
	}

	return billboards, nil
}
