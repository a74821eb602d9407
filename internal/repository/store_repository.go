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
	ErrStoreNotFound = errors.New("store not found")
)

// StoreRepository defines the interface for store data access
type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Store, error)
	// FindByIDAndUser resolves a store only if userID owns it. It is the
	// ownership check every catalog mutation runs before touching payload
	// contents.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Store, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Store, error)
}

type storeRepository struct {
	db *sql.DB
}

// NewStoreRepository creates a new instance of StoreRepository
func NewStoreRepository(db *sql.DB) StoreRepository {
	return &storeRepository{db: db}
}

// Create inserts a new store into the database using parameterized queries
func (r *storeRepository) Create(ctx context.Context, store *domain.Store) error {
	query := `
		INSERT INTO stores (id, name, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		store.ID,
		store.Name,
		store.UserID,
		store.CreatedAt,
		store.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}

	return nil
}

// FindByID retrieves a store by ID regardless of owner
func (r *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	query := `
		SELECT id, name, user_id, created_at, updated_at
		FROM stores
		WHERE id = $1
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// FindByIDAndUser retrieves a store by ID, restricted to the given owner
func (r *storeRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Store, error) {
	query := `
		SELECT id, name, user_id, created_at, updated_at
		FROM stores
		WHERE id = $1 AND user_id = $2
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id, userID))
}

// ListByUser retrieves all stores owned by a user, newest first
func (r *storeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Store, error) {
	query := `
		SELECT id, name, user_id, created_at, updated_at
		FROM stores
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	stores := []*domain.Store{}
	for rows.Next() {
		store := &domain.Store{}
		err := rows.Scan(
			&store.ID,
			&store.Name,
			&store.UserID,
			&store.CreatedAt,
			&store.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stores: %w", err)
	}

	return stores, nil
}

func (r *storeRepository) scanOne(row *sql.Row) (*domain.Store, error) {
	store := &domain.Store{}
	err := row.Scan(
		&store.ID,
		&store.Name,
		&store.UserID,
		&store.CreatedAt,
		&store.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to find store: %w", err)
	}

	return store, nil
}
