package service

import (
	"context"
	"fmt"
	"time"

	"store-admin/internal/domain"
	"store-admin/internal/repository"

	"github.com/google/uuid"
)

// StoreService handles the first-run setup flow: a user with no store is
// prompted to create one, after which every catalog route hangs off that
// store's id. Stores are never mutated by catalog operations.
type StoreService interface {
	Create(ctx context.Context, userID uuid.UUID, input domain.StoreInput) (*domain.Store, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*domain.Store, error)
}

type storeService struct {
	storeRepo repository.StoreRepository
}

// NewStoreService creates a new instance of StoreService
func NewStoreService(storeRepo repository.StoreRepository) StoreService {
	return &storeService{storeRepo: storeRepo}
}

// Create persists a new store owned by the given user
func (s *storeService) Create(ctx context.Context, userID uuid.UUID, input domain.StoreInput) (*domain.Store, error) {
	now := time.Now()
	store := &domain.Store{
		ID:        uuid.New(),
		Name:      input.Name,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return store, nil
}

// ListMine retrieves all stores owned by the user, newest first
func (s *storeService) ListMine(ctx context.Context, userID uuid.UUID) ([]*domain.Store, error) {
	return s.storeRepo.ListByUser(ctx, userID)
}
