package service

import (
	"context"
	"fmt"
	"time"

	"store-admin/internal/domain"
	"store-admin/internal/repository"

	"github.com/google/uuid"
)

// SizeService defines the business logic for sizes
type SizeService interface {
	Create(ctx context.Context, storeID uuid.UUID, input domain.SizeInput) (*domain.Size, error)
	Update(ctx context.Context, storeID, id uuid.UUID, input domain.SizeInput) (*domain.Size, error)
	Delete(ctx context.Context, storeID, id uuid.UUID) (*domain.Size, error)
	Get(ctx context.Context, storeID, id uuid.UUID) (*domain.Size, error)
	List(ctx context.Context, storeID uuid.UUID) ([]*domain.Size, error)
}

type sizeService struct {
	sizeRepo repository.SizeRepository
}

// NewSizeService creates a new instance of SizeService
func NewSizeService(sizeRepo repository.SizeRepository) SizeService {
	return &sizeService{sizeRepo: sizeRepo}
}

// Create persists a new size with a generated id
func (s *sizeService) Create(ctx context.Context, storeID uuid.UUID, input domain.SizeInput) (*domain.Size, error) {
	now := time.Now()
	size := &domain.Size{
		ID:        uuid.New(),
		StoreID:   storeID,
		Name:      input.Name,
		Value:     input.Value,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.sizeRepo.Create(ctx, size); err != nil {
		return nil, fmt.Errorf("failed to create size: %w", err)
	}

	return size, nil
}

// Update replaces the editable fields of an existing size
func (s *sizeService) Update(ctx context.Context, storeID, id uuid.UUID, input domain.SizeInput) (*domain.Size, error) {
	size := &domain.Size{
		ID:        id,
		StoreID:   storeID,
		Name:      input.Name,
		Value:     input.Value,
		UpdatedAt: time.Now(),
	}

	if err := s.sizeRepo.Update(ctx, size); err != nil {
		return nil, err
	}

	return s.sizeRepo.FindByID(ctx, storeID, id)
}

// Delete removes a size and returns its deleted representation
func (s *sizeService) Delete(ctx context.Context, storeID, id uuid.UUID) (*domain.Size, error) {
	size, err := s.sizeRepo.FindByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}

	if err := s.sizeRepo.Delete(ctx, storeID, id); err != nil {
		return nil, err
	}

	return size, nil
}

// Get retrieves a single size
func (s *sizeService) Get(ctx context.Context, storeID, id uuid.UUID) (*domain.Size, error) {
	return s.sizeRepo.FindByID(ctx, storeID, id)
}

// List retrieves all sizes for a store, newest first
func (s *sizeService) List(ctx context.Context, storeID uuid.UUID) ([]*domain.Size, error) {
	return s.sizeRepo.ListByStore(ctx, storeID)
}
