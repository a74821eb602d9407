package service

import (
	"context"
	"fmt"
	"time"

	"store-admin/internal/domain"
	"store-admin/internal/repository"

	"github.com/google/uuid"
)

// BillboardService defines the business logic for billboards. Store ownership
// is verified by the transport layer before any of these methods run; every
// method still scopes its queries by store id so a stale caller cannot cross
// tenants.
type BillboardService interface {
	Create(ctx context.Context, storeID uuid.UUID, input domain.BillboardInput) (*domain.Billboard, error)
	Update(ctx context.Context, storeID, id uuid.UUID, input domain.BillboardInput) (*domain.Billboard, error)
	Delete(ctx context.Context, storeID, id uuid.UUID) (*domain.Billboard, error)
	Get(ctx context.Context, storeID, id uuid.UUID) (*domain.Billboard, error)
	List(ctx context.Context, storeID uuid.UUID) ([]*domain.Billboard, error)
}

type billboardService struct {
	billboardRepo repository.BillboardRepository
}

// NewBillboardService creates a new instance of BillboardService
func NewBillboardService(billboardRepo repository.BillboardRepository) BillboardService {
	return &billboardService{billboardRepo: billboardRepo}
}

// Create persists a new billboard with a generated id
func (s *billboardService) Create(ctx context.Context, storeID uuid.UUID, input domain.BillboardInput) (*domain.Billboard, error) {
	now := time.Now()
	billboard := &domain.Billboard{
		ID:        uuid.New(),
		StoreID:   storeID,
		Label:     input.Label,
		ImageURL:  input.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.billboardRepo.Create(ctx, billboard); err != nil {
		return nil, fmt.Errorf("failed to create billboard: %w", err)
	}

	return billboard, nil
}

// Update replaces the editable fields of an existing billboard
func (s *billboardService) Update(ctx context.Context, storeID, id uuid.UUID, input domain.BillboardInput) (*domain.Billboard, error) {
	billboard := &domain.Billboard{
		ID:        id,
		StoreID:   storeID,
		Label:     input.Label,
		ImageURL:  input.ImageURL,
		UpdatedAt: time.Now(),
	}

	if err := s.billboardRepo.Update(ctx, billboard); err != nil {
		return nil, err
	}

	return s.billboardRepo.FindByID(ctx, storeID, id)
}

// Delete removes a billboard and returns its deleted representation
func (s *billboardService) Delete(ctx context.Context, storeID, id uuid.UUID) (*domain.Billboard, error) {
	billboard, err := s.billboardRepo.FindByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}

	if err := s.billboardRepo.Delete(ctx, storeID, id); err != nil {
		return nil, err
	}

	return billboard, nil
}

// Get retrieves a single billboard
func (s *billboardService) Get(ctx context.Context, storeID, id uuid.UUID) (*domain.Billboard, error) {
	return s.billboardRepo.FindByID(ctx, storeID, id)
}

// List retrieves all billboards for a store, newest first
func (s *billboardService) List(ctx context.Context, storeID uuid.UUID) ([]*domain.Billboard, error) {
	return s.billboardRepo.ListByStore(ctx, storeID)
}
