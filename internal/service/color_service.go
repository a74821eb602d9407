package service

import (
	"context"
	"fmt"
	"time"

	"store-admin/internal/domain"
	"store-admin/internal/repository"

	"github.com/google/uuid"
)

// ColorService defines the business logic for colors. The hex-value format
// rule lives in the validation tags on domain.ColorInput and is enforced at
// the transport boundary, the same place the form controller enforces it.
type ColorService interface {
	Create(ctx context.Context, storeID uuid.UUID, input domain.ColorInput) (*domain.Color, error)
	Update(ctx context.Context, storeID, id uuid.UUID, input domain.ColorInput) (*domain.Color, error)
	Delete(ctx context.Context, storeID, id uuid.UUID) (*domain.Color, error)
	Get(ctx context.Context, storeID, id uuid.UUID) (*domain.Color, error)
	List(ctx context.Context, storeID uuid.UUID) ([]*domain.Color, error)
}

type colorService struct {
	colorRepo repository.ColorRepository
}

// NewColorService creates a new instance of ColorService
func NewColorService(colorRepo repository.ColorRepository) ColorService {
	return &colorService{colorRepo: colorRepo}
}

// Create persists a new color with a generated id
func (s *colorService) Create(ctx context.Context, storeID uuid.UUID, input domain.ColorInput) (*domain.Color, error) {
	now := time.Now()
	color := &domain.Color{
		ID:        uuid.New(),
		StoreID:   storeID,
		Name:      input.Name,
		Value:     input.Value,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.colorRepo.Create(ctx, color); err != nil {
		return nil, fmt.Errorf("failed to create color: %w", err)
	}

	return color, nil
}

// Update replaces the editable fields of an existing color
func (s *colorService) Update(ctx context.Context, storeID, id uuid.UUID, input domain.ColorInput) (*domain.Color, error) {
	color := &domain.Color{
		ID:        id,
		StoreID:   storeID,
		Name:      input.Name,
		Value:     input.Value,
		UpdatedAt: time.Now(),
	}

	if err := s.colorRepo.Update(ctx, color); err != nil {
		return nil, err
	}

	return s.colorRepo.FindByID(ctx, storeID, id)
}

// Delete removes a color and returns its deleted representation
func (s *colorService) Delete(ctx context.Context, storeID, id uuid.UUID) (*domain.Color, error) {
	color, err := s.colorRepo.FindByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}

	if err := s.colorRepo.Delete(ctx, storeID, id); err != nil {
		return nil, err
	}

	return color, nil
}

// Get retrieves a single color
func (s *colorService) Get(ctx context.Context, storeID, id uuid.UUID) (*domain.Color, error) {
	return s.colorRepo.FindByID(ctx, storeID, id)
}

// List retrieves all colors for a store, newest first
func (s *colorService) List(ctx context.Context, storeID uuid.UUID) ([]*domain.Color, error) {
	return s.colorRepo.ListByStore(ctx, storeID)
}
