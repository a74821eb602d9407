package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"store-admin/internal/domain"
	"store-admin/internal/repository"

	"github.com/google/uuid"
)

var (
	// ErrBillboardNotInStore means the payload referenced a billboard that
	// does not exist in the target store. Surfaced as a bad request, not a
	// forbidden: the caller already proved ownership of the store.
	ErrBillboardNotInStore = errors.New("billboard does not exist in this store")
)

// CategoryService defines the business logic for categories
type CategoryService interface {
	Create(ctx context.Context, storeID uuid.UUID, input domain.CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, storeID, id uuid.UUID, input domain.CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, storeID, id uuid.UUID) (*domain.Category, error)
	Get(ctx context.Context, storeID, id uuid.UUID) (*domain.Category, error)
	List(ctx context.Context, storeID uuid.UUID) ([]*domain.Category, error)
}

type categoryService struct {
	categoryRepo  repository.CategoryRepository
	billboardRepo repository.BillboardRepository
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository, billboardRepo repository.BillboardRepository) CategoryService {
	return &categoryService{
		categoryRepo:  categoryRepo,
		billboardRepo: billboardRepo,
	}
}

// Create persists a new category after verifying the referenced billboard
// belongs to the same store
func (s *categoryService) Create(ctx context.Context, storeID uuid.UUID, input domain.CategoryInput) (*domain.Category, error) {
	billboard, err := s.resolveBillboard(ctx, storeID, input.BillboardID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	category := &domain.Category{
		ID:          uuid.New(),
		StoreID:     storeID,
		BillboardID: billboard.ID,
		Name:        input.Name,
		CreatedAt:   now,
		UpdatedAt:   now,
		Billboard:   billboard,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// Update replaces the editable fields of an existing category. The new
// billboard reference is verified against the store like on create.
func (s *categoryService) Update(ctx context.Context, storeID, id uuid.UUID, input domain.CategoryInput) (*domain.Category, error) {
	billboard, err := s.resolveBillboard(ctx, storeID, input.BillboardID)
	if err != nil {
		return nil, err
	}

	category := &domain.Category{
		ID:          id,
		StoreID:     storeID,
		BillboardID: billboard.ID,
		Name:        input.Name,
		UpdatedAt:   time.Now(),
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return s.categoryRepo.FindByID(ctx, storeID, id)
}

// Delete removes a category and returns its deleted representation. The
// repository surfaces a conflict while products still reference it.
func (s *categoryService) Delete(ctx context.Context, storeID, id uuid.UUID) (*domain.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Delete(ctx, storeID, id); err != nil {
		return nil, err
	}

	return category, nil
}

// Get retrieves a single category including its billboard
func (s *categoryService) Get(ctx context.Context, storeID, id uuid.UUID) (*domain.Category, error) {
	return s.categoryRepo.FindByID(ctx, storeID, id)
}

// List retrieves all categories for a store, newest first
func (s *categoryService) List(ctx context.Context, storeID uuid.UUID) ([]*domain.Category, error) {
	return s.categoryRepo.ListByStore(ctx, storeID)
}

func (s *categoryService) resolveBillboard(ctx context.Context, storeID uuid.UUID, billboardID string) (*domain.Billboard, error) {
	id, err := uuid.Parse(billboardID)
	if err != nil {
		return nil, ErrBillboardNotInStore
	}

	billboard, err := s.billboardRepo.FindByID(ctx, storeID, id)
	if err != nil {
		if err == repository.ErrBillboardNotFound {
			return nil, ErrBillboardNotInStore
		}
		return nil, fmt.Errorf("failed to resolve billboard: %w", err)
	}

	return billboard, nil
}
