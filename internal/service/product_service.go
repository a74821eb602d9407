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
	// ErrProductBadReference mirrors the repository sentinel so transport
	// does not need to import repository internals for this case.
	ErrProductBadReference = errors.New("referenced category, size or color does not exist in this store")
)

// ProductService defines the business logic for products
type ProductService interface {
	Create(ctx context.Context, storeID uuid.UUID, input domain.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, storeID, id uuid.UUID, input domain.ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, storeID, id uuid.UUID) (*domain.Product, error)
	Get(ctx context.Context, storeID, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, storeID uuid.UUID, filter domain.ProductFilter) ([]*domain.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new instance of ProductService
func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

// Create persists a new product together with its images. The repository
// writes both in one transaction; a failed image insert rolls the product
// back with it.
func (s *productService) Create(ctx context.Context, storeID uuid.UUID, input domain.ProductInput) (*domain.Product, error) {
	product, err := productFromInput(storeID, uuid.New(), input)
	if err != nil {
		return nil, err
	}
	product.CreatedAt = product.UpdatedAt

	if err := s.productRepo.Create(ctx, product); err != nil {
		if err == repository.ErrProductBadReference {
			return nil, ErrProductBadReference
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return s.productRepo.FindByID(ctx, storeID, product.ID)
}

// Update replaces all editable fields of an existing product, including a
// wholesale swap of its image set
func (s *productService) Update(ctx context.Context, storeID, id uuid.UUID, input domain.ProductInput) (*domain.Product, error) {
	product, err := productFromInput(storeID, id, input)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		if err == repository.ErrProductBadReference {
			return nil, ErrProductBadReference
		}
		return nil, err
	}

	return s.productRepo.FindByID(ctx, storeID, id)
}

// Delete removes a product and returns its deleted representation
func (s *productService) Delete(ctx context.Context, storeID, id uuid.UUID) (*domain.Product, error) {
	return s.productRepo.Delete(ctx, storeID, id)
}

// Get retrieves a single product with images and referenced entities
func (s *productService) Get(ctx context.Context, storeID, id uuid.UUID) (*domain.Product, error) {
	return s.productRepo.FindByID(ctx, storeID, id)
}

// List retrieves non-archived products matching the filter, newest first
func (s *productService) List(ctx context.Context, storeID uuid.UUID, filter domain.ProductFilter) ([]*domain.Product, error) {
	return s.productRepo.List(ctx, storeID, filter)
}

func productFromInput(storeID, id uuid.UUID, input domain.ProductInput) (*domain.Product, error) {
	categoryID, err := uuid.Parse(input.CategoryID)
	if err != nil {
		return nil, ErrProductBadReference
	}
	sizeID, err := uuid.Parse(input.SizeID)
	if err != nil {
		return nil, ErrProductBadReference
	}
	colorID, err := uuid.Parse(input.ColorID)
	if err != nil {
		return nil, ErrProductBadReference
	}

	images := make([]domain.ProductImage, len(input.Images))
	for i, img := range input.Images {
		images[i] = domain.ProductImage{URL: img.URL}
	}

	return &domain.Product{
		ID:         id,
		StoreID:    storeID,
		CategoryID: categoryID,
		SizeID:     sizeID,
		ColorID:    colorID,
		Name:       input.Name,
		Price:      input.Price,
		IsFeatured: input.IsFeatured,
		IsArchived: input.IsArchived,
		Images:     images,
		UpdatedAt:  time.Now(),
	}, nil
}
