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
	ErrProductNotFound = errors.New("product not found")
	// ErrProductBadReference means the payload pointed at a category, size or
	// color that does not exist.
	ErrProductBadReference = errors.New("referenced category, size or color not found")
)

// ProductRepository defines the interface for product data access. Create and
// Update write the product and its image rows in a single transaction, so a
// product is never visible without its images.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, storeID, id uuid.UUID) (*domain.Product, error)
	FindByID(ctx context.Context, storeID, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, storeID uuid.UUID, filter domain.ProductFilter) ([]*domain.Product, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

const productSelect = `
	SELECT p.id, p.store_id, p.category_id, p.size_id, p.color_id,
	       p.name, p.price, p.is_featured, p.is_archived, p.created_at, p.updated_at,
	       c.name, s.name, s.value, cl.name, cl.value
	FROM products p
	JOIN categories c ON c.id = p.category_id
	JOIN sizes s ON s.id = p.size_id
	JOIN colors cl ON cl.id = p.color_id
`

// Create inserts a product together with its images in one transaction
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO products (id, store_id, category_id, size_id, color_id,
			name, price, is_featured, is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = tx.ExecContext(
		ctx,
		query,
		product.ID,
		product.StoreID,
		product.CategoryID,
		product.SizeID,
		product.ColorID,
		product.Name,
		product.Price,
		product.IsFeatured,
		product.IsArchived,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrProductBadReference
		}
		return fmt.Errorf("failed to create product: %w", err)
	}

	if err := insertImages(ctx, tx, product); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit product create: %w", err)
	}

	return nil
}

// Update replaces all editable fields of an existing product and swaps its
// image set, all within one transaction
func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE products
		SET category_id = $3, size_id = $4, color_id = $5, name = $6,
		    price = $7, is_featured = $8, is_archived = $9, updated_at = $10
		WHERE id = $1 AND store_id = $2
	`

	result, err := tx.ExecContext(
		ctx,
		query,
		product.ID,
		product.StoreID,
		product.CategoryID,
		product.SizeID,
		product.ColorID,
		product.Name,
		product.Price,
		product.IsFeatured,
		product.IsArchived,
		product.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrProductBadReference
		}
		return fmt.Errorf("failed to update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_images WHERE product_id = $1`, product.ID); err != nil {
		return fmt.Errorf("failed to clear product images: %w", err)
	}

	if err := insertImages(ctx, tx, product); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit product update: %w", err)
	}

	return nil
}

// Delete removes a product and returns its last persisted representation.
// Images go with it via ON DELETE CASCADE.
func (r *productRepository) Delete(ctx context.Context, storeID, id uuid.UUID) (*domain.Product, error) {
	product, err := r.FindByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1 AND store_id = $2`, id, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return nil, ErrProductNotFound
	}

	return product, nil
}

// FindByID retrieves a product by ID within a store, including images and
// the referenced category, size and color
func (r *productRepository) FindByID(ctx context.Context, storeID, id uuid.UUID) (*domain.Product, error) {
	query := productSelect + ` WHERE p.id = $1 AND p.store_id = $2`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id, storeID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	if err := r.attachImages(ctx, []*domain.Product{product}); err != nil {
		return nil, err
	}

	return product, nil
}

// List retrieves non-archived products for a store, newest first. Each filter
// field narrows the result only when set; archived products are excluded no
// matter what the filter says.
func (r *productRepository) List(ctx context.Context, storeID uuid.UUID, filter domain.ProductFilter) ([]*domain.Product, error) {
	where := `WHERE p.store_id = $1 AND p.is_archived = FALSE`
	args := []interface{}{storeID}
	argIndex := 2

	if filter.CategoryID != nil {
		where += fmt.Sprintf(" AND p.category_id = $%d", argIndex)
		args = append(args, *filter.CategoryID)
		argIndex++
	}
	if filter.SizeID != nil {
		where += fmt.Sprintf(" AND p.size_id = $%d", argIndex)
		args = append(args, *filter.SizeID)
		argIndex++
	}
	if filter.ColorID != nil {
		where += fmt.Sprintf(" AND p.color_id = $%d", argIndex)
		args = append(args, *filter.ColorID)
		argIndex++
	}
	if filter.IsFeatured != nil {
		where += fmt.Sprintf(" AND p.is_featured = $%d", argIndex)
		args = append(args, *filter.IsFeatured)
		argIndex++
	}

	query := fmt.Sprintf("%s %s ORDER BY p.created_at DESC", productSelect, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	if err := r.attachImages(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

// attachImages loads image rows for the given products in one query
func (r *productRepository) attachImages(ctx context.Context, products []*domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*domain.Product, len(products))
	ids := make([]string, 0, len(products))
	for _, p := range products {
		p.Images = []domain.ProductImage{}
		byID[p.ID] = p
		ids = append(ids, p.ID.String())
	}

	query := `
		SELECT id, product_id, url, created_at
		FROM product_images
		WHERE product_id = ANY($1::uuid[])
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to load product images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		img := domain.ProductImage{}
		if err := rows.Scan(&img.ID, &img.ProductID, &img.URL, &img.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan product image: %w", err)
		}
		if p, ok := byID[img.ProductID]; ok {
			p.Images = append(p.Images, img)
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating product images: %w", err)
	}

	return nil
}

func insertImages(ctx context.Context, tx *sql.Tx, product *domain.Product) error {
	query := `
		INSERT INTO product_images (id, product_id, url, created_at)
		VALUES ($1, $2, $3, $4)
	`

	for i := range product.Images {
		img := &product.Images[i]
		if img.ID == uuid.Nil {
			img.ID = uuid.New()
		}
		img.ProductID = product.ID
		if img.CreatedAt.IsZero() {
			img.CreatedAt = product.UpdatedAt
		}

		if _, err := tx.ExecContext(ctx, query, img.ID, img.ProductID, img.URL, img.CreatedAt); err != nil {
			return fmt.Errorf("failed to create product image: %w", err)
		}
	}

	return nil
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{
		Category: &domain.Category{},
		Size:     &domain.Size{},
		Color:    &domain.Color{},
	}
	err := row.Scan(
		&product.ID,
		&product.StoreID,
		&product.CategoryID,
		&product.SizeID,
		&product.ColorID,
		&product.Name,
		&product.Price,
		&product.IsFeatured,
		&product.IsArchived,
		&product.CreatedAt,
		&product.UpdatedAt,
		&product.Category.Name,
		&product.Size.Name,
		&product.Size.Value,
		&product.Color.Name,
		&product.Color.Value,
	)
	if err != nil {
		return nil, err
	}

	product.Category.ID = product.CategoryID
	product.Size.ID = product.SizeID
	product.Color.ID = product.ColorID

	return product, nil
}
