package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item. Category, Size and Color are populated on reads
// that include the referenced rows; Images always travels with the product.
type Product struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	StoreID    uuid.UUID       `json:"store_id" db:"store_id"`
	CategoryID uuid.UUID       `json:"category_id" db:"category_id"`
	SizeID     uuid.UUID       `json:"size_id" db:"size_id"`
	ColorID    uuid.UUID       `json:"color_id" db:"color_id"`
	Name       string          `json:"name" db:"name"`
	Price      decimal.Decimal `json:"price" db:"price"`
	IsFeatured bool            `json:"is_featured" db:"is_featured"`
	IsArchived bool            `json:"is_archived" db:"is_archived"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`

	Images   []ProductImage `json:"images"`
	Category *Category      `json:"category,omitempty"`
	Size     *Size          `json:"size,omitempty"`
	Color    *Color         `json:"color,omitempty"`
}

// ProductImage is one image attached to a product. Images are created and
// replaced together with their product, never addressed individually.
type ProductImage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
	URL       string    `json:"url" db:"url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ProductFilter narrows a product listing. Nil fields mean "no constraint on
// that field". Archived products are always excluded regardless of filters.
type ProductFilter struct {
	CategoryID *uuid.UUID
	SizeID     *uuid.UUID
	ColorID    *uuid.UUID
	IsFeatured *bool
}
