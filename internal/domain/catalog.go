package domain

import (
	"time"

	"github.com/google/uuid"
)

// Billboard is a hero image shown on the storefront. Categories point at the
// billboard they are displayed under.
type Billboard struct {
	ID        uuid.UUID `json:"id" db:"id"`
	StoreID   uuid.UUID `json:"store_id" db:"store_id"`
	Label     string    `json:"label" db:"label"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Category groups products under a billboard. Billboard is populated on reads
// that join the referenced billboard; it is nil otherwise.
type Category struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	StoreID     uuid.UUID  `json:"store_id" db:"store_id"`
	BillboardID uuid.UUID  `json:"billboard_id" db:"billboard_id"`
	Name        string     `json:"name" db:"name"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
	Billboard   *Billboard `json:"billboard,omitempty"`
}

// Size is a product size option, e.g. name "Medium", value "M".
type Size struct {
	ID        uuid.UUID `json:"id" db:"id"`
	StoreID   uuid.UUID `json:"store_id" db:"store_id"`
	Name      string    `json:"name" db:"name"`
	Value     string    `json:"value" db:"value"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Color is a product color option. Value is a hex code such as "#f4f4f4".
type Color struct {
	ID        uuid.UUID `json:"id" db:"id"`
	StoreID   uuid.UUID `json:"store_id" db:"store_id"`
	Name      string    `json:"name" db:"name"`
	Value     string    `json:"value" db:"value"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
