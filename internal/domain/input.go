package domain

import "github.com/shopspring/decimal"

// Input payloads for the catalog write paths. The same structs (and therefore
// the same validation tags) are used by the HTTP handlers and by the form
// controllers in internal/forms, so client-side and server-side validation
// can never drift apart.

// StoreInput creates a store through the first-run setup flow.
type StoreInput struct {
	Name string `json:"name" validate:"required"`
}

// BillboardInput creates or fully replaces a billboard.
type BillboardInput struct {
	Label    string `json:"label" validate:"required"`
	ImageURL string `json:"image_url" validate:"required,url"`
}

// CategoryInput creates or fully replaces a category. BillboardID must
// resolve to a billboard in the same store; the service enforces that.
type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	BillboardID string `json:"billboard_id" validate:"required,uuid"`
}

// SizeInput creates or fully replaces a size.
type SizeInput struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// ColorInput creates or fully replaces a color. Value must be a hex code:
// it starts with '#' and is at least four characters ("#fff" is the shortest
// accepted form).
type ColorInput struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value" validate:"required,min=4,startswith=#"`
}

// ImageInput is one image URL in a product payload.
type ImageInput struct {
	URL string `json:"url" validate:"required,url"`
}

// ProductInput creates or fully replaces a product. At least one image is
// required; on update the image set is replaced wholesale.
type ProductInput struct {
	Name       string          `json:"name" validate:"required"`
	Price      decimal.Decimal `json:"price" validate:"required"`
	CategoryID string          `json:"category_id" validate:"required,uuid"`
	SizeID     string          `json:"size_id" validate:"required,uuid"`
	ColorID    string          `json:"color_id" validate:"required,uuid"`
	Images     []ImageInput    `json:"images" validate:"required,min=1,dive"`
	IsFeatured bool            `json:"is_featured"`
	IsArchived bool            `json:"is_archived"`
}
