// Package listing projects catalog entities into the flat rows the admin
// tables render. Formatters are pure: they never touch the database and never
// mutate their input.
package listing

import (
	"fmt"
	"time"

	"store-admin/internal/domain"

	"github.com/shopspring/decimal"
)

// BillboardRow is a billboard as shown on the billboards table.
type BillboardRow struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	CreatedAt string `json:"createdAt"`
}

// CategoryRow carries the label of the linked billboard alongside the
// category itself.
type CategoryRow struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	BillboardLabel string `json:"billboardLabel"`
	CreatedAt      string `json:"createdAt"`
}

// SizeRow is a size as shown on the sizes table.
type SizeRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Value     string `json:"value"`
	CreatedAt string `json:"createdAt"`
}

// ColorRow keeps the raw hex value so the table can render a swatch next to
// it.
type ColorRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Value     string `json:"value"`
	CreatedAt string `json:"createdAt"`
}

// ProductRow denormalizes the category, size and color references into their
// display names.
type ProductRow struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	Category   string `json:"category"`
	Size       string `json:"size"`
	Color      string `json:"color"`
	IsFeatured bool   `json:"isFeatured"`
	IsArchived bool   `json:"isArchived"`
	CreatedAt  string `json:"createdAt"`
}

// FormatDate renders a timestamp the way the tables display it, with an
// ordinal day: "January 2nd, 2006".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s %d%s, %d", t.Month().String(), t.Day(), ordinalSuffix(t.Day()), t.Year())
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// FormatPrice renders a price as US dollars.
func FormatPrice(price decimal.Decimal) string {
	return "$" + price.StringFixed(2)
}

func BillboardRows(billboards []domain.Billboard) []BillboardRow {
	rows := make([]BillboardRow, 0, len(billboards))
	for _, b := range billboards {
		rows = append(rows, BillboardRow{
			ID:        b.ID.String(),
			Label:     b.Label,
			CreatedAt: FormatDate(b.CreatedAt),
		})
	}
	return rows
}

func CategoryRows(categories []domain.Category) []CategoryRow {
	rows := make([]CategoryRow, 0, len(categories))
	for _, c := range categories {
		row := CategoryRow{
			ID:        c.ID.String(),
			Name:      c.Name,
			CreatedAt: FormatDate(c.CreatedAt),
		}
		if c.Billboard != nil {
			row.BillboardLabel = c.Billboard.Label
		}
		rows = append(rows, row)
	}
	return rows
}

func SizeRows(sizes []domain.Size) []SizeRow {
	rows := make([]SizeRow, 0, len(sizes))
	for _, s := range sizes {
		rows = append(rows, SizeRow{
			ID:        s.ID.String(),
			Name:      s.Name,
			Value:     s.Value,
			CreatedAt: FormatDate(s.CreatedAt),
		})
	}
	return rows
}

func ColorRows(colors []domain.Color) []ColorRow {
	rows := make([]ColorRow, 0, len(colors))
	for _, c := range colors {
		rows = append(rows, ColorRow{
			ID:        c.ID.String(),
			Name:      c.Name,
			Value:     c.Value,
			CreatedAt: FormatDate(c.CreatedAt),
		})
	}
	return rows
}

func ProductRows(products []domain.Product) []ProductRow {
	rows := make([]ProductRow, 0, len(products))
	for _, p := range products {
		row := ProductRow{
			ID:         p.ID.String(),
			Name:       p.Name,
			Price:      FormatPrice(p.Price),
			IsFeatured: p.IsFeatured,
			IsArchived: p.IsArchived,
			CreatedAt:  FormatDate(p.CreatedAt),
		}
		if p.Category != nil {
			row.Category = p.Category.Name
		}
		if p.Size != nil {
			row.Size = p.Size.Name
		}
		if p.Color != nil {
			row.Color = p.Color.Value
		}
		rows = append(rows, row)
	}
	return rows
}
