package listing

import (
	"testing"
	"time"

	"store-admin/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate_OrdinalDays(t *testing.T) {
	cases := []struct {
		day      int
		expected string
	}{
		{1, "January 1st, 2026"},
		{2, "January 2nd, 2026"},
		{3, "January 3rd, 2026"},
		{4, "January 4th, 2026"},
		{11, "January 11th, 2026"},
		{12, "January 12th, 2026"},
		{13, "January 13th, 2026"},
		{21, "January 21st, 2026"},
		{22, "January 22nd, 2026"},
		{23, "January 23rd, 2026"},
		{31, "January 31st, 2026"},
	}

	for _, tc := range cases {
		ts := time.Date(2026, time.January, tc.day, 10, 0, 0, 0, time.UTC)
		assert.Equal(t, tc.expected, FormatDate(ts))
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$19.99", FormatPrice(decimal.RequireFromString("19.99")))
	assert.Equal(t, "$5.00", FormatPrice(decimal.NewFromInt(5)))
	assert.Equal(t, "$0.50", FormatPrice(decimal.RequireFromString("0.5")))
}

func TestCategoryRows_CarryBillboardLabel(t *testing.T) {
	created := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	categories := []domain.Category{
		{
			ID:        uuid.New(),
			Name:      "Shirts",
			CreatedAt: created,
			Billboard: &domain.Billboard{Label: "Summer Sale"},
		},
		{
			ID:        uuid.New(),
			Name:      "Orphan",
			CreatedAt: created,
		},
	}

	rows := CategoryRows(categories)
	require.Len(t, rows, 2)
	assert.Equal(t, "Shirts", rows[0].Name)
	assert.Equal(t, "Summer Sale", rows[0].BillboardLabel)
	assert.Equal(t, "March 3rd, 2026", rows[0].CreatedAt)
	assert.Empty(t, rows[1].BillboardLabel, "missing billboard renders as empty label")
}

func TestProductRows_DenormalizeReferences(t *testing.T) {
	created := time.Date(2026, time.July, 22, 0, 0, 0, 0, time.UTC)
	products := []domain.Product{
		{
			ID:         uuid.New(),
			Name:       "Tee",
			Price:      decimal.RequireFromString("24.50"),
			IsFeatured: true,
			CreatedAt:  created,
			Category:   &domain.Category{Name: "Shirts"},
			Size:       &domain.Size{Name: "Medium", Value: "M"},
			Color:      &domain.Color{Name: "Black", Value: "#000000"},
		},
	}

	rows := ProductRows(products)
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "Tee", row.Name)
	assert.Equal(t, "$24.50", row.Price)
	assert.Equal(t, "Shirts", row.Category)
	assert.Equal(t, "Medium", row.Size)
	assert.Equal(t, "#000000", row.Color, "color rows show the hex value for the swatch")
	assert.True(t, row.IsFeatured)
	assert.False(t, row.IsArchived)
	assert.Equal(t, "July 22nd, 2026", row.CreatedAt)
}

func TestRows_DoNotMutateInput(t *testing.T) {
	size := domain.Size{ID: uuid.New(), Name: "Large", Value: "L", CreatedAt: time.Now()}
	sizes := []domain.Size{size}

	rows := SizeRows(sizes)
	rows[0].Name = "Changed"

	assert.Equal(t, "Large", sizes[0].Name)
}

func TestRows_EmptyInputYieldsEmptySlice(t *testing.T) {
	assert.Empty(t, BillboardRows(nil))
	assert.Empty(t, ColorRows(nil))
	assert.Empty(t, ProductRows(nil))
	assert.NotNil(t, SizeRows(nil), "rows marshal as [] rather than null")
}
