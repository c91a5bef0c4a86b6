// AngelaMos | 2026
// entity.go

package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int64           `db:"id"            json:"id"`
	Name         string          `db:"name"          json:"name"`
	Description  string          `db:"description"   json:"description"`
	Price        decimal.Decimal `db:"price"         json:"price"`
	ImageURL     string          `db:"image_url"     json:"image_url"`
	CategoryID   *int64          `db:"category_id"   json:"category_id"`
	CategoryName *string         `db:"category_name" json:"category_name"`
	CategorySlug *string         `db:"category_slug" json:"category_slug"`
	InStock      bool            `db:"in_stock"      json:"in_stock"`
	CreatedAt    time.Time       `db:"created_at"    json:"created_at"`
}

type FeaturedProduct struct {
	Product
	DisplayOrder int `db:"display_order" json:"display_order"`
}

type HeroProduct struct {
	Product
	DisplayOrder int    `db:"display_order" json:"display_order"`
	Headline     string `db:"headline"      json:"headline"`
}

type HeroEntry struct {
	ProductID int64
	Headline  string
}

type ListParams struct {
	CategorySlug string
	Search       string
}
