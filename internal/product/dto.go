// AngelaMos | 2026
// dto.go

package product

import (
	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	Name        string          `json:"name"        validate:"required,max=200"`
	Description string          `json:"description" validate:"max=5000"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"   validate:"omitempty,url,max=1000"`
	CategoryID  *int64          `json:"category_id" validate:"omitempty,gt=0"`
	InStock     *bool           `json:"in_stock"`
}

type FeaturedRequest struct {
	ProductIDs []int64 `json:"productIds" validate:"required,max=50,unique,dive,gt=0"`
}

// HeroRequest pairs headlines with productIds by position. Missing
// headlines are stored empty.
type HeroRequest struct {
	ProductIDs []int64  `json:"productIds" validate:"required,max=50,unique,dive,gt=0"`
	Headlines  []string `json:"headlines"  validate:"omitempty,max=50,dive,max=200"`
}
