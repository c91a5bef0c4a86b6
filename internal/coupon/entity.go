// AngelaMos | 2026
// entity.go

package coupon

import (
	"time"
)

type Coupon struct {
	ID              int64      `db:"id"               json:"id"`
	Code            string     `db:"code"             json:"code"`
	DiscountPercent int        `db:"discount_percent" json:"discount_percent"`
	IsActive        bool       `db:"is_active"        json:"is_active"`
	ExpiresAt       *time.Time `db:"expires_at"       json:"expires_at"`
	CreatedAt       time.Time  `db:"created_at"       json:"created_at"`
}

// Redeemable reports whether the coupon can be applied at now.
func (c *Coupon) Redeemable(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	return c.ExpiresAt == nil || c.ExpiresAt.After(now)
}

type VerifyRequest struct {
	Code string `json:"code" validate:"max=64"`
}

type VerifyResponse struct {
	Valid           bool   `json:"valid"`
	DiscountPercent int    `json:"discount_percent"`
	Code            string `json:"code"`
}

type CreateRequest struct {
	Code            string     `json:"code"             validate:"required,max=32"`
	DiscountPercent int        `json:"discount_percent" validate:"required,min=1,max=100"`
	ExpiresAt       *time.Time `json:"expires_at"`
	IsActive        *bool      `json:"is_active"`
}
