// AngelaMos | 2026
// entity.go

package category

import (
	"time"
)

type Category struct {
	ID          int64     `db:"id"          json:"id"`
	Name        string    `db:"name"        json:"name"`
	Slug        string    `db:"slug"        json:"slug"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
}

type CreateRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Slug        string `json:"slug"        validate:"required,max=100,slug"`
	Description string `json:"description" validate:"max=2000"`
}
