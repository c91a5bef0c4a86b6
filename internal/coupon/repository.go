// AngelaMos | 2026
// repository.go

package coupon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gleethreads/storefront-api/internal/core"
)

type Repository interface {
	GetByCode(ctx context.Context, code string) (*Coupon, error)
	List(ctx context.Context) ([]Coupon, error)
	Create(ctx context.Context, c *Coupon) error
	Delete(ctx context.Context, id int64) error
	CountActive(ctx context.Context) (int64, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) GetByCode(ctx context.Context, code string) (*Coupon, error) {
	query := `
		SELECT id, code, discount_percent, is_active, expires_at, created_at
		FROM coupons
		WHERE UPPER(code) = UPPER($1)
		LIMIT 1`

	var c Coupon
	err := r.db.GetContext(ctx, &c, query, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get coupon: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get coupon: %w", err)
	}

	return &c, nil
}

func (r *repository) List(ctx context.Context) ([]Coupon, error) {
	query := `
		SELECT id, code, discount_percent, is_active, expires_at, created_at
		FROM coupons
		ORDER BY created_at DESC, id DESC`

	coupons := []Coupon{}
	if err := r.db.SelectContext(ctx, &coupons, query); err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}

	return coupons, nil
}

func (r *repository) Create(ctx context.Context, c *Coupon) error {
	query := `
		INSERT INTO coupons (code, discount_percent, is_active, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		c.Code,
		c.DiscountPercent,
		c.IsActive,
		c.ExpiresAt,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("create coupon: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create coupon: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete coupon rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete coupon: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) CountActive(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM coupons
		WHERE is_active AND (expires_at IS NULL OR expires_at > NOW())`

	var n int64
	if err := r.db.GetContext(ctx, &n, query); err != nil {
		return 0, fmt.Errorf("count active coupons: %w", err)
	}
	return n, nil
}
