// AngelaMos | 2026
// repository.go

package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/gleethreads/storefront-api/internal/core"
)

type Repository interface {
	List(ctx context.Context, params ListParams) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	Featured(ctx context.Context) ([]FeaturedProduct, error)
	Hero(ctx context.Context) ([]HeroProduct, error)
	Create(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id int64) error
	ReplaceFeatured(ctx context.Context, productIDs []int64) error
	ReplaceHero(ctx context.Context, entries []HeroEntry) error
	Count(ctx context.Context) (int64, error)
}

const productColumns = `
	p.id, p.name, COALESCE(p.description, '') AS description, p.price,
	COALESCE(p.image_url, '') AS image_url, p.category_id,
	c.name AS category_name, c.slug AS category_slug,
	p.in_stock, p.created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, params ListParams) ([]Product, error) {
	var (
		where []string
		args  []any
	)

	if params.CategorySlug != "" {
		args = append(args, params.CategorySlug)
		where = append(where, fmt.Sprintf("c.slug = $%d", len(args)))
	}

	if params.Search != "" {
		args = append(args, "%"+core.EscapeLike(params.Search)+"%")
		where = append(where, fmt.Sprintf(
			`(p.name ILIKE $%[1]d ESCAPE '\' OR p.description ILIKE $%[1]d ESCAPE '\')`,
			len(args),
		))
	}

	query := `SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id`
	if len(where) > 0 {
		query += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	query += "\n\t\tORDER BY p.created_at DESC, p.id DESC"

	products := []Product{}
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`

	var p Product
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get product: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	return &p, nil
}

func (r *repository) Featured(ctx context.Context) ([]FeaturedProduct, error) {
	query := `SELECT ` + productColumns + `, f.display_order
		FROM featured_products f
		JOIN products p ON p.id = f.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY f.display_order`

	products := []FeaturedProduct{}
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("list featured products: %w", err)
	}

	return products, nil
}

func (r *repository) Hero(ctx context.Context) ([]HeroProduct, error) {
	query := `SELECT ` + productColumns + `, h.display_order,
		COALESCE(h.headline, '') AS headline
		FROM hero_products h
		JOIN products p ON p.id = h.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY h.display_order`

	products := []HeroProduct{}
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("list hero products: %w", err)
	}

	return products, nil
}

func (r *repository) Create(ctx context.Context, p *Product) error {
	query := `
		INSERT INTO products (name, description, price, image_url, category_id, in_stock)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		p.Name,
		p.Description,
		p.Price,
		p.ImageURL,
		p.CategoryID,
		p.InStock,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if core.IsForeignKeyError(err) {
			return fmt.Errorf("create product: unknown category: %w", core.ErrInvalidInput)
		}
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete product: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) ReplaceFeatured(ctx context.Context, productIDs []int64) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM featured_products`); err != nil {
			return fmt.Errorf("clear featured products: %w", err)
		}

		for i, id := range productIDs {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO featured_products (product_id, display_order) VALUES ($1, $2)`,
				id, i+1,
			)
			if err != nil {
				return insertListError("featured", err)
			}
		}
		return nil
	})
}

func (r *repository) ReplaceHero(ctx context.Context, entries []HeroEntry) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM hero_products`); err != nil {
			return fmt.Errorf("clear hero products: %w", err)
		}

		for i, e := range entries {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO hero_products (product_id, display_order, headline) VALUES ($1, $2, $3)`,
				e.ProductID, i+1, e.Headline,
			)
			if err != nil {
				return insertListError("hero", err)
			}
		}
		return nil
	})
}

func insertListError(list string, err error) error {
	if core.IsForeignKeyError(err) {
		return fmt.Errorf("set %s products: unknown product: %w", list, core.ErrInvalidInput)
	}
	return fmt.Errorf("set %s products: %w", list, err)
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM products`); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
