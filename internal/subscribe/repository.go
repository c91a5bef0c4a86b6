// AngelaMos | 2026
// repository.go

package subscribe

import (
	"context"
	"fmt"

	"github.com/gleethreads/storefront-api/internal/core"
)

type Repository interface {
	// Add stores the number and reports false if it was already present.
	Add(ctx context.Context, number string) (bool, error)
	List(ctx context.Context) ([]Subscriber, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Add(ctx context.Context, number string) (bool, error) {
	query := `
		INSERT INTO subscribes (whatsapp_number)
		VALUES ($1)
		ON CONFLICT (whatsapp_number) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query, number)
	if err != nil {
		return false, fmt.Errorf("add subscriber: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("add subscriber rows: %w", err)
	}

	return rows > 0, nil
}

func (r *repository) List(ctx context.Context) ([]Subscriber, error) {
	query := `
		SELECT id, whatsapp_number, created_at
		FROM subscribes
		ORDER BY created_at DESC, id DESC`

	subscribers := []Subscriber{}
	if err := r.db.SelectContext(ctx, &subscribers, query); err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}

	return subscribers, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM subscribes`); err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return n, nil
}
