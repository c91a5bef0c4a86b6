// AngelaMos | 2026
// service.go

package category

import (
	"context"
	"errors"
	"strings"

	"github.com/gleethreads/storefront-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*Category, error) {
	c := &Category{
		Name:        core.StripTags(req.Name),
		Slug:        strings.ToLower(strings.TrimSpace(req.Slug)),
		Description: core.SanitizeHTML(req.Description),
	}
	if c.Name == "" {
		return nil, core.ValidationError("name is required")
	}

	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateError("slug")
		}
		return nil, err
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	switch {
	case errors.Is(err, core.ErrNotFound):
		return core.NotFoundError("category")
	case errors.Is(err, core.ErrConflict):
		return core.ConflictError("category still has products")
	}
	return err
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
