// AngelaMos | 2026
// service.go

package product

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

func (s *Service) List(ctx context.Context, params ListParams) ([]Product, error) {
	params.CategorySlug = strings.ToLower(strings.TrimSpace(params.CategorySlug))
	params.Search = strings.TrimSpace(params.Search)
	if len(params.Search) > 100 {
		return nil, core.ValidationError("q must be at most 100 characters")
	}

	return s.repo.List(ctx, params)
}

func (s *Service) Get(ctx context.Context, id int64) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("product")
	}
	return p, err
}

func (s *Service) Featured(ctx context.Context) ([]FeaturedProduct, error) {
	return s.repo.Featured(ctx)
}

func (s *Service) Hero(ctx context.Context) ([]HeroProduct, error) {
	return s.repo.Hero(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*Product, error) {
	if !req.Price.IsPositive() {
		return nil, core.ValidationError("price must be greater than 0")
	}
	if !req.Price.Equal(req.Price.Round(2)) {
		return nil, core.ValidationError("price must have at most 2 decimal places")
	}

	p := &Product{
		Name:        core.StripTags(req.Name),
		Description: core.SanitizeHTML(req.Description),
		Price:       req.Price,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		CategoryID:  req.CategoryID,
		InStock:     req.InStock == nil || *req.InStock,
	}
	if p.Name == "" {
		return nil, core.ValidationError("name is required")
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			return nil, core.ValidationError("category_id does not exist")
		}
		return nil, err
	}

	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return core.NotFoundError("product")
	}
	return err
}

func (s *Service) SetFeatured(ctx context.Context, req FeaturedRequest) error {
	err := s.repo.ReplaceFeatured(ctx, req.ProductIDs)
	if errors.Is(err, core.ErrInvalidInput) {
		return core.ValidationError("productIds contains an unknown product")
	}
	return err
}

func (s *Service) SetHero(ctx context.Context, req HeroRequest) error {
	if len(req.Headlines) > len(req.ProductIDs) {
		return core.ValidationError("headlines must not outnumber productIds")
	}

	entries := make([]HeroEntry, len(req.ProductIDs))
	for i, id := range req.ProductIDs {
		entries[i].ProductID = id
		if i < len(req.Headlines) {
			entries[i].Headline = core.SanitizeHTML(req.Headlines[i])
		}
	}

	err := s.repo.ReplaceHero(ctx, entries)
	if errors.Is(err, core.ErrInvalidInput) {
		return core.ValidationError("productIds contains an unknown product")
	}
	return err
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
