// AngelaMos | 2026
// service.go

package coupon

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/gleethreads/storefront-api/internal/core"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Verify answers whether a shopper-entered code is usable right now.
// Unknown, inactive and expired codes are indistinguishable to the caller.
func (s *Service) Verify(ctx context.Context, code string) (*VerifyResponse, error) {
	code = normalizeCode(code)
	if code == "" {
		return nil, core.ValidationError("Coupon code is required")
	}

	c, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("Coupon")
		}
		return nil, err
	}

	if !c.Redeemable(s.now()) {
		return nil, core.NotFoundError("Coupon")
	}

	return &VerifyResponse{
		Valid:           true,
		DiscountPercent: c.DiscountPercent,
		Code:            c.Code,
	}, nil
}

func (s *Service) List(ctx context.Context) ([]Coupon, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*Coupon, error) {
	code := normalizeCode(req.Code)
	if !codePattern.MatchString(code) {
		return nil, core.ValidationError("code must be 3 to 32 letters, digits, hyphens or underscores")
	}
	if req.ExpiresAt != nil && !req.ExpiresAt.After(s.now()) {
		return nil, core.ValidationError("expires_at must be in the future")
	}

	c := &Coupon{
		Code:            code,
		DiscountPercent: req.DiscountPercent,
		IsActive:        req.IsActive == nil || *req.IsActive,
		ExpiresAt:       req.ExpiresAt,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateError("Coupon code")
		}
		return nil, err
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return core.NotFoundError("Coupon")
	}
	return err
}

func (s *Service) CountActive(ctx context.Context) (int64, error) {
	return s.repo.CountActive(ctx)
}
