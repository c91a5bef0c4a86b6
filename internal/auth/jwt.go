// AngelaMos | 2026
// jwt.go

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/gleethreads/storefront-api/internal/config"
	"github.com/gleethreads/storefront-api/internal/core"
	"github.com/gleethreads/storefront-api/internal/middleware"
)

const (
	claimUserID = "userId"
	claimEmail  = "email"
	claimRole   = "role"
)

// TokenManager signs and verifies HS256 tokens with the shared secret.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(cfg config.JWTConfig) (*TokenManager, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if cfg.AccessTokenExpire <= 0 {
		return nil, errors.New("jwt expiry must be positive")
	}

	return &TokenManager{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    cfg.AccessTokenExpire,
		now:    time.Now,
	}, nil
}

type IssuedToken struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
}

func (m *TokenManager) Issue(user *UserInfo) (*IssuedToken, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)
	jti := uuid.New().String()

	builder := jwt.NewBuilder().
		JwtID(jti).
		IssuedAt(now).
		Expiration(expiresAt).
		Claim(claimUserID, user.ID).
		Claim(claimEmail, user.Email).
		Claim(claimRole, user.Role)
	if m.issuer != "" {
		builder = builder.Issuer(m.issuer)
	}

	token, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.secret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &IssuedToken{
		Token:     string(signed),
		TokenID:   jti,
		ExpiresAt: expiresAt,
	}, nil
}

// Parse verifies signature, expiry and issuer, then decodes the claims.
// It does not consult the revocation list.
func (m *TokenManager) Parse(tokenString string) (*middleware.AccessTokenClaims, error) {
	opts := []jwt.ParseOption{
		jwt.WithKey(jwa.HS256(), m.secret),
		jwt.WithValidate(true),
		jwt.WithClock(jwt.ClockFunc(m.now)),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	token, err := jwt.Parse([]byte(tokenString), opts...)
	if err != nil {
		if isTokenExpiredError(err) {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	var userID float64
	if err := token.Get(claimUserID, &userID); err != nil || userID <= 0 {
		return nil, fmt.Errorf("verify token: missing userId claim: %w", core.ErrTokenInvalid)
	}

	var email, role string
	if err := token.Get(claimEmail, &email); err != nil {
		return nil, fmt.Errorf("verify token: missing email claim: %w", core.ErrTokenInvalid)
	}
	if err := token.Get(claimRole, &role); err != nil || role == "" {
		return nil, fmt.Errorf("verify token: missing role claim: %w", core.ErrTokenInvalid)
	}

	jti, ok := token.JwtID()
	if !ok || jti == "" {
		return nil, fmt.Errorf("verify token: missing jti: %w", core.ErrTokenInvalid)
	}

	expiresAt, ok := token.Expiration()
	if !ok {
		return nil, fmt.Errorf("verify token: missing exp: %w", core.ErrTokenInvalid)
	}

	return &middleware.AccessTokenClaims{
		TokenID:   jti,
		UserID:    int64(userID),
		Email:     email,
		Role:      role,
		ExpiresAt: expiresAt,
	}, nil
}

func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

func isTokenExpiredError(err error) bool {
	return errors.Is(err, jwt.TokenExpiredError())
}
