// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gleethreads/storefront-api/internal/core"
)

const (
	ClaimsKey contextKey = "token_claims"

	RoleAdmin = "admin"

	unauthorizedMessage = "Unauthorized"
)

type TokenVerifier interface {
	VerifyAccessToken(ctx context.Context, token string) (*AccessTokenClaims, error)
}

// AccessTokenClaims is the decoded payload of an admin token.
type AccessTokenClaims struct {
	TokenID   string
	UserID    int64
	Email     string
	Role      string
	ExpiresAt time.Time
}

func (c *AccessTokenClaims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

// Authenticator rejects the request with 401 unless it carries a valid
// bearer token. Expired, malformed, tampered and revoked tokens all get the
// same response.
func Authenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)
			if token == "" {
				core.Unauthorized(w, unauthorizedMessage)
				return
			}

			claims, err := verifier.VerifyAccessToken(r.Context(), token)
			if err != nil {
				slog.Debug("token rejected",
					"error", err,
					"request_id", GetRequestID(r.Context()),
				)
				core.Unauthorized(w, unauthorizedMessage)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireRole(roles ...string) func(http.Handler) http.Handler {
	roleSet := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		roleSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaims(r.Context())
			if claims == nil {
				core.Unauthorized(w, unauthorizedMessage)
				return
			}

			if _, ok := roleSet[claims.Role]; !ok {
				core.Forbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(RoleAdmin)(next)
}

// AdminOnly chains token verification and the admin role check.
func AdminOnly(verifier TokenVerifier) func(http.Handler) http.Handler {
	authenticate := Authenticator(verifier)
	return func(next http.Handler) http.Handler {
		return authenticate(RequireAdmin(next))
	}
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func GetClaims(ctx context.Context) *AccessTokenClaims {
	if claims, ok := ctx.Value(ClaimsKey).(*AccessTokenClaims); ok {
		return claims
	}
	return nil
}

func GetUserID(ctx context.Context) int64 {
	if claims := GetClaims(ctx); claims != nil {
		return claims.UserID
	}
	return 0
}

func IsAdmin(ctx context.Context) bool {
	return GetClaims(ctx).IsAdmin()
}
