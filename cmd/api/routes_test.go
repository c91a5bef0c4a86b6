// AngelaMos | 2026
// routes_test.go

package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleethreads/storefront-api/internal/admin"
	"github.com/gleethreads/storefront-api/internal/auth"
	"github.com/gleethreads/storefront-api/internal/category"
	"github.com/gleethreads/storefront-api/internal/config"
	"github.com/gleethreads/storefront-api/internal/content"
	"github.com/gleethreads/storefront-api/internal/coupon"
	"github.com/gleethreads/storefront-api/internal/health"
	"github.com/gleethreads/storefront-api/internal/middleware"
	"github.com/gleethreads/storefront-api/internal/product"
	"github.com/gleethreads/storefront-api/internal/server"
	"github.com/gleethreads/storefront-api/internal/settings"
	"github.com/gleethreads/storefront-api/internal/subscribe"
	"github.com/gleethreads/storefront-api/internal/upload"
)

const (
	adminToken    = "admin-token"
	customerToken = "customer-token"
)

type stubVerifier struct{}

func (stubVerifier) VerifyAccessToken(_ context.Context, token string) (*middleware.AccessTokenClaims, error) {
	claims := &middleware.AccessTokenClaims{
		TokenID:   "jti-1",
		UserID:    1,
		Email:     "owner@gleethreads.in",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	switch token {
	case adminToken:
		claims.Role = middleware.RoleAdmin
	case customerToken:
		claims.Role = "customer"
	default:
		return nil, errors.New("bad token")
	}
	return claims, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Environment: "development", Version: "test"},
		RateLimit: config.RateLimitConfig{
			Requests:       1000,
			Burst:          1000,
			Window:         time.Minute,
			StrictRequests: 100,
			StrictBurst:    100,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
		Store:   config.StoreConfig{Name: "Glee Threads", Currency: "INR"},
	}
}

// newTestRouter builds the production route tree with handlers that have no
// database behind them. Tests only hit routes that never reach a repository.
func newTestRouter(t *testing.T, registry *prometheus.Registry) http.Handler {
	t.Helper()

	pages, err := content.Load()
	require.NoError(t, err)

	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	healthHandler := health.NewHandler()

	srv := server.New(server.Config{
		ServerConfig:  config.ServerConfig{Port: 8080},
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	var handler http.Handler
	require.NotPanics(t, func() {
		handler = mountRoutes(srv.Router(), routeDeps{
			Config:    cfg,
			Logger:    logger,
			Verifier:  stubVerifier{},
			Registry:  registry,
			Health:    healthHandler,
			Auth:      auth.NewHandler(nil),
			Category:  category.NewHandler(category.NewService(nil)),
			Product:   product.NewHandler(product.NewService(nil)),
			Coupon:    coupon.NewHandler(coupon.NewService(nil)),
			Subscribe: subscribe.NewHandler(nil),
			Settings:  settings.NewHandler(cfg.Store),
			Content:   content.NewHandler(pages),
			Upload:    upload.NewHandler(upload.NewService(nil, 1<<20, "")),
			Admin:     admin.NewHandler(admin.HandlerConfig{Version: "test"}),
		})
	})
	return handler
}

func do(h http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader("{}"))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouteTree(t *testing.T) {
	h := newTestRouter(t, prometheus.NewRegistry())

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"register is gone", http.MethodGet, "/api/auth/register", "", http.StatusGone},
		{"register post is gone", http.MethodPost, "/api/auth/register", "", http.StatusGone},
		{"cart is gone", http.MethodGet, "/api/cart", "", http.StatusGone},
		{"cart put not allowed", http.MethodPut, "/api/cart", "", http.StatusMethodNotAllowed},
		{"cart delete not allowed", http.MethodDelete, "/api/cart", "", http.StatusMethodNotAllowed},
		{"admin without token", http.MethodDelete, "/api/admin/coupons/1", "", http.StatusUnauthorized},
		{"admin with bad token", http.MethodDelete, "/api/admin/coupons/1", "forged", http.StatusUnauthorized},
		{"admin as customer", http.MethodDelete, "/api/admin/coupons/1", customerToken, http.StatusForbidden},
		{"admin stats as customer", http.MethodGet, "/api/admin/stats", customerToken, http.StatusForbidden},
		{"admin settings", http.MethodGet, "/api/admin/settings", adminToken, http.StatusOK},
		{"admin settings update", http.MethodPut, "/api/admin/settings", adminToken, http.StatusForbidden},
		{"admin runtime stats", http.MethodGet, "/api/admin/stats/runtime", adminToken, http.StatusOK},
		{"upload without token", http.MethodPost, "/api/upload", "", http.StatusUnauthorized},
		{"upload without storage", http.MethodPost, "/api/upload", adminToken, http.StatusServiceUnavailable},
		{"me without token", http.MethodGet, "/api/auth/me", "", http.StatusUnauthorized},
		{"public settings", http.MethodGet, "/api/settings", "", http.StatusOK},
		{"pages", http.MethodGet, "/api/pages", "", http.StatusOK},
		{"unknown page", http.MethodGet, "/api/pages/unknown", "", http.StatusNotFound},
		{"liveness", http.MethodGet, "/healthz", "", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/orders", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(h, tt.method, tt.path, tt.token)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
			assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestAdminRejectionsShareOneMessage(t *testing.T) {
	h := newTestRouter(t, nil)

	missing := do(h, http.MethodGet, "/api/admin/coupons", "")
	forged := do(h, http.MethodGet, "/api/admin/coupons", "forged")

	assert.Equal(t, http.StatusUnauthorized, missing.Code)
	assert.JSONEq(t, missing.Body.String(), forged.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestRouter(t, prometheus.NewRegistry())

	require.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/settings", "").Code)

	rec := do(h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "storefront_http_requests_total")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestMetricsDisabled(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
