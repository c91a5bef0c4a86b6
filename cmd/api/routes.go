// AngelaMos | 2026
// routes.go

package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/gleethreads/storefront-api/internal/admin"
	"github.com/gleethreads/storefront-api/internal/auth"
	"github.com/gleethreads/storefront-api/internal/category"
	"github.com/gleethreads/storefront-api/internal/config"
	"github.com/gleethreads/storefront-api/internal/content"
	"github.com/gleethreads/storefront-api/internal/coupon"
	"github.com/gleethreads/storefront-api/internal/disabled"
	"github.com/gleethreads/storefront-api/internal/health"
	"github.com/gleethreads/storefront-api/internal/middleware"
	"github.com/gleethreads/storefront-api/internal/product"
	"github.com/gleethreads/storefront-api/internal/settings"
	"github.com/gleethreads/storefront-api/internal/subscribe"
	"github.com/gleethreads/storefront-api/internal/upload"
)

type routeDeps struct {
	Config   *config.Config
	Logger   *slog.Logger
	Redis    *redis.Client
	Verifier middleware.TokenVerifier
	// Registry is nil when metrics are disabled.
	Registry *prometheus.Registry
	Tracing  bool

	Health    *health.Handler
	Auth      *auth.Handler
	Category  *category.Handler
	Product   *product.Handler
	Coupon    *coupon.Handler
	Subscribe *subscribe.Handler
	Settings  *settings.Handler
	Content   *content.Handler
	Upload    *upload.Handler
	Admin     *admin.Handler
}

// mountRoutes installs the middleware stack and every route on router.
// chi rejects Use after the first route, so all middleware goes first.
func mountRoutes(router *chi.Mux, d routeDeps) http.Handler {
	cfg := d.Config

	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer(d.Logger))
	if d.Tracing {
		router.Use(middleware.Tracing)
	}
	router.Use(middleware.Logger(d.Logger))
	if d.Registry != nil {
		router.Use(middleware.NewHTTPMetrics(d.Registry, "storefront").Handler)
	}
	router.Use(
		middleware.NewRateLimiter(d.Redis, middleware.RateLimitConfig{
			Limit: middleware.PerWindow(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
				cfg.RateLimit.Window,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	d.Health.RegisterRoutes(router)

	if d.Registry != nil {
		router.Handle(cfg.Metrics.Path, promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	}

	strictLimit := middleware.PerWindow(
		cfg.RateLimit.StrictRequests,
		cfg.RateLimit.StrictBurst,
		cfg.RateLimit.Window,
	)
	strict := func(prefix string) func(http.Handler) http.Handler {
		return middleware.StrictRateLimiter(d.Redis, prefix, strictLimit).Handler
	}

	authenticator := middleware.Authenticator(d.Verifier)
	adminOnly := middleware.AdminOnly(d.Verifier)

	router.Route("/api", func(r chi.Router) {
		disabled.RegisterRoutes(r)

		d.Auth.RegisterRoutes(r, authenticator, strict("login"))

		d.Category.RegisterRoutes(r)
		d.Product.RegisterRoutes(r)
		d.Settings.RegisterRoutes(r)
		d.Coupon.RegisterRoutes(r, strict("coupon"))
		d.Subscribe.RegisterRoutes(r, strict("subscribe"))
		d.Content.RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			d.Upload.RegisterRoutes(r)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(adminOnly)
			d.Category.RegisterAdminRoutes(r)
			d.Product.RegisterAdminRoutes(r)
			d.Coupon.RegisterAdminRoutes(r)
			d.Settings.RegisterAdminRoutes(r)
			d.Subscribe.RegisterAdminRoutes(r)
			d.Admin.RegisterRoutes(r)
		})
	})

	return router
}
