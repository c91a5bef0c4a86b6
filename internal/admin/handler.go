// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/gleethreads/storefront-api/internal/core"
)

type CountFunc func(ctx context.Context) (int64, error)

type HandlerConfig struct {
	Version string

	CountProducts      CountFunc
	CountCategories    CountFunc
	CountActiveCoupons CountFunc
	CountSubscribers   CountFunc

	DBStats    func() sql.DBStats
	RedisStats func() *redis.PoolStats
	DBPing     func(ctx context.Context) error
	RedisPing  func(ctx context.Context) error
}

type Handler struct {
	cfg       HandlerConfig
	startedAt time.Time
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{cfg: cfg, startedAt: time.Now()}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stats", h.GetStats)
	r.Get("/stats/runtime", h.GetRuntimeStats)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp := StatsResponse{
		Version: h.cfg.Version,
		Uptime:  time.Since(h.startedAt).Round(time.Second).String(),
		Catalog: h.catalogStats(ctx),
		Database: DatabaseStatus{
			Healthy: ping(ctx, h.cfg.DBPing),
			Stats:   h.dbPoolStats(),
		},
		Redis: RedisStatus{
			Healthy: ping(ctx, h.cfg.RedisPing),
			Stats:   h.redisPoolStats(),
		},
		Runtime: readRuntimeStats(),
	}

	core.OK(w, resp)
}

func (h *Handler) GetRuntimeStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, readRuntimeStats())
}

// catalogStats runs the counts in parallel. A failed count is reported as null.
func (h *Handler) catalogStats(ctx context.Context) CatalogStats {
	var (
		stats CatalogStats
		wg    sync.WaitGroup
	)

	count := func(name string, fn CountFunc, dst **int64) {
		if fn == nil {
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := fn(ctx)
			if err != nil {
				slog.WarnContext(ctx, "catalog count failed", "count", name, "error", err)
				return
			}
			*dst = &n
		}()
	}

	count("products", h.cfg.CountProducts, &stats.Products)
	count("categories", h.cfg.CountCategories, &stats.Categories)
	count("active_coupons", h.cfg.CountActiveCoupons, &stats.ActiveCoupons)
	count("subscribers", h.cfg.CountSubscribers, &stats.Subscribers)

	wg.Wait()
	return stats
}

func ping(ctx context.Context, fn func(context.Context) error) bool {
	if fn == nil {
		return false
	}
	return fn(ctx) == nil
}

func (h *Handler) dbPoolStats() *DBPoolStats {
	if h.cfg.DBStats == nil {
		return nil
	}

	stats := h.cfg.DBStats()
	return &DBPoolStats{
		MaxOpenConnections: stats.MaxOpenConnections,
		OpenConnections:    stats.OpenConnections,
		InUse:              stats.InUse,
		Idle:               stats.Idle,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration.String(),
	}
}

func (h *Handler) redisPoolStats() *RedisPoolStats {
	if h.cfg.RedisStats == nil {
		return nil
	}

	stats := h.cfg.RedisStats()
	if stats == nil {
		return nil
	}
	return &RedisPoolStats{
		Hits:       stats.Hits,
		Misses:     stats.Misses,
		Timeouts:   stats.Timeouts,
		TotalConns: stats.TotalConns,
		IdleConns:  stats.IdleConns,
	}
}

func readRuntimeStats() RuntimeStats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return RuntimeStats{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     mem.Alloc,
		MemSys:       mem.Sys,
		NumGC:        mem.NumGC,
	}
}
