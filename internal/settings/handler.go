// AngelaMos | 2026
// handler.go

package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/gleethreads/storefront-api/internal/config"
	"github.com/gleethreads/storefront-api/internal/core"
)

type Settings struct {
	StoreName             string          `json:"store_name"`
	Currency              string          `json:"currency"`
	ShippingFee           decimal.Decimal `json:"shipping_fee"`
	FreeShippingThreshold decimal.Decimal `json:"free_shipping_threshold"`
	WhatsAppNumber        string          `json:"whatsapp_number"`
	InstagramHandle       string          `json:"instagram_handle"`
	Announcement          string          `json:"announcement"`
}

func FromConfig(cfg config.StoreConfig) Settings {
	return Settings{
		StoreName:             cfg.Name,
		Currency:              cfg.Currency,
		ShippingFee:           decimal.NewFromFloat(cfg.ShippingFee).Round(2),
		FreeShippingThreshold: decimal.NewFromFloat(cfg.FreeShippingThreshold).Round(2),
		WhatsAppNumber:        cfg.WhatsAppNumber,
		InstagramHandle:       cfg.InstagramHandle,
		Announcement:          cfg.Announcement,
	}
}

// Handler serves store settings. They are fixed at deploy time, so the
// admin update route always refuses.
type Handler struct {
	settings Settings
}

func NewHandler(cfg config.StoreConfig) *Handler {
	return &Handler{settings: FromConfig(cfg)}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/settings", h.Get)
}

func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/settings", h.Get)
	r.Put("/settings", h.Update)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.settings)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	core.Forbidden(w, "Settings are managed through server configuration and cannot be changed here")
}
