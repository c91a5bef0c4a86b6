// AngelaMos | 2026
// handler.go

package product

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/gleethreads/storefront-api/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/products", h.List)
	r.Get("/products/{id}", h.Get)
	r.Get("/featured-products", h.Featured)
	r.Get("/hero-products", h.Hero)
}

func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/products", h.Create)
	r.Delete("/products/{id}", h.Delete)
	r.Put("/featured-products", h.SetFeatured)
	r.Put("/hero-products", h.SetHero)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	products, err := h.service.List(r.Context(), ListParams{
		CategorySlug: q.Get("category"),
		Search:       q.Get("q"),
	})
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, products)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := core.IDParam(r, "id")
	if err != nil {
		core.JSONError(w, err)
		return
	}

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, p)
}

func (h *Handler) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.Featured(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, products)
}

// Hero never fails the storefront's landing page: a database error is
// logged and answered with an empty list.
func (h *Handler) Hero(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.Hero(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "load hero products", "error", err)
		core.OK(w, []HeroProduct{})
		return
	}

	core.OK(w, products)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	p, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, p)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := core.IDParam(r, "id")
	if err != nil {
		core.JSONError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		core.JSONError(w, err)
		return
	}

	core.Message(w, http.StatusOK, "product deleted")
}

func (h *Handler) SetFeatured(w http.ResponseWriter, r *http.Request) {
	var req FeaturedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if err := h.service.SetFeatured(r.Context(), req); err != nil {
		core.JSONError(w, err)
		return
	}

	products, err := h.service.Featured(r.Context())
	if err != nil {
		committedWithoutBody(w, r, "featured", err)
		return
	}

	core.OK(w, products)
}

func (h *Handler) SetHero(w http.ResponseWriter, r *http.Request) {
	var req HeroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if err := h.service.SetHero(r.Context(), req); err != nil {
		core.JSONError(w, err)
		return
	}

	products, err := h.service.Hero(r.Context())
	if err != nil {
		committedWithoutBody(w, r, "hero", err)
		return
	}

	core.OK(w, products)
}

// committedWithoutBody answers a list replacement whose transaction
// committed but whose read-back failed.
func committedWithoutBody(w http.ResponseWriter, r *http.Request, list string, err error) {
	slog.WarnContext(r.Context(), "reload product list after update",
		"list", list,
		"error", err,
	)
	core.NoContent(w)
}
