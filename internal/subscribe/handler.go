// AngelaMos | 2026
// handler.go

package subscribe

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/gleethreads/storefront-api/internal/core"
)

type Handler struct {
	repo      Repository
	validator *validator.Validate
}

func NewHandler(repo Repository) *Handler {
	return &Handler{
		repo:      repo,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router, limiter func(http.Handler) http.Handler) {
	r.With(limiter).Post("/subscribe", h.Subscribe)
}

func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/subscribers", h.List)
}

func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, "whatsappNumber must be exactly 10 digits")
		return
	}

	created, err := h.repo.Add(r.Context(), req.WhatsAppNumber)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	if !created {
		core.Message(w, http.StatusOK, MessageAlreadySubscribed)
		return
	}

	core.Message(w, http.StatusCreated, MessageSubscribed)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.repo.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, subscribers)
}
