// AngelaMos | 2026
// handler.go

package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gleethreads/storefront-api/internal/core"
)

type Handler struct {
	library *Library
}

func NewHandler(library *Library) *Handler {
	return &Handler{library: library}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/pages", h.List)
	r.Get("/pages/{slug}", h.Get)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=300")
	core.OK(w, h.library.List())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	page, ok := h.library.Get(chi.URLParam(r, "slug"))
	if !ok {
		core.NotFound(w, "page")
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=300")
	core.OK(w, page)
}
