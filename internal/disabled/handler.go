// AngelaMos | 2026
// handler.go

package disabled

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gleethreads/storefront-api/internal/core"
)

var allowedMethods = strings.Join([]string{http.MethodGet, http.MethodPost}, ", ")

// Handler answers routes for features the store has switched off.
// GET and POST report the feature as gone; PUT and DELETE were never
// supported. The request body is never read.
type Handler struct {
	feature string
}

func NewHandler(feature string) *Handler {
	return &Handler{feature: feature}
}

func (h *Handler) Gone(w http.ResponseWriter, r *http.Request) {
	core.Error(w, http.StatusGone, h.feature+" is no longer available")
}

func (h *Handler) NotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", allowedMethods)
	core.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
}

func (h *Handler) Mount(r chi.Router, pattern string) {
	r.Get(pattern, h.Gone)
	r.Post(pattern, h.Gone)
	r.Put(pattern, h.NotAllowed)
	r.Delete(pattern, h.NotAllowed)
}

// RegisterRoutes mounts registration and the cart, both retired.
func RegisterRoutes(r chi.Router) {
	NewHandler("Registration").Mount(r, "/auth/register")
	NewHandler("Cart").Mount(r, "/cart")
}
