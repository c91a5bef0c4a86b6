// AngelaMos | 2026
// handler.go

package upload

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gleethreads/storefront-api/internal/core"
)

const (
	formField         = "file"
	multipartOverhead = 64 << 10
	maxMemory         = 1 << 20
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/upload", h.Upload)
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if !h.service.Enabled() {
		core.JSONError(w, core.UnavailableError("File uploads are not configured"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.service.MaxBytes()+multipartOverhead)

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		if isBodyTooLarge(err) {
			h.tooLarge(w)
			return
		}
		core.BadRequest(w, "expected a multipart form with a file field")
		return
	}
	defer func() {
		//nolint:errcheck // temp file cleanup is best effort
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile(formField)
	if err != nil {
		core.BadRequest(w, "file is required")
		return
	}
	defer file.Close()

	result, err := h.service.Store(r.Context(), file, header.Size)
	switch {
	case err == nil:
		core.Created(w, result)
	case errors.Is(err, ErrTooLarge):
		h.tooLarge(w)
	case errors.Is(err, ErrUnsupportedType):
		core.Error(w, http.StatusUnsupportedMediaType, "Only JPEG, PNG, GIF and WebP images are allowed")
	case errors.Is(err, ErrStorageDisabled):
		core.JSONError(w, core.UnavailableError("File uploads are not configured"))
	default:
		core.JSONError(w, err)
	}
}

func (h *Handler) tooLarge(w http.ResponseWriter) {
	core.Error(w, http.StatusRequestEntityTooLarge,
		fmt.Sprintf("File must be at most %d bytes", h.service.MaxBytes()))
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}
