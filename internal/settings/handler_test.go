// AngelaMos | 2026
// handler_test.go

package settings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleethreads/storefront-api/internal/config"
	"github.com/gleethreads/storefront-api/internal/core"
)

func newRouter() http.Handler {
	h := NewHandler(config.StoreConfig{
		Name:                  "Glee Threads",
		Currency:              "INR",
		ShippingFee:           49,
		FreeShippingThreshold: 999.99,
		WhatsAppNumber:        "9876543210",
		InstagramHandle:       "@gleethreads",
	})

	r := chi.NewRouter()
	h.RegisterRoutes(r)
	r.Route("/admin", h.RegisterAdminRoutes)
	return r
}

func TestGetSettings(t *testing.T) {
	r := newRouter()

	for _, path := range []string{"/settings", "/admin/settings"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var s Settings
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
		assert.Equal(t, "Glee Threads", s.StoreName)
		assert.Equal(t, "INR", s.Currency)
		assert.True(t, decimal.RequireFromString("999.99").Equal(s.FreeShippingThreshold))
		assert.True(t, decimal.NewFromInt(49).Equal(s.ShippingFee))
	}
}

func TestUpdateSettingsAlwaysForbidden(t *testing.T) {
	r := newRouter()

	for _, body := range []string{"", `{"currency":"USD"}`, `garbage`} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/admin/settings", strings.NewReader(body)))
		assert.Equal(t, http.StatusForbidden, rec.Code)

		var resp core.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Error)
	}
}
