// AngelaMos | 2026
// handler_test.go

package disabled

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleethreads/storefront-api/internal/core"
)

func TestDisabledRoutes(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r)

	bodies := []string{"", `{"email":"a@b.in","password":"hunter22"}`, "not json at all"}

	tests := []struct {
		method string
		status int
	}{
		{http.MethodGet, http.StatusGone},
		{http.MethodPost, http.StatusGone},
		{http.MethodPut, http.StatusMethodNotAllowed},
		{http.MethodDelete, http.StatusMethodNotAllowed},
	}

	for _, path := range []string{"/auth/register", "/cart"} {
		for _, tt := range tests {
			for _, body := range bodies {
				t.Run(tt.method+" "+path, func(t *testing.T) {
					rec := httptest.NewRecorder()
					r.ServeHTTP(rec, httptest.NewRequest(tt.method, path, strings.NewReader(body)))

					assert.Equal(t, tt.status, rec.Code)

					var resp core.ErrorResponse
					require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
					assert.NotEmpty(t, resp.Error)

					if tt.status == http.StatusMethodNotAllowed {
						assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))
					}
				})
			}
		}
	}
}
