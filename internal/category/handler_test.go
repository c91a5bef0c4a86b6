// AngelaMos | 2026
// handler_test.go

package category

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleethreads/storefront-api/internal/core"
)

type memoryRepo struct {
	categories []Category
	inUse      map[int64]bool
	err        error
}

func (m *memoryRepo) List(context.Context) ([]Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := append([]Category{}, m.categories...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memoryRepo) Create(_ context.Context, c *Category) error {
	for _, existing := range m.categories {
		if existing.Slug == c.Slug {
			return fmt.Errorf("create category: %w", core.ErrDuplicateKey)
		}
	}
	c.ID = int64(len(m.categories) + 1)
	c.CreatedAt = time.Now()
	m.categories = append(m.categories, *c)
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, id int64) error {
	if m.inUse[id] {
		return fmt.Errorf("delete category: %w", core.ErrConflict)
	}
	for i, c := range m.categories {
		if c.ID == id {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete category: %w", core.ErrNotFound)
}

func (m *memoryRepo) Count(context.Context) (int64, error) {
	return int64(len(m.categories)), nil
}

func newRouter(repo Repository) http.Handler {
	h := NewHandler(NewService(repo))
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	r.Route("/admin", h.RegisterAdminRoutes)
	return r
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestListOrderedByName(t *testing.T) {
	repo := &memoryRepo{categories: []Category{
		{ID: 1, Name: "Oversized", Slug: "oversized"},
		{ID: 2, Name: "Graphic", Slug: "graphic"},
	}}

	rec := serve(newRouter(repo), http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Graphic", got[0].Name)
}

func TestListEmptyIsArray(t *testing.T) {
	rec := serve(newRouter(&memoryRepo{}), http.MethodGet, "/categories", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListDatabaseError(t *testing.T) {
	rec := serve(newRouter(&memoryRepo{err: errors.New("conn reset")}), http.MethodGet, "/categories", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestCreate(t *testing.T) {
	repo := &memoryRepo{}
	h := newRouter(repo)

	rec := serve(h, http.MethodPost, "/admin/categories",
		`{"name":"<b>Graphic</b> Tees","slug":"graphic-tees","description":"Bold prints<script>x</script>"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var c Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, "Graphic Tees", c.Name)
	assert.Equal(t, "Bold prints", c.Description)

	rec = serve(h, http.MethodPost, "/admin/categories", `{"name":"Again","slug":"graphic-tees"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateValidation(t *testing.T) {
	h := newRouter(&memoryRepo{})

	for _, body := range []string{
		`{`,
		`{"slug":"tees"}`,
		`{"name":"Tees","slug":"Not A Slug"}`,
		`{"name":"<i></i>","slug":"tees"}`,
	} {
		rec := serve(h, http.MethodPost, "/admin/categories", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestDelete(t *testing.T) {
	repo := &memoryRepo{
		categories: []Category{{ID: 1, Name: "Basics", Slug: "basics"}, {ID: 2, Name: "Graphic", Slug: "graphic"}},
		inUse:      map[int64]bool{2: true},
	}
	h := newRouter(repo)

	assert.Equal(t, http.StatusOK, serve(h, http.MethodDelete, "/admin/categories/1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodDelete, "/admin/categories/1", "").Code)
	assert.Equal(t, http.StatusConflict, serve(h, http.MethodDelete, "/admin/categories/2", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, http.MethodDelete, "/admin/categories/abc", "").Code)
}
