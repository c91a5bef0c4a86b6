// AngelaMos | 2026
// handler_test.go

package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type memoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	err     error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memoryStore) Put(_ context.Context, obj Object) (string, error) {
	if m.err != nil {
		return "", m.err
	}

	data, err := io.ReadAll(obj.Body)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[obj.Key] = data
	m.types[obj.Key] = obj.ContentType
	return PublicURL("https://cdn.gleethreads.in/", obj.Key), nil
}

func newRouter(store BlobStore, maxBytes int64) http.Handler {
	svc := NewService(store, maxBytes, "uploads")
	svc.newID = func() string { return "0b6f7c1e-1111-4222-8333-444455556666" }

	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r)
	return r
}

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		fw, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	} else {
		require.NoError(t, mw.WriteField("note", "no file here"))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestUploadImage(t *testing.T) {
	store := newMemoryStore()
	h := newRouter(store, 5<<20)

	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 600)...)
	rec := serve(h, multipartRequest(t, "file", "tee.txt", content))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var res Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	key := "uploads/0b6f7c1e-1111-4222-8333-444455556666.png"
	assert.Equal(t, "https://cdn.gleethreads.in/"+key, res.URL)
	assert.Equal(t, key, res.Key)
	assert.Equal(t, "image/png", res.ContentType)
	assert.Equal(t, int64(len(content)), res.Size)
	assert.Equal(t, content, store.objects[key], "stored bytes include the sniffed prefix")
}

func TestUploadRejections(t *testing.T) {
	tests := []struct {
		name   string
		max    int64
		req    func(t *testing.T) *http.Request
		status int
	}{
		{
			name:   "missing file field",
			max:    5 << 20,
			req:    func(t *testing.T) *http.Request { return multipartRequest(t, "", "", nil) },
			status: http.StatusBadRequest,
		},
		{
			name:   "wrong field name",
			max:    5 << 20,
			req:    func(t *testing.T) *http.Request { return multipartRequest(t, "image", "a.png", pngHeader) },
			status: http.StatusBadRequest,
		},
		{
			name: "not multipart",
			max:  5 << 20,
			req: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(pngHeader))
			},
			status: http.StatusBadRequest,
		},
		{
			name: "plain text disguised as png",
			max:  5 << 20,
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, "file", "shirt.png", []byte("hello, this is not an image"))
			},
			status: http.StatusUnsupportedMediaType,
		},
		{
			name: "html",
			max:  5 << 20,
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, "file", "x.png", []byte("<html><script>alert(1)</script></html>"))
			},
			status: http.StatusUnsupportedMediaType,
		},
		{
			name: "over configured size",
			max:  1024,
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, "file", "big.png", append(append([]byte{}, pngHeader...), make([]byte, 2048)...))
			},
			status: http.StatusRequestEntityTooLarge,
		},
		{
			name: "body exceeds hard limit",
			max:  1024,
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, "file", "huge.png", append(append([]byte{}, pngHeader...), make([]byte, 200<<10)...))
			},
			status: http.StatusRequestEntityTooLarge,
		},
		{
			name:   "empty file",
			max:    5 << 20,
			req:    func(t *testing.T) *http.Request { return multipartRequest(t, "file", "empty.png", nil) },
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemoryStore()
			rec := serve(newRouter(store, tt.max), tt.req(t))
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Empty(t, store.objects)
		})
	}
}

func TestUploadStorageNotConfigured(t *testing.T) {
	rec := serve(newRouter(nil, 5<<20), multipartRequest(t, "file", "a.png", pngHeader))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestUploadStorageFailure(t *testing.T) {
	store := newMemoryStore()
	store.err = errors.New("operation error S3: PutObject, https response error StatusCode: 403")

	rec := serve(newRouter(store, 5<<20), multipartRequest(t, "file", "a.png", pngHeader))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example/uploads/a.png", PublicURL("https://cdn.example/", "/uploads/a.png"))
	assert.Equal(t, "https://cdn.example/uploads/a.png", PublicURL("https://cdn.example", "uploads/a.png"))
}
