// AngelaMos | 2026
// ratelimit_test.go

package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiterLocalFallback(t *testing.T) {
	rl := StrictRateLimiter(nil, "login", PerMinute(2, 2))
	h := rl.Handler(okHandler())

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)

		if rec.Code == http.StatusTooManyRequests {
			assert.NotEmpty(t, rec.Header().Get("Retry-After"))
			assert.Contains(t, rec.Body.String(), "RATE_LIMITED")
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	other.RemoteAddr = "198.51.100.1:4000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code, "limits are per client")
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	assert.Equal(t, "10.0.0.1", ClientIP(req))

	req.Header.Set("X-Real-IP", "192.0.2.9")
	assert.Equal(t, "192.0.2.9", ClientIP(req))

	req.Header.Set("X-Forwarded-For", "1.1.1.1, 192.0.2.10")
	assert.Equal(t, "192.0.2.10", ClientIP(req))
}

func TestPerWindowDefaultsToMinute(t *testing.T) {
	assert.Equal(t, time.Minute, PerWindow(10, 5, 0).Period)
	assert.Equal(t, time.Hour, PerWindow(10, 5, time.Hour).Period)
}

func TestLocalLimiterConcurrentAccessAndSweep(t *testing.T) {
	l := &localLimiter{}
	limit := PerMinute(1000, 1000)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, err := l.allow("ip:203.0.113.9", limit)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			l.sweep(time.Now().Add(-entryTTL).Unix())
		}
	}()
	wg.Wait()

	_, ok := l.limiters.Load("ip:203.0.113.9")
	assert.True(t, ok, "recently used bucket survives sweep")

	l.sweep(time.Now().Add(time.Hour).Unix())
	_, ok = l.limiters.Load("ip:203.0.113.9")
	assert.False(t, ok, "stale bucket is dropped")
}
