package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func newRateLimitedRouter(t *testing.T, rps float64, burst int) *gin.Engine {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	router := gin.New()
	router.Use(RateLimitMiddleware(ctx, rps, burst, discardLogger()))
	router.GET("/convert", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func requestFrom(router http.Handler, forwardedFor string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/convert", nil)
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware_AllowsRequestsWithinLimit(t *testing.T) {
	router := newRateLimitedRouter(t, 10.0, 20)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, requestFrom(router, "").Code)
	}
}

func TestRateLimitMiddleware_BlocksRequestsExceedingLimit(t *testing.T) {
	router := newRateLimitedRouter(t, 1.0, 2)

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, requestFrom(router, "").Code)
	}

	w := requestFrom(router, "")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.JSONEq(t,
		`{"error":"rate_limit_exceeded","message":"Too many requests. Please retry after the specified delay."}`,
		w.Body.String(),
	)
}

func TestRateLimitMiddleware_IndependentPerIP(t *testing.T) {
	router := newRateLimitedRouter(t, 0.01, 1)

	assert.Equal(t, http.StatusOK, requestFrom(router, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(router, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, requestFrom(router, "10.0.0.2").Code)
}

func TestRateLimiterStore_EvictIdle(t *testing.T) {
	store := &rateLimiterStore{rps: 1, burst: 1}

	store.getLimiter("10.0.0.1")
	store.getLimiter("10.0.0.2")

	if val, ok := store.limiters.Load("10.0.0.1"); ok {
		entry := val.(*rateLimiterEntry)
		entry.mu.Lock()
		entry.lastAccess = time.Now().Add(-2 * time.Hour)
		entry.mu.Unlock()
	}

	store.evictIdle(time.Now().Add(-time.Hour))

	_, stale := store.limiters.Load("10.0.0.1")
	_, fresh := store.limiters.Load("10.0.0.2")
	assert.False(t, stale)
	assert.True(t, fresh)
}

func TestRateLimiterStore_SameLimiterPerIP(t *testing.T) {
	store := &rateLimiterStore{rps: 1, burst: 1}

	assert.Same(t, store.getLimiter("10.0.0.1"), store.getLimiter("10.0.0.1"))
}

func TestRateLimitMiddleware_CleanupStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	_ = RateLimitMiddleware(ctx, 1, 1, discardLogger())
	cancel()
}
