package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gingham-app/gingham/internal/testutil"
)

func TestMemoryLimiterBurst(t *testing.T) {
	m := NewMemoryLimiter(1, 2)
	defer func() { _ = m.Close() }()

	ctx := context.Background()

	// The burst capacity allows the first 2 rapid requests; the third is
	// rejected until tokens refill.
	for i := range 3 {
		allowed, err := m.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		if i < 2 {
			assert.True(t, allowed, "request %d should be within burst", i+1)
		} else {
			assert.False(t, allowed, "request %d should be rejected", i+1)
		}
	}
}

func TestMemoryLimiterIndependentKeys(t *testing.T) {
	m := NewMemoryLimiter(1, 1)
	defer func() { _ = m.Close() }()

	ctx := context.Background()

	allowed, err := m.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)

	// A's bucket is empty but B's is untouched.
	allowed, _ = m.Allow(ctx, "10.0.0.1")
	assert.False(t, allowed)
	allowed, _ = m.Allow(ctx, "10.0.0.2")
	assert.True(t, allowed)
}

func TestMemoryLimiterRefill(t *testing.T) {
	m := NewMemoryLimiter(100, 1)
	defer func() { _ = m.Close() }()

	ctx := context.Background()
	allowed, _ := m.Allow(ctx, "k")
	require.True(t, allowed)
	allowed, _ = m.Allow(ctx, "k")
	require.False(t, allowed)

	// At 100 tokens/sec a 50ms wait refills at least one token.
	time.Sleep(50 * time.Millisecond)
	allowed, _ = m.Allow(ctx, "k")
	assert.True(t, allowed)
}

func TestNoopLimiter(t *testing.T) {
	allowed, err := NoopLimiter{}.Allow(context.Background(), "anything")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMiddleware(t *testing.T) {
	m := NewMemoryLimiter(1, 2)
	defer func() { _ = m.Close() }()

	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Middleware(m, testutil.TestLogger(), nil)(inner)

	for i := range 3 {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/v1/weather", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		handler.ServeHTTP(rec, req)

		if i < 2 {
			assert.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
		} else {
			assert.Equal(t, http.StatusTooManyRequests, rec.Code, "request %d", i+1)
			assert.NotEmpty(t, rec.Header().Get("Retry-After"))
		}
	}

	// A different IP has its own bucket.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/v1/weather", nil)
	req.RemoteAddr = "192.168.1.2:12345"
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIPKey(t *testing.T) {
	req := httptest.NewRequest("GET", "/x", nil)
	req.RemoteAddr = "10.1.2.3:5555"
	assert.Equal(t, "10.1.2.3", ipKey(req))

	req.RemoteAddr = "nocolon"
	assert.Equal(t, "nocolon", ipKey(req))
}
