package limiter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func newLimiter(t *testing.T, r rate.Limit, b int) *IPRateLimiter {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return NewIPRateLimiter(ctx, r, b)
}

func TestMiddleware_LimitsPerIP(t *testing.T) {
	l := newLimiter(t, rate.Every(time.Hour), 2)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(remote string) int {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.RemoteAddr = remote
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, call("203.0.113.1:1000"))
	assert.Equal(t, http.StatusNoContent, call("203.0.113.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, call("203.0.113.1:1002"))

	assert.Equal(t, http.StatusNoContent, call("203.0.113.2:1000"))
}

func TestGetLimiter_ReusesPerIP(t *testing.T) {
	l := newLimiter(t, 1, 1)

	assert.Same(t, l.GetLimiter("a"), l.GetLimiter("a"))
	assert.NotSame(t, l.GetLimiter("a"), l.GetLimiter("b"))
}

func TestSweep_DropsIdleLimiters(t *testing.T) {
	l := newLimiter(t, rate.Every(time.Minute), 1)

	busy := l.GetLimiter("busy")
	assert.True(t, busy.Allow())
	l.GetLimiter("idle")

	removed, remaining := l.sweep(time.Now())
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, remaining)

	removed, remaining = l.sweep(time.Now().Add(2 * time.Minute))
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, remaining)
}
