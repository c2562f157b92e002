/*
Package limiter provides rate limiting based on client IP addresses.

It utilizes the Token Bucket algorithm (rate.Limiter) to control the request frequency
for each client IP address and includes a cleanup goroutine to periodically remove
inactive limiters, preventing memory leaks.
*/
package limiter

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/soaresgus/community-backend/internal/pkg/errs"
	"github.com/soaresgus/community-backend/internal/pkg/logx"
	"github.com/soaresgus/community-backend/internal/pkg/resp"
)

// cleanupInterval is how often idle limiters are dropped.
const cleanupInterval = 3 * time.Minute

// IPRateLimiter implements a rate limiter keyed by client IP address.
type IPRateLimiter struct {
	// mu is used to protect concurrent access to the limits map.
	mu sync.RWMutex

	// limits stores the map from client IP address to the *rate.Limiter instance.
	limits map[string]*rate.Limiter

	// r is the number of events allowed per second.
	r rate.Limit

	// b is the burst size (token bucket size) of the limiter.
	b int
}

// NewIPRateLimiter creates and returns a new IPRateLimiter instance.
// It starts a background goroutine that cleans up inactive limiters until ctx is done.
func NewIPRateLimiter(ctx context.Context, r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		limits: make(map[string]*rate.Limiter),
		r:      r,
		b:      b,
	}

	go i.cleanUpVisitors(ctx)

	return i
}

// GetLimiter retrieves the rate limiter corresponding to the given IP address,
// creating it on first use. Creation is double-checked under the write lock.
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.RLock()
	limiter, exists := i.limits[ip]
	i.mu.RUnlock()

	if !exists {
		i.mu.Lock()
		limiter, exists = i.limits[ip]
		if !exists {
			limiter = rate.NewLimiter(i.r, i.b)
			i.limits[ip] = limiter
		}
		i.mu.Unlock()
	}

	return limiter
}

// cleanUpVisitors periodically removes limiters whose token bucket is full again,
// i.e. clients that have been idle long enough to regain their whole burst.
func (i *IPRateLimiter) cleanUpVisitors(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			removed, remaining := i.sweep(now)
			logx.Logger().Debug().
				Int("removed", removed).
				Int("remaining", remaining).
				Msg("Rate limiter cleanup finished")
		}
	}
}

func (i *IPRateLimiter) sweep(now time.Time) (removed, remaining int) {
	i.mu.Lock()
	defer i.mu.Unlock()

	for ip, limiter := range i.limits {
		if limiter.TokensAt(now) >= float64(limiter.Burst()) {
			delete(i.limits, ip)
			removed++
		}
	}
	return removed, len(i.limits)
}

// Middleware returns an HTTP middleware that performs rate limiting checks on incoming requests.
// If a request exceeds the limit, it responds with a 429 Too Many Requests error.
func (i *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if ip == "" {
			ip = "unknown_ip"
		}

		if !i.GetLimiter(ip).Allow() {
			resp.RespondError(w, r, errs.NewError(errs.ErrRateLimitExceeded))
			return
		}

		next.ServeHTTP(w, r)
	})
}
