package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRoutePattern(t *testing.T) {
	m := NewHTTP()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, target := range []string{"/api/users/a", "/api/users/b", "/ok", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests().WithLabelValues("/api/users/{id}", "GET", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests().WithLabelValues("/ok", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests().WithLabelValues("unmatched", "GET", "404")))
}

func TestHandler_Exposes(t *testing.T) {
	m := NewHTTP()
	m.Requests().WithLabelValues("/health", "GET", "200").Inc()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "community_http_requests_total")
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
