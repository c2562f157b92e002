/*
Package handler provides the HTTP handlers and routing setup for the community API.

This file defines the main Router, applying necessary middleware like logging, CORS,
metrics and IP-based rate limiting before delegating requests to the user handlers.
*/
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	_ "github.com/soaresgus/community-backend/docs"
	"github.com/soaresgus/community-backend/internal/pkg/limiter"
	"github.com/soaresgus/community-backend/internal/pkg/logx"
	"github.com/soaresgus/community-backend/internal/pkg/resp"
)

const (
	// CreateRate and CreateBurst bound registrations per client IP.
	CreateRate  = 0.2
	CreateBurst = 5
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// The rate limiter's cleanup goroutine stops when ctx is done.
func Router(ctx context.Context, deps *AppDeps) http.Handler {
	createLimiter := limiter.NewIPRateLimiter(ctx, rate.Limit(CreateRate), CreateBurst)

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.IsDevelopment() {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins: corsAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{},
		MaxAge:         300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]string{
			"status":  "ok",
			"service": "Community API",
		})
	})

	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics.Handler())
	}

	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	r.Route("/api", func(api chi.Router) {
		api.Route("/users", func(users chi.Router) {
			users.Get("/", HandleListUsers(deps))
			users.With(createLimiter.Middleware).Post("/", HandleCreateUser(deps))

			users.Get("/ign/{ign}", HandleGetUserByIGN(deps))
			users.Get("/email/{email}", HandleGetUserByEmail(deps))

			users.Get("/{id}", HandleGetUser(deps))
			users.Put("/{id}", HandleUpdateUser(deps))
			users.Delete("/{id}", HandleDeleteUser(deps))
		})
	})

	return r
}
