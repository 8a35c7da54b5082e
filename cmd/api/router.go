// cmd/api/router.go
// HTTP router, middleware chain and operational endpoints

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/utils"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/introductions"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/matching"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/people"
)

var startTime = time.Now()

// routerDeps carries everything the router mounts
type routerDeps struct {
	people        *people.Handler
	matching      *matching.Handler
	introductions *introductions.Handler
	authenticate  func(http.Handler) http.Handler
	ping          func(ctx context.Context) error
}

func newRouter(deps routerDeps, corsOrigins []string, requestTimeout time.Duration, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))
	r.Use(requestLogger(log))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{"Retry-After"},
	}).Handler)

	r.Get("/health", healthCheck(deps.ping))
	r.Handle("/metrics", promhttp.Handler())

	people.RegisterRoutes(r, deps.people, deps.authenticate)
	matching.RegisterRoutes(r, deps.matching, deps.authenticate)
	introductions.RegisterRoutes(r, deps.introductions, deps.authenticate)

	return r
}

// healthCheck reports healthy while the database answers a ping
func healthCheck(ping func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, code := "healthy", http.StatusOK
		if ping != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				status, code = "unhealthy", http.StatusServiceUnavailable
			}
		}

		utils.RespondWithJSON(w, code, map[string]interface{}{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"uptime":    time.Since(startTime).String(),
		})
	}
}

// requestLogger logs every request once it completes
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			log.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", wrapped.statusCode),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", chimiddleware.GetReqID(r.Context())),
			)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
