// Package server exposes the HTTP surface: health, version, Prometheus
// metrics, scenario submission, the statistic update stream and the
// tracked-death endpoints a host can call.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ArmaRealms/ToolStats/internal/handler"
	"github.com/ArmaRealms/ToolStats/internal/logger"
	"github.com/ArmaRealms/ToolStats/internal/metrics"
)

type Server struct {
	httpServer *http.Server
}

// Routes holds what the /api/v1 routes serve. Nil fields leave their routes
// unregistered.
type Routes struct {
	Deaths    handler.DeathTracker
	Stream    http.Handler
	Scenarios handler.ScenarioRunner
}

// NewServer creates a new Server listening on addr
func NewServer(addr string, routes Routes, checkers ...handler.HealthChecker) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(routes, checkers...),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter builds the route tree
func NewRouter(routes Routes, checkers ...handler.HealthChecker) http.Handler {
	r := chi.NewRouter()

	r.Use(SecurityHeaders)
	r.Use(LimitRequestBody(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(checkers...))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if routes.Deaths != nil {
			r.Route("/deaths/{"+handler.ParamEntityID+"}", func(r chi.Router) {
				r.Get("/", handler.HandleGetDeath(routes.Deaths))
				r.Delete("/", handler.HandleForgetDeath(routes.Deaths))
			})
		}
		if routes.Stream != nil {
			r.Get("/stats/stream", routes.Stream.ServeHTTP)
		}
		if routes.Scenarios != nil {
			r.Post("/scenarios", handler.HandleRunScenario(routes.Scenarios))
		}
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, path := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		ctx := logger.WithDispatchID(r.Context(), logger.GenerateDispatchID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
