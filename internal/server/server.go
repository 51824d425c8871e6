package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/callboard/internal/config"
	"github.com/osse101/callboard/internal/database"
	"github.com/osse101/callboard/internal/handler"
	"github.com/osse101/callboard/internal/leaderboard"
	"github.com/osse101/callboard/internal/logger"
	"github.com/osse101/callboard/internal/metrics"
	"github.com/osse101/callboard/internal/prediction"
)

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg *config.Config, dbPool database.Pool, predictionService prediction.Service, leaderboardService leaderboard.Service) *Server {
	r := chi.NewRouter()
	limiter := NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{HeaderRequestID},
		MaxAge:         corsMaxAgeSeconds,
	}).Handler)
	r.Use(RateLimitMiddleware(limiter, cfg.TrustedProxies))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware(cfg.TrustedProxies))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, ErrMsgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, ErrMsgMethodNotAllowed)
	})

	// Operational routes
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(cfg.Version))
	r.Handle("/metrics", promhttp.Handler())

	predictionHandler := handler.NewPredictionHandler(predictionService)
	r.Route("/predictions", func(r chi.Router) {
		r.Post("/", predictionHandler.HandleCreate)
		r.Get("/", predictionHandler.HandleList)
		r.Get("/{id}", predictionHandler.HandleGet)
		r.Post("/{id}/resolve", predictionHandler.HandleResolve)
	})

	r.Get("/leaderboard", handler.HandleGetLeaderboard(leaderboardService))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// Handler exposes the routed middleware stack, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
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

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(trustedProxies []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isQuietPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()

			requestID := logger.GenerateRequestID()
			ctx := logger.WithRequestID(r.Context(), requestID)
			r = r.WithContext(ctx)
			w.Header().Set(HeaderRequestID, requestID)

			log := logger.FromContext(ctx)
			log.Info(LogMsgRequestStarted,
				"method", r.Method,
				"path", r.URL.Path,
				"client_ip", extractIP(r, trustedProxies),
				"content_length", r.ContentLength,
				"user_agent", r.UserAgent())

			sanitizedHeaders := make(http.Header, len(r.Header))
			for k, v := range r.Header {
				if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
					sanitizedHeaders[k] = []string{RedactedValue}
				} else {
					sanitizedHeaders[k] = v
				}
			}
			log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

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
}

// Start starts the server and blocks until it stops.
// http.ErrServerClosed is returned after a graceful Stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
