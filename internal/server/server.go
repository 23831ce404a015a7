package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/GildedRose_Go/internal/database"
	"github.com/osse101/GildedRose_Go/internal/handler"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/metrics"
)

// Options configures the HTTP server
type Options struct {
	Port        int
	APIKey      string
	ServiceName string
	Version     string

	// RateLimit is requests per minute per client IP on /api/v1; 0 disables it
	RateLimit int
	// CORSAllowedOrigins enables CORS when non-empty
	CORSAllowedOrigins []string

	// DBPool backs /readyz; nil means the in-memory store
	DBPool database.Pool
}

type Server struct {
	httpServer       *http.Server
	inventoryService inventory.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, inventoryService inventory.Service) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, inventoryService),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		inventoryService: inventoryService,
	}
}

// NewRouter builds the route tree. Chi middleware executes in the order defined.
func NewRouter(opts Options, inventoryService inventory.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(SecurityHeadersMiddleware())
	if len(opts.CORSAllowedOrigins) > 0 {
		r.Use(CORSMiddleware(opts.CORSAllowedOrigins))
	}
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(loggingMiddleware)
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.DBPool))
	r.Get("/version", handler.HandleVersion(opts.ServiceName, opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	if opts.APIKey == "" {
		slog.Default().Warn(LogMsgAuthDisabled)
	}

	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(RateLimitMiddleware(opts.RateLimit))

		r.Route("/items", func(r chi.Router) {
			r.Get("/", inventoryHandler.HandleListItems())
			r.Get("/{id}", inventoryHandler.HandleGetItem())
			r.With(AuthMiddleware(opts.APIKey)).Post("/", inventoryHandler.HandleAddItem())
		})

		r.With(AuthMiddleware(opts.APIKey)).Post("/days/advance", inventoryHandler.HandleAdvanceDays())
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

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// loggingMiddleware attaches a request ID, echoes it in X-Request-ID and logs
// start and completion of every non-probe request
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
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

// Start starts the server and blocks until it stops. A graceful Stop is not an error.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests, then closes the inventory service.
// The service is closed even when draining fails.
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	httpErr := s.httpServer.Shutdown(ctx)
	return errors.Join(httpErr, s.inventoryService.Shutdown(ctx))
}
