// Package api provides a read-only HTTP API to look up jurisdictions and
// their region classifications.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tevino/abool"

	"github.com/mycoria/jurisdiction/config"
)

// ErrAlreadyRunning is returned when Serve is called on a running API.
var ErrAlreadyRunning = errors.New("api is already running")

// API is the HTTP lookup API.
type API struct {
	config  *config.Config
	logger  *slog.Logger
	metrics *Metrics

	router     *chi.Mux
	httpServer *http.Server

	running *abool.AtomicBool
}

// New returns a new HTTP API.
func New(c *config.Config, logger *slog.Logger) *API {
	if logger == nil {
		logger = slog.Default()
	}
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	api := &API{
		config:  c,
		logger:  logger,
		metrics: NewMetrics(registry),
		router:  chi.NewRouter(),
		running: abool.New(),
	}
	api.httpServer = &http.Server{
		Handler:           api,
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       time.Second,
		WriteTimeout:      5 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	// Setup middleware and routes.
	api.router.Use(middleware.Recoverer)
	api.router.Use(api.logRequests)
	api.router.Use(securityHeaders)
	api.router.Route("/v1", api.register)
	if !c.API.DisableMetrics {
		api.router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}
	api.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	api.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return api
}

// ServeHTTP implements the HTTP server handler.
func (api *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	api.router.ServeHTTP(w, r)
}

// Serve serves the API on the given listener until Shutdown is called.
func (api *API) Serve(ln net.Listener) error {
	if !api.running.SetToIf(false, true) {
		return ErrAlreadyRunning
	}
	defer api.running.UnSet()

	api.logger.Info("api listening", "addr", ln.Addr().String())
	err := api.httpServer.Serve(ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the API.
func (api *API) Shutdown(ctx context.Context) error {
	if err := api.httpServer.Shutdown(ctx); err != nil {
		api.logger.Error("failed to stop http server", "err", err)
		return err
	}
	return nil
}

// IsRunning returns whether the API is currently serving.
func (api *API) IsRunning() bool {
	return api.running.IsSet()
}

func (api *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Capture status code for logging.
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		// Log request.
		started := time.Now()
		defer func() {
			api.logger.Debug(
				"request",
				"method", r.Method,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"path", r.URL.Path,
				"remote", r.RemoteAddr,
				"time", time.Since(started),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hdr := w.Header()
		hdr.Set("Referrer-Policy", "no-referrer")
		hdr.Set("X-Content-Type-Options", "nosniff")
		hdr.Set("X-Frame-Options", "deny")
		hdr.Set("Content-Security-Policy", "default-src 'none'")

		next.ServeHTTP(w, r)
	})
}
