package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"venuebook/internal/venues/handler"
	"venuebook/pkg/config"
	"venuebook/pkg/contracts"
	"venuebook/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

type Application struct {
	cfg              *config.Config
	server           *http.Server
	idempotencyStore *middleware.InMemoryIdempotencyStore
	rateLimiter      *middleware.ClientRateLimiter
	healthHandler    http.Handler
	apiHandler       http.Handler
}

func NewApplication() *Application {
	return &Application{}
}

// SetApp assembles the middleware chains, the routers and the HTTP
// server. Health endpoints bypass the heavier API middleware.
func (a *Application) SetApp(cfg *config.Config, handlers ...contracts.Handler) {
	a.cfg = cfg
	a.setHealthHandler(cfg)
	a.setAPIHandler(cfg, handlers...)
	a.setAppServer()
}

func (a *Application) setHealthHandler(cfg *config.Config) {
	healthRouter := httprouter.New()
	healthHandler := handler.NewHealthHandler(cfg.Client.Mongo, cfg.Log)
	healthHandler.RegisterRoutes(healthRouter)

	var h http.Handler = healthRouter
	h = middleware.RequestLogging(cfg.Log)(h)
	h = middleware.Recovery(cfg.Log)(h)
	a.healthHandler = h
	cfg.Log.Info("Health endpoints configured with minimal middleware (Recovery + Logging only)")
}

func (a *Application) setAPIHandler(cfg *config.Config, handlers ...contracts.Handler) {
	apiRouter := httprouter.New()
	for _, h := range handlers {
		h.RegisterRoutes(apiRouter)
	}

	a.idempotencyStore = middleware.NewInMemoryIdempotencyStore(cfg.IdempotencyTTL)
	a.rateLimiter = middleware.NewClientRateLimiter(
		cfg.RateLimitRequests,
		cfg.RateLimitWindow,
		middleware.RemoteIPExtractor,
		cfg.Log,
	)

	var h http.Handler = apiRouter
	h = middleware.Idempotency(a.idempotencyStore, "Idempotency-Key")(h)
	h = middleware.RequestTimeout(cfg.RequestTimeout)(h)
	h = middleware.ClientRateLimit(a.rateLimiter)(h)
	h = middleware.ContentTypeValidation(cfg.Log)(h)
	h = middleware.MaxRequestSize(int64(cfg.MaxRequestSize))(h)
	h = middleware.RequestLogging(cfg.Log)(h)
	h = middleware.Recovery(cfg.Log)(h)
	a.apiHandler = h
	cfg.Log.Info("API endpoints configured with full middleware stack")
}

func (a *Application) setAppServer() {
	mux := http.NewServeMux()
	mux.Handle("/health", a.healthHandler)
	mux.Handle("/ready", a.healthHandler)
	mux.Handle("/", a.apiHandler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	a.idempotencyStore.Stop()
	a.rateLimiter.Stop()
	a.cfg.Log.Info("Background workers stopped")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	a.cfg.GracefulShutdown()
	a.cfg.Log.Info("Server stopped gracefully")
}
