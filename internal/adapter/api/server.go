// Package api exposes interface snapshots and configuration over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang-ethmgr/internal/ethernet"
	"golang-ethmgr/internal/pkg/logging"
	"golang-ethmgr/internal/types"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Controller is the part of the ethernet manager served over HTTP.
type Controller interface {
	Info(iface ethernet.Interface) (*types.InterfaceState, error)
	Configuration(iface ethernet.Interface) (*types.IPConfiguration, error)
	SetConfigurationFor(iface ethernet.Interface, cfg *types.IPConfiguration) error
	ListenerCount(iface ethernet.Interface) int
	Connect(iface ethernet.Interface)
	Disconnect(iface ethernet.Interface)
}

var _ Controller = (*ethernet.Manager)(nil)

// Server is the HTTP API server.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	manager    Controller
}

// NewServer creates a server for manager listening on bindAddr.
func NewServer(manager Controller, bindAddr string) *Server {
	s := &Server{
		manager: manager,
		router:  chi.NewRouter(),
	}

	s.router.Use(Recovery)
	s.router.Use(Logger)
	s.router.Use(JSONContentType)

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         bindAddr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.router.Route("/api/v1/interfaces", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Route("/{iface}", func(r chi.Router) {
			r.Get("/", s.handleInfo)
			r.Get("/record", s.handleRecord)
			r.Get("/configuration", s.handleGetConfiguration)
			r.Put("/configuration", s.handleSetConfiguration)
			r.Post("/reconnect", s.handleReconnect)
			r.Post("/teardown", s.handleTeardown)
		})
	})

	s.router.Handle("/metrics", promhttp.Handler())
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Stop is called.
func (s *Server) Start() error {
	logging.WithComponent("api").WithField("addr", s.httpServer.Addr).Info("Starting API server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Stop gracefully stops the server.
func (s *Server) Stop(ctx context.Context) error {
	logging.WithComponent("api").Info("Shutting down API server")
	return s.httpServer.Shutdown(ctx)
}
