// Package rest exposes the monitor over a JSON HTTP API: registry management,
// address lookups, runtime configuration, Prometheus metrics and health.
package rest

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/gabapcia/btcmonitor/internal/addrinfo"
	"github.com/gabapcia/btcmonitor/internal/addrregistry"
	"github.com/gabapcia/btcmonitor/internal/notify"
	"github.com/gabapcia/btcmonitor/internal/pkg/logger"
	"github.com/gabapcia/btcmonitor/internal/txwatch"
)

const shutdownTimeout = 10 * time.Second

// NotifierSetter swaps the notifier used for transaction alerts.
type NotifierSetter interface {
	SetNotifier(n notify.Notifier)
}

// Dependencies are the services behind the API.
type Dependencies struct {
	Registry  addrregistry.Service
	Watcher   txwatch.Service
	Inspector addrinfo.Service
	Alerter   NotifierSetter
	Params    *chaincfg.Params

	// Settings are the notification settings in effect at startup.
	Settings notify.Settings
}

// Server handles the HTTP API.
type Server struct {
	deps        Dependencies
	newNotifier func(notify.Settings) (notify.Notifier, error)
	metrics     *metrics
	mux         *http.ServeMux

	// configMu serializes POST /config and guards settings.
	configMu sync.Mutex
	settings notify.Settings
}

// Option configures the server.
type Option func(*Server)

// WithNotifierFactory replaces notify.New when POST /config rebuilds the notifier.
func WithNotifierFactory(f func(notify.Settings) (notify.Notifier, error)) Option {
	return func(s *Server) {
		s.newNotifier = f
	}
}

// NewServer builds the API and registers its routes.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{
		deps:     deps,
		settings: deps.Settings,
		mux:      http.NewServeMux(),
		newNotifier: func(settings notify.Settings) (notify.Notifier, error) {
			return notify.New(settings)
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.metrics = newMetrics(deps.Registry, deps.Watcher)
	s.routes()

	return s
}

func (s *Server) routes() {
	s.handle("GET /status", "status", s.handleStatus)
	s.handle("GET /addresses", "list_addresses", s.handleListAddresses)
	s.handle("POST /addresses", "add_address", s.handleAddAddress)
	s.handle("GET /addresses/{address}", "get_address", s.handleGetAddress)
	s.handle("DELETE /addresses/{address}", "remove_address", s.handleRemoveAddress)
	s.handle("GET /config", "get_config", s.handleGetConfig)
	s.handle("POST /config", "update_config", s.handleUpdateConfig)
	s.handle("GET /healthz", "healthz", s.handleHealthz)

	s.mux.Handle("GET /metrics", s.metrics.handler())
}

// handle registers h under pattern, instrumented and labeled with name.
func (s *Server) handle(pattern, name string, h http.HandlerFunc) {
	s.mux.Handle(pattern, s.metrics.instrument(name, h))
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "api listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	logger.Info(ctx, "api stopped")
	return nil
}
