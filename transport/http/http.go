package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"todosvc/config"
	"todosvc/infras/otel"
	"todosvc/shared/constant"
	"todosvc/transport/http/router"
)

const readHeaderTimeout = 10 * time.Second

type HTTP struct {
	Config *config.Config
	Router router.Router
	Otel   otel.Otel

	once    sync.Once
	handler http.Handler
}

func New(cfg *config.Config, r router.Router, ot otel.Otel) *HTTP {
	return &HTTP{
		Config: cfg,
		Router: r,
		Otel:   ot,
	}
}

// Handler returns the routed handler, building it on first use.
func (h *HTTP) Handler() http.Handler {
	h.once.Do(func() {
		h.handler = h.Router.Handler()
	})

	return h.handler
}

func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Handler().ServeHTTP(w, r)
}

// Serve runs the server until SIGINT or SIGTERM.
func (h *HTTP) Serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := h.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("HTTP server stopped with error")
	}
}

// Run listens on the configured address and serves until ctx is done, then drains
// in-flight requests for at most the configured grace period.
func (h *HTTP) Run(ctx context.Context) error {
	addr := net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	server := &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)

	go func() {
		log.Info().Str("addr", listener.Addr().String()).Msg("Starting up HTTP server.")

		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}

		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to serve HTTP: %w", err)
	case <-ctx.Done():
	}

	return h.shutdown(server)
}

func (h *HTTP) shutdown(server *http.Server) error {
	grace := time.Duration(h.Config.Server.Shutdown.GracePeriodSeconds) * time.Second
	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received shutdown signal. Shutting down now.")

		grace = 0
	} else {
		log.Info().Dur("grace_period", grace).Msg("Received shutdown signal. Draining requests.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	var errs []error

	if err := server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shut down HTTP server: %w", err))
	}

	if err := h.Otel.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}

	log.Info().Msg("Shutdown completed.")

	return errors.Join(errs...)
}
