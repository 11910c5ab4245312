package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/caasmo/imprint/config"
)

type Server struct {
	configProvider *config.Provider
	handler        http.Handler
	logger         *slog.Logger
}

func NewServer(configProvider *config.Provider, handler http.Handler, logger *slog.Logger) *Server {
	return &Server{
		configProvider: configProvider,
		handler:        handler,
		logger:         logger,
	}
}

func (s *Server) Run() {
	cfg := s.configProvider.Get().Server

	s.logger.Info("server configuration",
		"addr", cfg.Addr,
		"read_timeout", cfg.ReadTimeout.Duration,
		"read_header_timeout", cfg.ReadHeaderTimeout.Duration,
		"write_timeout", cfg.WriteTimeout.Duration,
		"idle_timeout", cfg.IdleTimeout.Duration,
		"shutdown_timeout", cfg.ShutdownGracefulTimeout.Duration,
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.handler,
		ReadTimeout:       cfg.ReadTimeout.Duration,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout.Duration,
		WriteTimeout:      cfg.WriteTimeout.Duration,
		IdleTimeout:       cfg.IdleTimeout.Duration,
	}

	serverError := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			s.logger.Error("ListenAndServe error", "err", err)
			serverError <- err
		}
	}()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)

	select {
	case <-ctx.Done():
		s.logger.Info("received shutdown signal - gracefully shutting down")
	case err := <-serverError:
		s.logger.Error("server error - initiating shutdown", "err", err)
	}

	stop()

	gracefulCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownGracefulTimeout.Duration)
	defer cancelShutdown()

	shutdownGroup, _ := errgroup.WithContext(gracefulCtx)

	shutdownGroup.Go(func() error {
		s.logger.Info("shutting down HTTP server")
		if err := srv.Shutdown(gracefulCtx); err != nil {
			s.logger.Error("HTTP server shutdown error", "err", err)
			return err
		}
		s.logger.Info("HTTP server stopped gracefully")
		return nil
	})

	if err := shutdownGroup.Wait(); err != nil {
		s.logger.Error("error during shutdown", "err", err)
		os.Exit(1)
	}

	s.logger.Info("all systems stopped gracefully")
}
