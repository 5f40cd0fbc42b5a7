package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until SIGINT or SIGTERM, then shuts down
// gracefully.
func (s *Server) Start(addr string) {
	go func() {
		slog.Info("Starting server", "addr", addr)
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server stopped unexpectedly", "error", err)
		}
	}()

	waitForShutdown()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		slog.Error("Shutdown did not complete cleanly", "error", err)
	}
}

// Shutdown stops the modules, the HTTP server, the background subscribers
// and finally every service in the injector.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down server")
	var errs []error
	for i := len(s.modules) - 1; i >= 0; i-- {
		if err := s.modules[i].Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	if s.stop != nil {
		s.stop()
	}
	s.injector.Shutdown()
	return errors.Join(errs...)
}
