package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/blackwell-systems/codecommenter/internal/analyzer"
	"github.com/blackwell-systems/codecommenter/internal/config"
)

// shutdownTimeout bounds graceful shutdown once the serve context ends.
const shutdownTimeout = 5 * time.Second

// Server is the HTTP API server.
type Server struct {
	http *http.Server
	log  zerolog.Logger
}

// New builds a Server listening on cfg.Addr.
func New(a *analyzer.Analyzer, cfg config.Server, log zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	return &Server{
		http: &http.Server{
			Addr:              cfg.Addr,
			Handler:           NewRouter(a, cfg, log),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully, letting in-flight analyses finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", ln.Addr().String()).Msg("listening")
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http: %w", err)
	}
	s.log.Info().Msg("stopped")
	return nil
}

// ListenAndServe listens on the configured address and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.http.Addr, err)
	}
	return s.Serve(ctx, ln)
}
