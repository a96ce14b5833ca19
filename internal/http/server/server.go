package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// HTTPServer runs the API until Shutdown is called.
type HTTPServer struct {
	logs            *zap.SugaredLogger
	srv             *http.Server
	shutdownTimeout time.Duration
}

// NewHTTP builds a server listening on port. Write timeouts leave room for a
// wallet signature plus the receipt wait.
func NewHTTP(logger *zap.SugaredLogger, handler http.Handler, port string) *HTTPServer {
	return &HTTPServer{
		logs: logger,
		srv: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 15 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      5 * time.Minute,
			IdleTimeout:       2 * time.Minute,
		},
		shutdownTimeout: 30 * time.Second,
	}
}

// Run starts serving in the background. The returned channel yields the error
// that stopped the server, http.ErrServerClosed after a clean Shutdown.
func (s *HTTPServer) Run() <-chan error {
	errChan := make(chan error, 1)
	go func() {
		s.logs.Infow("http server listening", "addr", s.srv.Addr)
		errChan <- s.srv.ListenAndServe()
	}()
	return errChan
}

func (s *HTTPServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.logs.Infow("shutting down http server")
	if err := s.srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
