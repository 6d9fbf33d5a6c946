package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/Tusharxhub/GitHubWrapped/config"
	"github.com/Tusharxhub/GitHubWrapped/internal/container"
	"github.com/Tusharxhub/GitHubWrapped/internal/routes"
	"go.uber.org/zap"
)

type ApiServer struct {
	config *config.Config
	logger *zap.Logger
}

func New(config *config.Config, logger *zap.Logger) *ApiServer {
	return &ApiServer{config: config, logger: logger.With(zap.String("package", "server"))}
}

// Start serves the API until ctx is cancelled, then shuts down gracefully.
func (s *ApiServer) Start(ctx context.Context, diContainer *container.Container) error {
	return s.Serve(ctx, routes.RegisterRoutes(s.config, s.logger, diContainer.GetHandler()))
}

func (s *ApiServer) Serve(ctx context.Context, handler http.Handler) error {
	server := &http.Server{
		Addr:              net.JoinHostPort(s.config.GetApiServerHost(), s.config.GetApiServerPort()),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// handle start up server
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("apiserver running", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("apiserver failed to listen and serve", zap.Error(err))
			errCh <- err
		}
		close(errCh)
	}()

	// handle the shutdown logic
	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("failed to shutdown server gracefully", zap.Error(err))
		return err
	}
	s.logger.Info("apiserver stopped")
	return nil
}
