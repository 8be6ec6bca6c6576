package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/vruksha/storefront/internal/config"
	"github.com/vruksha/storefront/internal/logger"

	"github.com/gin-gonic/gin"
)

// HTTPService serves the storefront API.
type HTTPService struct {
	server *http.Server
}

// NewHTTPService wraps the gin engine in a managed HTTP server.
func NewHTTPService(cfg config.ServerConfig, engine *gin.Engine) *HTTPService {
	return &HTTPService{
		server: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
			ErrorLog:          logger.StdLogger(),
		},
	}
}

// Name implements Service.
func (s *HTTPService) Name() string {
	return "http"
}

// Start blocks serving requests.
func (s *HTTPService) Start() error {
	logger.Infow("http_listening", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains connections within the context deadline.
func (s *HTTPService) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
