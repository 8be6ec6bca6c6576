package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vruksha/storefront/internal/logger"
)

const defaultStopTimeout = 15 * time.Second

// Service a long-running component managed by the Runner. Start blocks
// until the service exits or fails.
type Service interface {
	Name() string
	Start() error
	Stop(ctx context.Context) error
}

// Runner starts services, waits for a shutdown signal or a service
// failure, then stops everything with a grace period.
type Runner struct {
	services    []Service
	stopTimeout time.Duration
}

// NewRunner creates a runner over the given services.
func NewRunner(services ...Service) *Runner {
	return &Runner{services: services, stopTimeout: defaultStopTimeout}
}

// Run blocks until shutdown completes.
func (r *Runner) Run() error {
	errCh := make(chan error, len(r.services))
	for _, svc := range r.services {
		svc := svc
		go func() {
			logger.Infow("service_starting", "service", svc.Name())
			if err := svc.Start(); err != nil {
				errCh <- err
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-quit:
		logger.Infow("shutdown_signal", "signal", sig.String())
	case err := <-errCh:
		logger.Errorw("service_failed", "error", err)
		runErr = err
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.stopTimeout)
	defer cancel()
	for _, svc := range r.services {
		if err := svc.Stop(ctx); err != nil {
			logger.Errorw("service_stop_failed", "service", svc.Name(), "error", err)
		} else {
			logger.Infow("service_stopped", "service", svc.Name())
		}
	}
	return runErr
}
