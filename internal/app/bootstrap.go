package app

import (
	"fmt"

	"github.com/vruksha/storefront/internal/cache"
	"github.com/vruksha/storefront/internal/config"
	"github.com/vruksha/storefront/internal/logger"
	"github.com/vruksha/storefront/internal/models"
	"github.com/vruksha/storefront/internal/provider"
	"github.com/vruksha/storefront/internal/router"
	"github.com/vruksha/storefront/internal/worker"
)

// Mode selects which services a process runs.
type Mode string

const (
	ModeAll    Mode = "all"
	ModeAPI    Mode = "api"
	ModeWorker Mode = "worker"
)

// Bootstrap initializes shared state (logger, database, cache) and returns
// the wired container.
func Bootstrap(cfg *config.Config) (*provider.Container, error) {
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := models.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	if err := cache.InitRedis(&cfg.Redis); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	return provider.NewContainer(cfg), nil
}

// BuildServices assembles the services the selected mode runs.
func BuildServices(mode Mode, container *provider.Container) []Service {
	cfg := container.Config
	var services []Service

	if mode == ModeAll || mode == ModeAPI {
		engine := router.New(container)
		services = append(services, NewHTTPService(cfg.Server, engine))
	}

	if mode == ModeAll || mode == ModeWorker {
		consumer := worker.NewConsumer(container.OrderService, container.QueueClient)
		if svc := worker.NewService(cfg.Queue, cfg.Order, consumer); svc != nil {
			services = append(services, svc)
		} else {
			logger.Warnw("worker_disabled", "reason", "queue not enabled")
		}
	}

	return services
}
