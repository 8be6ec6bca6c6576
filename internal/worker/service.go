package worker

import (
	"context"
	"fmt"

	"github.com/vruksha/storefront/internal/config"
	"github.com/vruksha/storefront/internal/constants"
	"github.com/vruksha/storefront/internal/logger"
	"github.com/vruksha/storefront/internal/queue"

	"github.com/hibiken/asynq"
)

// Service runs the asynq consumer plus the cron scheduler that triggers
// the daily recurring-order scan.
type Service struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	mux       *asynq.ServeMux
}

// NewService builds the worker from config. Returns nil when the queue is
// disabled.
func NewService(cfg config.QueueConfig, orderCfg config.OrderConfig, consumer *Consumer) *Service {
	if !cfg.Enabled {
		return nil
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}
	queues := cfg.Queues
	if len(queues) == 0 {
		queues = map[string]int{constants.QueueDefault: 10}
	}

	redisOpt := queue.BuildRedisOpt(cfg)
	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: concurrency,
		Queues:      queues,
		Logger:      asynqLogger{},
	})

	mux := asynq.NewServeMux()
	consumer.Register(mux)

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Logger: asynqLogger{},
	})
	dispatchHour := orderCfg.RecurringDispatchHour
	if dispatchHour < 0 || dispatchHour > 23 {
		dispatchHour = 6
	}
	cronspec := fmt.Sprintf("0 %d * * *", dispatchHour)
	if _, err := scheduler.Register(cronspec, queue.NewRecurringDailyScanTask()); err != nil {
		logger.Errorw("scheduler_register_failed", "cronspec", cronspec, "error", err)
	}

	return &Service{server: server, scheduler: scheduler, mux: mux}
}

// Name implements app.Service.
func (s *Service) Name() string {
	return "worker"
}

// Start runs the scheduler and blocks on the consumer.
func (s *Service) Start() error {
	if err := s.scheduler.Start(); err != nil {
		return err
	}
	return s.server.Run(s.mux)
}

// Stop drains in-flight tasks and shuts down.
func (s *Service) Stop(ctx context.Context) error {
	s.scheduler.Shutdown()
	s.server.Stop()
	s.server.Shutdown()
	return nil
}

// asynqLogger routes asynq's internal logging through the global logger.
type asynqLogger struct{}

func (asynqLogger) Debug(args ...interface{}) { logger.S().Debug(args...) }
func (asynqLogger) Info(args ...interface{})  { logger.S().Info(args...) }
func (asynqLogger) Warn(args ...interface{})  { logger.S().Warn(args...) }
func (asynqLogger) Error(args ...interface{}) { logger.S().Error(args...) }
func (asynqLogger) Fatal(args ...interface{}) { logger.S().Fatal(args...) }
