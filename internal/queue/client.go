package queue

import (
	"context"
	"fmt"

	"github.com/vruksha/storefront/internal/config"
	"github.com/vruksha/storefront/internal/logger"

	"github.com/hibiken/asynq"
)

// BuildRedisOpt maps queue config onto the asynq Redis connection options.
func BuildRedisOpt(cfg config.QueueConfig) asynq.RedisClientOpt {
	host := cfg.Host
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// Client enqueues background tasks. A nil Client is a no-op, so callers
// never need to branch on whether the queue is enabled.
type Client struct {
	inner *asynq.Client
}

// NewClient creates the queue client. Returns nil when the queue is
// disabled.
func NewClient(cfg config.QueueConfig) *Client {
	if !cfg.Enabled {
		return nil
	}
	return &Client{inner: asynq.NewClient(BuildRedisOpt(cfg))}
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c == nil || c.inner == nil {
		return nil
	}
	return c.inner.Close()
}

// EnqueueOrderConfirmation schedules the post-checkout confirmation task.
func (c *Client) EnqueueOrderConfirmation(ctx context.Context, orderID uint) error {
	if c == nil || c.inner == nil {
		return nil
	}
	task, err := NewOrderConfirmationTask(orderID)
	if err != nil {
		return err
	}
	info, err := c.inner.EnqueueContext(ctx, task)
	if err != nil {
		return err
	}
	logger.Debugw("task_enqueued", "type", task.Type(), "task_id", info.ID, "order_id", orderID)
	return nil
}

// EnqueueRecurringDispatch schedules occurrence generation for one
// recurring order on a day.
func (c *Client) EnqueueRecurringDispatch(ctx context.Context, orderID uint, day string) error {
	if c == nil || c.inner == nil {
		return nil
	}
	task, err := NewRecurringDispatchTask(orderID, day)
	if err != nil {
		return err
	}
	info, err := c.inner.EnqueueContext(ctx, task)
	if err != nil {
		return err
	}
	logger.Debugw("task_enqueued", "type", task.Type(), "task_id", info.ID, "order_id", orderID, "day", day)
	return nil
}

// EnqueueRecurringDailyScan schedules the daily recurring-order scan.
func (c *Client) EnqueueRecurringDailyScan(ctx context.Context) error {
	if c == nil || c.inner == nil {
		return nil
	}
	task := NewRecurringDailyScanTask()
	info, err := c.inner.EnqueueContext(ctx, task)
	if err != nil {
		return err
	}
	logger.Debugw("task_enqueued", "type", task.Type(), "task_id", info.ID)
	return nil
}
