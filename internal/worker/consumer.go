package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vruksha/storefront/internal/constants"
	"github.com/vruksha/storefront/internal/logger"
	"github.com/vruksha/storefront/internal/queue"
	"github.com/vruksha/storefront/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer handles background tasks.
type Consumer struct {
	orders *service.OrderService
	client *queue.Client
}

// NewConsumer creates the task consumer.
func NewConsumer(orders *service.OrderService, client *queue.Client) *Consumer {
	return &Consumer{orders: orders, client: client}
}

// Register binds task handlers onto the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(constants.TaskOrderConfirmation, c.handleOrderConfirmation)
	mux.HandleFunc(constants.TaskRecurringDailyScan, c.handleRecurringDailyScan)
	mux.HandleFunc(constants.TaskRecurringDispatch, c.handleRecurringDispatch)
}

func (c *Consumer) handleOrderConfirmation(ctx context.Context, task *asynq.Task) error {
	var payload queue.OrderConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("order confirmation payload: %w", err)
	}
	if err := c.orders.Confirm(ctx, payload.OrderID); err != nil {
		return fmt.Errorf("confirm order %d: %w", payload.OrderID, err)
	}
	logger.Infow("order_confirmed", "order_id", payload.OrderID)
	return nil
}

// handleRecurringDailyScan fans out one dispatch task per recurring order
// due today, so a single slow order cannot stall the rest.
func (c *Consumer) handleRecurringDailyScan(ctx context.Context, task *asynq.Task) error {
	today := time.Now()
	due, err := c.orders.RecurringDueOn(ctx, today)
	if err != nil {
		return fmt.Errorf("scan recurring orders: %w", err)
	}
	day := today.Format("2006-01-02")
	for _, order := range due {
		if err := c.client.EnqueueRecurringDispatch(ctx, order.ID, day); err != nil {
			logger.Errorw("recurring_dispatch_enqueue_failed", "order_id", order.ID, "error", err)
		}
	}
	logger.Infow("recurring_daily_scan_done", "day", day, "due", len(due))
	return nil
}

func (c *Consumer) handleRecurringDispatch(ctx context.Context, task *asynq.Task) error {
	var payload queue.RecurringDispatchPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("recurring dispatch payload: %w", err)
	}
	day, err := time.ParseInLocation("2006-01-02", payload.Day, time.Local)
	if err != nil {
		return fmt.Errorf("recurring dispatch day %q: %w", payload.Day, err)
	}
	if err := c.orders.DispatchRecurring(ctx, payload.OrderID, day); err != nil {
		return fmt.Errorf("dispatch recurring order %d: %w", payload.OrderID, err)
	}
	return nil
}
