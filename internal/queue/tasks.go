package queue

import (
	"encoding/json"

	"github.com/vruksha/storefront/internal/constants"

	"github.com/hibiken/asynq"
)

// OrderConfirmationPayload payload for the post-checkout confirmation task.
type OrderConfirmationPayload struct {
	OrderID uint `json:"order_id"`
}

// RecurringDispatchPayload payload for generating one recurring order's
// delivery occurrence on a day.
type RecurringDispatchPayload struct {
	OrderID uint   `json:"order_id"`
	Day     string `json:"day"` // "2006-01-02"
}

// NewOrderConfirmationTask builds the confirmation task.
func NewOrderConfirmationTask(orderID uint) (*asynq.Task, error) {
	payload, err := json.Marshal(OrderConfirmationPayload{OrderID: orderID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskOrderConfirmation, payload,
		asynq.Queue(constants.QueueDefault),
		asynq.MaxRetry(5),
	), nil
}

// NewRecurringDispatchTask builds the per-order dispatch task.
func NewRecurringDispatchTask(orderID uint, day string) (*asynq.Task, error) {
	payload, err := json.Marshal(RecurringDispatchPayload{OrderID: orderID, Day: day})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskRecurringDispatch, payload,
		asynq.Queue(constants.QueueDefault),
		asynq.MaxRetry(3),
	), nil
}

// NewRecurringDailyScanTask builds the daily scan task that fans out
// dispatch tasks for every recurring order due that day.
func NewRecurringDailyScanTask() *asynq.Task {
	return asynq.NewTask(constants.TaskRecurringDailyScan, nil,
		asynq.Queue(constants.QueueDefault),
	)
}
