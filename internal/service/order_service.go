package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vruksha/storefront/internal/constants"
	"github.com/vruksha/storefront/internal/logger"
	"github.com/vruksha/storefront/internal/models"
	"github.com/vruksha/storefront/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const checkoutDateLayout = "2006-01-02"

// TaskEnqueuer dispatches background tasks after checkout. Kept as an
// interface so the service works without a queue wired in.
type TaskEnqueuer interface {
	EnqueueOrderConfirmation(ctx context.Context, orderID uint) error
}

// CheckoutInput checkout payload. Dates arrive as "2006-01-02" strings.
type CheckoutInput struct {
	AddressID   uint
	IsRecurring bool
	Schedule    []string
	StartDate   string
	EndDate     string
}

// orderDraft validated checkout fields ready to persist.
type orderDraft struct {
	addressID   uint
	isRecurring bool
	schedule    []string
	startDate   time.Time
	endDate     *time.Time
}

// OrderService checkout and order history
type OrderService struct {
	orders    repository.OrderRepository
	carts     repository.CartRepository
	addresses repository.AddressRepository
	enqueuer  TaskEnqueuer
}

// NewOrderService creates the order service. enqueuer may be nil.
func NewOrderService(
	orders repository.OrderRepository,
	carts repository.CartRepository,
	addresses repository.AddressRepository,
	enqueuer TaskEnqueuer,
) *OrderService {
	return &OrderService{orders: orders, carts: carts, addresses: addresses, enqueuer: enqueuer}
}

// buildOrderDraft validates the checkout payload. An address is always
// required. Recurring checkouts need at least one valid weekday and an
// explicit start date; non-recurring checkouts default the start date to
// today and carry no schedule or end date.
func buildOrderDraft(input CheckoutInput, now time.Time) (*orderDraft, error) {
	if input.AddressID == 0 {
		return nil, ErrAddressRequired
	}

	draft := &orderDraft{
		addressID:   input.AddressID,
		isRecurring: input.IsRecurring,
	}

	if !input.IsRecurring {
		draft.startDate = truncateToDay(now)
		return draft, nil
	}

	schedule := normalizeSchedule(input.Schedule)
	if len(schedule) == 0 {
		return nil, ErrScheduleRequired
	}
	for _, day := range schedule {
		if !isScheduleWeekday(day) {
			return nil, ErrInvalidSchedule
		}
	}
	draft.schedule = schedule

	if strings.TrimSpace(input.StartDate) == "" {
		return nil, ErrStartDateRequired
	}
	startDate, err := time.ParseInLocation(checkoutDateLayout, input.StartDate, now.Location())
	if err != nil {
		return nil, ErrInvalidInput
	}
	draft.startDate = startDate

	if strings.TrimSpace(input.EndDate) != "" {
		endDate, err := time.ParseInLocation(checkoutDateLayout, input.EndDate, now.Location())
		if err != nil {
			return nil, ErrInvalidInput
		}
		if endDate.Before(startDate) {
			return nil, ErrInvalidDateRange
		}
		draft.endDate = &endDate
	}

	return draft, nil
}

// Checkout turns the user's cart into an order. Validation happens before
// any write; the order insert and cart clear share one transaction.
func (s *OrderService) Checkout(ctx context.Context, userID uint, input CheckoutInput) (*models.Order, error) {
	draft, err := buildOrderDraft(input, time.Now())
	if err != nil {
		return nil, err
	}

	address, err := s.addresses.GetForUser(ctx, draft.addressID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressRequired
		}
		return nil, err
	}

	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	order := &models.Order{
		OrderNo:        newOrderNo(),
		UserID:         userID,
		AddressID:      address.ID,
		AddressLine:    address.Line,
		AddressCity:    address.City,
		AddressState:   address.State,
		AddressPincode: address.Pincode,
		Status:         constants.OrderStatusPending,
		TotalAmount:    CartSubtotal(items),
		IsRecurring:    draft.isRecurring,
		StartDate:      &draft.startDate,
		EndDate:        draft.endDate,
	}
	if draft.isRecurring {
		order.Schedule = models.StringArray(draft.schedule)
	}
	order.Items = buildOrderItems(items)

	err = s.orders.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.orders.CreateWithTx(ctx, tx, order); err != nil {
			return err
		}
		return s.carts.ClearUser(ctx, tx, userID)
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("order_created",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"user_id", userID,
		"recurring", order.IsRecurring,
		"total", order.TotalAmount.String(),
	)

	if s.enqueuer != nil {
		if err := s.enqueuer.EnqueueOrderConfirmation(ctx, order.ID); err != nil {
			logger.Warnw("order_confirmation_enqueue_failed", "order_id", order.ID, "error", err)
		}
	}

	return order, nil
}

// MyOrders returns the user's placed orders, newest first. Generated
// delivery occurrences are folded under their parent, not listed.
func (s *OrderService) MyOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.orders.List(ctx, repository.OrderListFilter{
		UserID:    userID,
		RootOnly:  true,
		WithItems: true,
	}, repository.ListOptions{})
}

// Get loads one user-owned order with its items.
func (s *OrderService) Get(ctx context.Context, userID, id uint) (*models.Order, error) {
	order, err := s.orders.GetForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

// RecurringDueOn returns recurring orders scheduled for delivery on the
// given day.
func (s *OrderService) RecurringDueOn(ctx context.Context, day time.Time) ([]models.Order, error) {
	orders, err := s.orders.ListRecurringDueOn(ctx, day)
	if err != nil {
		return nil, err
	}
	code := weekdayCode(day.Weekday())
	due := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if scheduleContains(order.Schedule, code) {
			due = append(due, order)
		}
	}
	return due, nil
}

// CreateOccurrence writes the delivery occurrence a recurring order
// generates for a day. Idempotent per parent and day.
func (s *OrderService) CreateOccurrence(ctx context.Context, parent *models.Order, day time.Time) (*models.Order, error) {
	exists, err := s.orders.OccurrenceExists(ctx, parent.ID, day)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, nil
	}

	parentID := parent.ID
	deliveryDay := truncateToDay(day)
	occurrence := &models.Order{
		OrderNo:        newOrderNo(),
		ParentID:       &parentID,
		StartDate:      &deliveryDay,
		UserID:         parent.UserID,
		AddressID:      parent.AddressID,
		AddressLine:    parent.AddressLine,
		AddressCity:    parent.AddressCity,
		AddressState:   parent.AddressState,
		AddressPincode: parent.AddressPincode,
		Status:         constants.OrderStatusConfirmed,
		TotalAmount:    parent.TotalAmount,
	}
	for _, item := range parent.Items {
		occurrence.Items = append(occurrence.Items, models.OrderItem{
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			VariationWeight: item.VariationWeight,
			VariationPieces: item.VariationPieces,
			UnitPrice:       item.UnitPrice,
			Quantity:        item.Quantity,
			TotalPrice:      item.TotalPrice,
		})
	}
	if err := s.orders.Create(ctx, occurrence); err != nil {
		return nil, err
	}
	logger.Infow("recurring_occurrence_created",
		"parent_order_id", parent.ID,
		"occurrence_order_id", occurrence.ID,
		"day", day.Format(checkoutDateLayout),
	)
	return occurrence, nil
}

// DispatchRecurring generates the delivery occurrence one recurring order
// is due on a day. Called by the background worker.
func (s *OrderService) DispatchRecurring(ctx context.Context, orderID uint, day time.Time) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !order.IsRecurring || order.Status == constants.OrderStatusCancelled {
		return nil
	}
	if !scheduleContains(order.Schedule, weekdayCode(day.Weekday())) {
		return nil
	}
	_, err = s.CreateOccurrence(ctx, order, day)
	return err
}

// Confirm moves a pending order to confirmed. Called by the background
// worker after checkout.
func (s *OrderService) Confirm(ctx context.Context, orderID uint) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if order.Status != constants.OrderStatusPending {
		return nil
	}
	return s.orders.UpdateStatus(ctx, order.ID, constants.OrderStatusConfirmed)
}

func buildOrderItems(items []models.CartItem) []models.OrderItem {
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		snapshot := item.Snapshot()
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		orderItems = append(orderItems, models.OrderItem{
			ProductID:       item.ProductID,
			ProductName:     name,
			VariationWeight: snapshot.Weight,
			VariationPieces: snapshot.Pieces,
			UnitPrice:       LineUnitPrice(item),
			Quantity:        item.Quantity,
			TotalPrice:      LineTotal(item),
		})
	}
	return orderItems
}

func newOrderNo() string {
	return fmt.Sprintf("VRK%s%s",
		time.Now().Format("20060102150405"),
		strings.ToUpper(uuid.NewString()[:8]),
	)
}

func normalizeSchedule(schedule []string) []string {
	out := make([]string, 0, len(schedule))
	seen := make(map[string]bool, len(schedule))
	for _, day := range schedule {
		code := strings.ToLower(strings.TrimSpace(day))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	return out
}

func isScheduleWeekday(code string) bool {
	for _, day := range constants.ScheduleWeekdays {
		if day == code {
			return true
		}
	}
	return false
}

func scheduleContains(schedule models.StringArray, code string) bool {
	for _, day := range schedule {
		if day == code {
			return true
		}
	}
	return false
}

// weekdayCode maps time.Weekday onto the legacy weekday codes.
func weekdayCode(day time.Weekday) string {
	switch day {
	case time.Monday:
		return "mon"
	case time.Tuesday:
		return "tue"
	case time.Wednesday:
		return "wed"
	case time.Thursday:
		return "thurs"
	case time.Friday:
		return "fri"
	case time.Saturday:
		return "sat"
	default:
		return "sun"
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
