package repository

import (
	"context"
	"time"

	"github.com/vruksha/storefront/internal/constants"
	"github.com/vruksha/storefront/internal/models"

	"gorm.io/gorm"
)

// OrderRepository order persistence
type OrderRepository interface {
	CreateWithTx(ctx context.Context, tx *gorm.DB, order *models.Order) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	GetForUser(ctx context.Context, id, userID uint) (*models.Order, error)
	List(ctx context.Context, filter OrderListFilter, opts ListOptions) ([]models.Order, error)
	ListRecurringDueOn(ctx context.Context, day time.Time) ([]models.Order, error)
	OccurrenceExists(ctx context.Context, parentID uint, day time.Time) (bool, error)
	Create(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// GormOrderRepository gorm-backed implementation
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Transaction runs fn inside a database transaction.
func (r *GormOrderRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// CreateWithTx inserts an order (items cascade) inside the transaction.
func (r *GormOrderRepository) CreateWithTx(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.WithContext(ctx).Create(order).Error
}

// Create inserts an order outside of any caller transaction.
func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// GetByID loads an order with its items.
func (r *GormOrderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetForUser loads an order with items only when the user owns it.
func (r *GormOrderRepository) GetForUser(ctx context.Context, id, userID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns orders matching the filter, newest first.
func (r *GormOrderRepository) List(ctx context.Context, filter OrderListFilter, opts ListOptions) ([]models.Order, error) {
	query := r.db.WithContext(ctx).Model(&models.Order{})
	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.RootOnly {
		query = query.Where("parent_id IS NULL")
	}
	if filter.IsRecurring != nil {
		query = query.Where("is_recurring = ?", *filter.IsRecurring)
	}
	if filter.WithItems {
		query = query.Preload("Items")
	}
	if filter.WithChildren {
		query = query.Preload("Children")
	}
	query = applyPagination(query, opts)

	var orders []models.Order
	err := query.Order("created_at DESC, id DESC").Find(&orders).Error
	return orders, err
}

// ListRecurringDueOn returns active recurring orders whose date window
// covers the given day. Weekday matching happens in the service layer.
func (r *GormOrderRepository) ListRecurringDueOn(ctx context.Context, day time.Time) ([]models.Order, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("is_recurring = ?", true).
		Where("parent_id IS NULL").
		Where("status <> ?", constants.OrderStatusCancelled).
		Where("start_date <= ?", dayStart).
		Where("end_date IS NULL OR end_date >= ?", dayStart).
		Find(&orders).Error
	return orders, err
}

// OccurrenceExists reports whether a delivery occurrence for the parent
// order already exists for the given delivery day. Occurrences carry their
// delivery day in start_date; this keeps the daily scan idempotent.
func (r *GormOrderRepository) OccurrenceExists(ctx context.Context, parentID uint, day time.Time) (bool, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("parent_id = ?", parentID).
		Where("start_date = ?", dayStart).
		Count(&count).Error
	return count > 0, err
}

// UpdateStatus sets an order's status.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}
