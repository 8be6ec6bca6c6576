package models

import (
	"time"

	"gorm.io/gorm"
)

// Order a placed order. Recurring orders keep their weekday schedule and
// date window; delivery occurrences generated by the worker reference the
// originating order through ParentID. The delivery address is snapshotted
// so later address edits do not rewrite order history.
type Order struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	OrderNo  string `gorm:"uniqueIndex;not null" json:"order_no"`
	ParentID *uint  `gorm:"index" json:"parent_id,omitempty"`
	UserID   uint   `gorm:"index;not null" json:"-"`

	AddressID      uint   `gorm:"index;not null" json:"addressId"`
	AddressLine    string `gorm:"type:varchar(500);not null" json:"address"`
	AddressCity    string `gorm:"type:varchar(120)" json:"city"`
	AddressState   string `gorm:"type:varchar(120)" json:"state"`
	AddressPincode string `gorm:"type:varchar(20)" json:"pincode"`

	Status      string `gorm:"index;not null" json:"status"`
	TotalAmount Money  `gorm:"type:decimal(20,2);not null;default:0" json:"totalAmount"`

	IsRecurring bool        `gorm:"default:false;index" json:"isRecurring"`
	StartDate   *time.Time  `gorm:"index" json:"startDate,omitempty"`
	EndDate     *time.Time  `gorm:"index" json:"endDate,omitempty"`
	Schedule    StringArray `gorm:"type:json" json:"schedule,omitempty"` // weekday codes, empty unless recurring

	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Children []Order     `gorm:"foreignKey:ParentID" json:"children,omitempty"`
}

// TableName maps the model to its table.
func (Order) TableName() string {
	return "orders"
}
