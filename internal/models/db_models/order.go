package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

// Order aggregates one or more templates bought in a single checkout.
// Allowed transitions: pending->completed, pending->cancelled,
// completed->refunded. TotalAmount is the sum of the item price snapshots
// and never recomputed from live template prices.
type Order struct {
	BaseModel
	UserID                uuid.UUID `gorm:"type:uuid;index"`
	StripePaymentIntentID string    `gorm:"index"`
	Status                OrderStatus     `gorm:"type:varchar(16);default:'pending';index"`
	TotalAmount           decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	// Provider payload snapshots for traceability.
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	User  User        `gorm:"foreignKey:UserID"`
	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

// OrderItem snapshots the template price at order-creation time so later
// catalog price changes cannot alter historical totals.
type OrderItem struct {
	BaseModel
	OrderID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	TemplateID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Template Template `gorm:"foreignKey:TemplateID"`
}
