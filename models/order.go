package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// OrderStatus is the order approval state.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "Pending"
	OrderStatusApproved OrderStatus = "Approved"
)

// Order is a historical snapshot of a user's selection. Its lines are fixed
// at creation time and are never re-derived from the live catalog.
type Order struct {
	ID           string         `gorm:"primaryKey"`
	CreatorID    string         `gorm:"not null;index"`
	CreationDate time.Time      `gorm:"not null"`
	Status       OrderStatus    `gorm:"not null"`
	Products     []OrderProduct `gorm:"foreignKey:OrderID"`
}

func (o *Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderProduct is one order line: a product reference plus the ingredient
// selection made at order time. Lines are immutable and keep their product
// id even after the product is removed from the catalog, so Product may be
// nil on a hydrated read.
type OrderProduct struct {
	ID          string         `gorm:"primaryKey"`
	OrderID     string         `gorm:"not null;index"`
	ProductID   string         `gorm:"not null;index"`
	Ingredients pq.StringArray `gorm:"type:text[]"`
	Product     *Product       `gorm:"foreignKey:ProductID"`
}

func (op *OrderProduct) TableName() string {
	return "orders_products"
}

func (op *OrderProduct) BeforeCreate(tx *gorm.DB) error {
	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	return nil
}
