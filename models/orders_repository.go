package models

import (
	"errors"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	db *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		db: db,
	}
}

// Create persists the order together with its lines as one unit.
func (r *OrdersRepository) Create(order *Order) error {
	return r.db.Create(order).Error
}

// GetByID returns the order hydrated with the product each line references.
// Lines whose product has since left the catalog keep a nil Product.
func (r *OrdersRepository) GetByID(id string) (*Order, error) {
	var order Order
	if err := r.db.
		Preload("Products.Product").
		Preload("Products.Product.Category").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrdersRepository) Exists(id string) (bool, error) {
	var count int64
	if err := r.db.Model(&Order{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SetStatus updates the order's status and reports whether the order was
// found. Setting an already-set status still counts as found.
func (r *OrdersRepository) SetStatus(id string, status OrderStatus) (bool, error) {
	res := r.db.Model(&Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	// RowsAffected is 0 both for a missing order and for a no-op update,
	// so fall back to an existence probe.
	return r.Exists(id)
}

func (r *OrdersRepository) ListByStatus(status OrderStatus) ([]Order, error) {
	var orders []Order
	if err := r.db.
		Preload("Products.Product").
		Preload("Products.Product.Category").
		Where("status = ?", status).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrdersRepository) ListByCreator(userID string) ([]Order, error) {
	var orders []Order
	if err := r.db.
		Preload("Products.Product").
		Preload("Products.Product.Category").
		Where("creator_id = ?", userID).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
