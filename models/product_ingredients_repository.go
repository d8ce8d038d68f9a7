package models

import (
	"gorm.io/gorm"
)

// ProductIngredientsRepository manages the product/ingredient link rows.
// The link set is always dropped wholesale, either during an edit (before
// the new set is attached) or as part of the product delete cascade.
type ProductIngredientsRepository struct {
	db *gorm.DB
}

func NewProductIngredientsRepository(db *gorm.DB) *ProductIngredientsRepository {
	return &ProductIngredientsRepository{
		db: db,
	}
}

func (r *ProductIngredientsRepository) DeleteByProduct(productID string) error {
	return r.db.
		Where("product_id = ?", productID).
		Delete(&ProductIngredient{}).Error
}
