package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikesRepository struct {
	db *gorm.DB
}

func NewLikesRepository(db *gorm.DB) *LikesRepository {
	return &LikesRepository{
		db: db,
	}
}

// Create records a user's like. Liking the same product twice is a no-op
// thanks to the composite primary key.
func (r *LikesRepository) Create(like *Like) error {
	return r.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like).Error
}

func (r *LikesRepository) Delete(productID, userID string) error {
	return r.db.
		Where("product_id = ? AND user_id = ?", productID, userID).
		Delete(&Like{}).Error
}

func (r *LikesRepository) DeleteByProduct(productID string) error {
	return r.db.
		Where("product_id = ?", productID).
		Delete(&Like{}).Error
}

func (r *LikesRepository) CountByProduct(productID string) (int64, error) {
	var count int64
	if err := r.db.Model(&Like{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
