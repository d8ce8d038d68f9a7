package models

import (
	"gorm.io/gorm"
)

type ReviewsRepository struct {
	db *gorm.DB
}

func NewReviewsRepository(db *gorm.DB) *ReviewsRepository {
	return &ReviewsRepository{
		db: db,
	}
}

func (r *ReviewsRepository) GetByProduct(productID string) ([]Review, error) {
	var reviews []Review
	if err := r.db.
		Where("product_id = ?", productID).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewsRepository) Create(review *Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewsRepository) DeleteByProduct(productID string) error {
	return r.db.
		Where("product_id = ?", productID).
		Delete(&Review{}).Error
}
