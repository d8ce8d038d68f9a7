package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a user's free-form review of a product. Reviews are deleted
// en masse when their product is deleted.
type Review struct {
	ID        string `gorm:"primaryKey"`
	ProductID string `gorm:"not null;index"`
	UserID    string `gorm:"not null"`
	Content   string `gorm:"not null"`
	CreatedAt time.Time
}

func (r *Review) TableName() string {
	return "reviews"
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
