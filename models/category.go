package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a product category.
// Products reference it by id but resolve it by name on create and edit.
type Category struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Description string
}

func (c *Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
