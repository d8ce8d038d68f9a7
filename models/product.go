package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a product in the catalog.
// It owns its ingredient links; category and ingredients are referenced,
// never owned. Likes and reviews are dependent aggregates that the catalog
// service purges before the product row itself is deleted.
type Product struct {
	ID          string              `gorm:"primaryKey"`
	Name        string              `gorm:"uniqueIndex;not null"`
	Description string
	Price       decimal.Decimal     `gorm:"type:decimal(10,2);not null"`
	Weight      int                 `gorm:"not null"`
	Image       string
	CategoryID  string              `gorm:"not null"`
	Category    Category            `gorm:"foreignKey:CategoryID"`
	Ingredients []ProductIngredient `gorm:"foreignKey:ProductID"`
	Likes       []Like              `gorm:"foreignKey:ProductID"`
	Reviews     []Review            `gorm:"foreignKey:ProductID"`
}

func (p *Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ProductIngredient links a product to one of its ingredients. The link set
// is replaced wholesale on every product edit, never patched.
type ProductIngredient struct {
	ProductID    string     `gorm:"primaryKey"`
	IngredientID string     `gorm:"primaryKey"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID"`
}

func (pi *ProductIngredient) TableName() string {
	return "products_ingredients"
}
