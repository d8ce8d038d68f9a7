package models

import (
	"errors"

	"gorm.io/gorm"
)

type IngredientsRepository struct {
	db *gorm.DB
}

func NewIngredientsRepository(db *gorm.DB) *IngredientsRepository {
	return &IngredientsRepository{
		db: db,
	}
}

func (r *IngredientsRepository) GetAll() ([]Ingredient, error) {
	var ingredients []Ingredient
	if err := r.db.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// FindByName resolves an ingredient by name. A miss is reported as an
// IngredientNotFoundError carrying the unresolved name.
func (r *IngredientsRepository) FindByName(name string) (*Ingredient, error) {
	var ingredient Ingredient
	if err := r.db.
		Where("name = ?", name).
		First(&ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &IngredientNotFoundError{Name: name}
		}
		return nil, err
	}
	return &ingredient, nil
}

func (r *IngredientsRepository) Create(ingredient *Ingredient) error {
	return r.db.Create(ingredient).Error
}
