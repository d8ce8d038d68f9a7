package models

import (
	"errors"

	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

func (r *ProductsRepository) GetAll() ([]Product, error) {
	var products []Product
	if err := r.db.
		Preload("Category").
		Preload("Ingredients.Ingredient").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) GetByID(id string) (*Product, error) {
	var product Product
	if err := r.db.
		Preload("Category").
		Preload("Ingredients.Ingredient").
		Where("id = ?", id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}

// ExistsByName reports whether any product already uses the given name.
func (r *ProductsRepository) ExistsByName(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&Product{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ProductsRepository) Create(p *Product) error {
	return r.db.Create(p).Error
}

// Update saves the product row and inserts its (already replaced) ingredient
// link set in one transaction.
func (r *ProductsRepository) Update(p *Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Ingredients", "Likes", "Reviews", "Category").Save(p).Error; err != nil {
			return err
		}
		if len(p.Ingredients) > 0 {
			if err := tx.Create(&p.Ingredients).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ProductsRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
