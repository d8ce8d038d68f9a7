package models

import (
	"errors"
	"fmt"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// ErrCategoryNotFound is returned when a category name does not resolve.
var ErrCategoryNotFound = errors.New("category not found")

// ErrDuplicateName is returned when a product name is already taken.
var ErrDuplicateName = errors.New("product with the given name already exists")

// IngredientNotFoundError reports the first ingredient name that failed to
// resolve during product create or edit.
type IngredientNotFoundError struct {
	Name string
}

func (e *IngredientNotFoundError) Error() string {
	return fmt.Sprintf("%s ingredient not found", e.Name)
}
