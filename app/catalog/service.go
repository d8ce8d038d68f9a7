package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/pizzalab/pizzalab-api/models"
)

// ProductStore is the slice of the products repository the catalog service
// consumes.
type ProductStore interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	ExistsByName(name string) (bool, error)
	Create(p *models.Product) error
	Update(p *models.Product) error
	Delete(id string) error
}

type CategoryFinder interface {
	FindByName(name string) (*models.Category, error)
}

type IngredientFinder interface {
	FindByName(name string) (*models.Ingredient, error)
}

// ProductCleaner removes every record of one dependent aggregate that
// references a product. The likes, product-ingredient and reviews
// repositories all satisfy it.
type ProductCleaner interface {
	DeleteByProduct(productID string) error
}

// ProductInput carries the fields accepted by product create and edit.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Weight      int
	Image       string
	Category    string
	Ingredients []string
}

// Service keeps the catalog consistent: it owns product create, edit and
// delete, including ingredient-link resolution and the cleanup cascade
// across likes, ingredient links and reviews.
type Service struct {
	products    ProductStore
	categories  CategoryFinder
	ingredients IngredientFinder
	links       ProductCleaner
	likes       ProductCleaner
	reviews     ProductCleaner
}

func NewService(
	products ProductStore,
	categories CategoryFinder,
	ingredients IngredientFinder,
	links ProductCleaner,
	likes ProductCleaner,
	reviews ProductCleaner,
) *Service {
	return &Service{
		products:    products,
		categories:  categories,
		ingredients: ingredients,
		links:       links,
		likes:       likes,
		reviews:     reviews,
	}
}

// resolveLinks maps ingredient names to link rows, failing on the first
// name that does not resolve.
func (s *Service) resolveLinks(productID string, names []string) ([]models.ProductIngredient, error) {
	links := make([]models.ProductIngredient, 0, len(names))
	for _, name := range names {
		ingredient, err := s.ingredients.FindByName(name)
		if err != nil {
			return nil, err
		}
		links = append(links, models.ProductIngredient{
			ProductID:    productID,
			IngredientID: ingredient.ID,
			Ingredient:   *ingredient,
		})
	}
	return links, nil
}

// CreateProduct validates name uniqueness and resolves the category and
// every ingredient before anything is persisted; a product with a partial
// ingredient set is never observable.
func (s *Service) CreateProduct(in ProductInput) (*models.Product, error) {
	taken, err := s.products.ExistsByName(in.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.ErrDuplicateName
	}

	category, err := s.categories.FindByName(in.Category)
	if err != nil {
		return nil, err
	}

	links, err := s.resolveLinks("", in.Ingredients)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Weight:      in.Weight,
		Image:       in.Image,
		CategoryID:  category.ID,
		Category:    *category,
		Ingredients: links,
	}
	if err := s.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// EditProduct replaces every editable field and the whole ingredient-link
// set. Renaming a product to its current name is always allowed; old links
// are deleted before the new set is attached, even when the new set is
// empty.
func (s *Service) EditProduct(productID string, in ProductInput) (*models.Product, error) {
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}

	category, err := s.categories.FindByName(in.Category)
	if err != nil {
		return nil, err
	}

	if product.Name != in.Name {
		taken, err := s.products.ExistsByName(in.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, models.ErrDuplicateName
		}
	}

	links, err := s.resolveLinks(productID, in.Ingredients)
	if err != nil {
		return nil, err
	}

	if err := s.links.DeleteByProduct(productID); err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Weight = in.Weight
	product.Image = in.Image
	product.CategoryID = category.ID
	product.Category = *category
	product.Ingredients = links
	if err := s.products.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct purges likes, ingredient links and reviews referencing the
// product, in that order, and deletes the product row last. Order lines
// are left alone: orders are historical snapshots and keep their product
// ids. If any cleanup step fails the product row survives.
func (s *Service) DeleteProduct(productID string) error {
	if _, err := s.products.GetByID(productID); err != nil {
		return err
	}

	if err := s.likes.DeleteByProduct(productID); err != nil {
		return err
	}
	if err := s.links.DeleteByProduct(productID); err != nil {
		return err
	}
	if err := s.reviews.DeleteByProduct(productID); err != nil {
		return err
	}
	return s.products.Delete(productID)
}

// ListProducts returns the catalog hydrated with category and ingredient
// data.
func (s *Service) ListProducts() ([]models.Product, error) {
	return s.products.GetAll()
}

// GetProduct returns one product hydrated with category and ingredient
// data.
func (s *Service) GetProduct(productID string) (*models.Product, error) {
	return s.products.GetByID(productID)
}
