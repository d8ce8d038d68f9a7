package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/pizzalab/pizzalab-api/models"
)

type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Weight      int      `json:"weight"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
	Ingredients []string `json:"ingredients"`
}

type ProductInputModel struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Weight      int             `json:"weight"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Ingredients []string        `json:"ingredients"`
}

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func toProductResponse(p *models.Product) Product {
	ingredients := make([]string, len(p.Ingredients))
	for i, link := range p.Ingredients {
		ingredients[i] = link.Ingredient.Name
	}
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Weight:      p.Weight,
		Image:       p.Image,
		Category: Category{
			Name:        p.Category.Name,
			Description: p.Category.Description,
		},
		Ingredients: ingredients,
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	var ingredientErr *models.IngredientNotFoundError
	switch {
	case errors.Is(err, models.ErrProductNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrDuplicateName),
		errors.Is(err, models.ErrCategoryNotFound),
		errors.As(err, &ingredientErr):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ListProducts()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	products := make([]Product, len(res))
	for i := range res {
		products[i] = toProductResponse(&res[i])
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(products); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProduct(r.PathValue("productId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(toProductResponse(product)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input ProductInputModel
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if input.Name == "" || input.Category == "" {
		http.Error(w, "Missing name or category", http.StatusBadRequest)
		return
	}
	if input.Price.IsNegative() || input.Weight < 0 {
		http.Error(w, "Price and weight must not be negative", http.StatusBadRequest)
		return
	}

	product, err := h.service.CreateProduct(ProductInput{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Weight:      input.Weight,
		Image:       input.Image,
		Category:    input.Category,
		Ingredients: input.Ingredients,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toProductResponse(product))
}

func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	var input ProductInputModel
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if input.Name == "" || input.Category == "" {
		http.Error(w, "Missing name or category", http.StatusBadRequest)
		return
	}
	if input.Price.IsNegative() || input.Weight < 0 {
		http.Error(w, "Price and weight must not be negative", http.StatusBadRequest)
		return
	}

	product, err := h.service.EditProduct(r.PathValue("productId"), ProductInput{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Weight:      input.Weight,
		Image:       input.Image,
		Category:    input.Category,
		Ingredients: input.Ingredients,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toProductResponse(product))
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProduct(r.PathValue("productId")); err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Product deleted successfully",
	})
}
