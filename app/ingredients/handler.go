package ingredients

import (
	"encoding/json"
	"net/http"

	"github.com/pizzalab/pizzalab-api/models"
)

type IngredientResponse struct {
	Name string `json:"name"`
}

type IngredientProvider interface {
	GetAll() ([]models.Ingredient, error)
	Create(ingredient *models.Ingredient) error
}

type IngredientHandler struct {
	repo IngredientProvider
}

func NewIngredientHandler(r IngredientProvider) *IngredientHandler {
	return &IngredientHandler{repo: r}
}

func (h *IngredientHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.repo.GetAll()
	if err != nil {
		http.Error(w, "failed to fetch ingredients", http.StatusInternalServerError)
		return
	}

	response := make([]IngredientResponse, len(ingredients))
	for i, ing := range ingredients {
		response[i] = IngredientResponse{Name: ing.Name}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *IngredientHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if input.Name == "" {
		http.Error(w, "Missing ingredient name", http.StatusBadRequest)
		return
	}

	if err := h.repo.Create(&models.Ingredient{Name: input.Name}); err != nil {
		http.Error(w, "Failed to create ingredient", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Ingredient created successfully",
	})
}
