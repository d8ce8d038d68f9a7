package reviews

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pizzalab/pizzalab-api/models"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewProvider interface {
	GetByProduct(productID string) ([]models.Review, error)
	Create(review *models.Review) error
}

type ReviewHandler struct {
	repo ReviewProvider
}

func NewReviewHandler(r ReviewProvider) *ReviewHandler {
	return &ReviewHandler{repo: r}
}

func (h *ReviewHandler) HandleGetByProduct(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.repo.GetByProduct(r.PathValue("productId"))
	if err != nil {
		http.Error(w, "failed to fetch reviews", http.StatusInternalServerError)
		return
	}

	response := make([]ReviewResponse, len(reviews))
	for i, rev := range reviews {
		response[i] = ReviewResponse{
			ID:        rev.ID,
			UserID:    rev.UserID,
			Content:   rev.Content,
			CreatedAt: rev.CreatedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *ReviewHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		http.Error(w, "Missing X-User-Id header", http.StatusBadRequest)
		return
	}

	var input struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if input.Content == "" {
		http.Error(w, "Missing review content", http.StatusBadRequest)
		return
	}

	review := &models.Review{
		ProductID: r.PathValue("productId"),
		UserID:    userID,
		Content:   input.Content,
	}
	if err := h.repo.Create(review); err != nil {
		http.Error(w, "Failed to create review", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Review created successfully",
	})
}
