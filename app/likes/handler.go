package likes

import (
	"encoding/json"
	"net/http"

	"github.com/pizzalab/pizzalab-api/models"
)

// LikeProvider covers the per-user like operations. Liking twice is a
// no-op, so the create endpoint is safe to retry.
type LikeProvider interface {
	Create(like *models.Like) error
	Delete(productID, userID string) error
	CountByProduct(productID string) (int64, error)
}

type LikeHandler struct {
	repo LikeProvider
}

func NewLikeHandler(r LikeProvider) *LikeHandler {
	return &LikeHandler{repo: r}
}

func (h *LikeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		http.Error(w, "Missing X-User-Id header", http.StatusBadRequest)
		return
	}

	like := &models.Like{
		ProductID: r.PathValue("productId"),
		UserID:    userID,
	}
	if err := h.repo.Create(like); err != nil {
		http.Error(w, "Failed to like product", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Product liked successfully",
	})
}

func (h *LikeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		http.Error(w, "Missing X-User-Id header", http.StatusBadRequest)
		return
	}

	if err := h.repo.Delete(r.PathValue("productId"), userID); err != nil {
		http.Error(w, "Failed to remove like", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Like removed successfully",
	})
}

func (h *LikeHandler) HandleCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.repo.CountByProduct(r.PathValue("productId"))
	if err != nil {
		http.Error(w, "failed to count likes", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"likes": count})
}
