package orders

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/pizzalab/pizzalab-api/models"
)

type OrderProduct struct {
	ProductID   string   `json:"product_id"`
	Name        string   `json:"name,omitempty"`
	Price       float64  `json:"price,omitempty"`
	Ingredients []string `json:"ingredients"`
}

type Order struct {
	ID           string         `json:"id"`
	CreatorID    string         `json:"creator_id"`
	CreationDate time.Time      `json:"creation_date"`
	Status       string         `json:"status"`
	Products     []OrderProduct `json:"products"`
}

type OrderInputModel struct {
	Products []struct {
		ProductID   string   `json:"product_id"`
		Ingredients []string `json:"ingredients"`
	} `json:"products"`
}

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func toOrderResponse(o *models.Order) Order {
	products := make([]OrderProduct, len(o.Products))
	for i, line := range o.Products {
		products[i] = OrderProduct{
			ProductID:   line.ProductID,
			Ingredients: []string(line.Ingredients),
		}
		// Product is nil when it has been deleted from the catalog since
		// the order was placed.
		if line.Product != nil {
			products[i].Name = line.Product.Name
			products[i].Price = line.Product.Price.InexactFloat64()
		}
	}
	return Order{
		ID:           o.ID,
		CreatorID:    o.CreatorID,
		CreationDate: o.CreationDate,
		Status:       string(o.Status),
		Products:     products,
	}
}

func writeOrders(w http.ResponseWriter, res []models.Order) {
	orders := make([]Order, len(res))
	for i := range res {
		orders[i] = toOrderResponse(&res[i])
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(orders); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		http.Error(w, "Missing X-User-Id header", http.StatusBadRequest)
		return
	}

	var input OrderInputModel
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if len(input.Products) == 0 {
		http.Error(w, "Order must contain at least one product", http.StatusBadRequest)
		return
	}

	lines := make([]LineInput, len(input.Products))
	for i, p := range input.Products {
		lines[i] = LineInput{ProductID: p.ProductID, Ingredients: p.Ingredients}
	}

	order, err := h.service.CreateOrder(userID, lines)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toOrderResponse(order))
}

func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ApproveOrder(r.PathValue("orderId")); err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Order approved successfully",
	})
}

func (h *Handler) HandleListApproved(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ListApproved()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeOrders(w, res)
}

func (h *Handler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ListPending()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeOrders(w, res)
}

func (h *Handler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		http.Error(w, "Missing X-User-Id header", http.StatusBadRequest)
		return
	}

	res, err := h.service.ListByUser(userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeOrders(w, res)
}
